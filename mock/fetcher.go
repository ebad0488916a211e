package mock

import (
	"context"

	"github.com/pmilosz/leadharvest"
)

var _ leadharvest.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of leadharvest.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
