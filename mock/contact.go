package mock

import (
	"context"

	"github.com/pmilosz/leadharvest"
)

var _ leadharvest.ContactFinder = (*ContactFinder)(nil)

// ContactFinder is a mock implementation of leadharvest.ContactFinder.
type ContactFinder struct {
	FindContactLinksFn func(html []byte, baseURL string) ([]leadharvest.ContactLink, error)
}

func (f *ContactFinder) FindContactLinks(html []byte, baseURL string) ([]leadharvest.ContactLink, error) {
	return f.FindContactLinksFn(html, baseURL)
}

var _ leadharvest.ContactSource = (*ContactSource)(nil)

// ContactSource is a mock implementation of leadharvest.ContactSource.
type ContactSource struct {
	DiscoverContactURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *ContactSource) DiscoverContactURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverContactURLsFn(ctx, baseURL)
}
