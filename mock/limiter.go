package mock

import (
	"context"

	"github.com/pmilosz/leadharvest"
)

var _ leadharvest.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of leadharvest.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, host)
}
