package harvest

import (
	"context"
	"sync"

	"github.com/pmilosz/leadharvest"
	"golang.org/x/time/rate"
)

var _ leadharvest.HostLimiter = (*HostLimiter)(nil)

// HostLimiter provides per-host rate limiting using token buckets.
// Each host gets its own limiter, so a batch run can fetch from many
// businesses concurrently while staying polite toward each individual
// server. Burst is fixed at 1: no host is ever hit twice back to back.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second
// to each host.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the host.
// Returns an error if the context is canceled before the wait completes.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
