package http

import (
	"context"
	"time"
)

// retryDelays returns the backoff delays used when polling the Places API
// for a next-page token: the API needs a short warm-up before a freshly
// issued token becomes valid.
func retryDelays() []time.Duration {
	return []time.Duration{2 * time.Second, 2 * time.Second, 4 * time.Second}
}

// withRetry runs fn once plus one retry per delay, sleeping the delay
// before each retry. Context cancellation interrupts the sleep.
func withRetry(ctx context.Context, delays []time.Duration, fn func() error) error {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return lastErr
}
