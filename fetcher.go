package leadharvest

import "context"

// Fetcher retrieves raw page bytes from URLs.
// Implementations bound the number of bytes read so a hostile or huge page
// cannot exhaust memory; a truncated body is returned without error.
type Fetcher interface {
	// Fetch issues a single GET to the URL and returns at most the
	// implementation's byte cap of the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// HostLimiter provides per-host outbound rate limiting so batch runs stay
// polite toward target servers.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
