// Package http provides HTTP-based implementations of the leadharvest
// fetching and search interfaces: a bounded-size page fetcher, a Google
// Places client, and sitemap-based contact page discovery.
package http

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/pmilosz/leadharvest"
)

// DefaultFetchTimeout is the default timeout for page fetches. Business
// sites on shared hosting are slow; 15s keeps batch latency bounded
// without dropping the long tail.
const DefaultFetchTimeout = 15 * time.Second

// DefaultMaxBytes is the default cap on bytes read from a response body.
// Emails live in page headers and footers; 200 kB of HTML is plenty.
const DefaultMaxBytes = 200_000

// maxRedirects caps redirect chains so a misconfigured site cannot hold a
// worker hostage.
const maxRedirects = 5

// defaultUserAgents are rotated across requests. Some small-business sites
// reject blank or default library user agents outright; without a browser
// string those fetches would silently read as "no emails found".
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_4_1) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4.1 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14.4; rv:124.0) Gecko/20100101 Firefox/124.0",
}

const acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// Ensure Fetcher implements leadharvest.Fetcher at compile time.
var _ leadharvest.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw page bytes over HTTP. It issues exactly one GET
// per call, follows at most maxRedirects redirects, and never reads more
// than its byte cap from the response body.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	maxBytes   int64
	userAgents []string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBytes caps the number of response bytes read.
// Defaults to DefaultMaxBytes if not specified.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// WithUserAgents replaces the rotated User-Agent list.
func WithUserAgents(agents []string) Option {
	return func(f *Fetcher) {
		f.userAgents = agents
	}
}

// NewFetcher creates a new HTTP page fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:    DefaultFetchTimeout,
		maxBytes:   DefaultMaxBytes,
		userAgents: defaultUserAgents,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	return f
}

// Fetch retrieves up to the configured byte cap from the given URL.
// A body longer than the cap is truncated without error; non-2xx/3xx
// responses are errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent())
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, err
	}

	return body, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func (f *Fetcher) userAgent() string {
	if len(f.userAgents) == 0 {
		return defaultUserAgents[0]
	}
	return f.userAgents[rand.IntN(len(f.userAgents))]
}
