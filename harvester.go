package leadharvest

import "context"

// HarvestStatus classifies the outcome of a harvest operation.
type HarvestStatus int

// Harvest outcomes. StatusFetched covers both "emails found" and "page has
// no emails"; the two are distinguished by the length of Result.Emails.
const (
	StatusEmptyInput HarvestStatus = iota
	StatusFetched
	StatusFetchFailed
)

// String returns a stable label for the status.
func (s HarvestStatus) String() string {
	switch s {
	case StatusEmptyInput:
		return "empty_input"
	case StatusFetched:
		return "fetched"
	case StatusFetchFailed:
		return "fetch_failed"
	default:
		return "unknown"
	}
}

// HarvestResult is the outcome of harvesting a single candidate URL.
type HarvestResult struct {
	// URL is the normalized URL the fetch was attempted against.
	// Empty when Status is StatusEmptyInput.
	URL string

	// Emails is the deduplicated, ascending-sorted list of addresses found.
	// Always non-nil for StatusFetched; empty otherwise.
	Emails []string

	// SnapshotHash is a hash of the fetched page bytes, usable to detect
	// unchanged pages between runs. Empty unless Status is StatusFetched.
	SnapshotHash string

	Status HarvestStatus

	// Err carries the underlying fetch error for StatusFetchFailed.
	Err error
}

// Harvester discovers public email addresses on business websites.
type Harvester interface {
	// Harvest normalizes rawURL, fetches it, and returns every distinct
	// email-like token found, sorted ascending. It never returns an error:
	// empty input and fetch failures both degrade to an empty list. This is
	// the compatibility surface existing batch callers depend on.
	Harvest(ctx context.Context, rawURL string) []string

	// HarvestURL is the strengthened variant: it reports whether the empty
	// result means "no URL", "page had no emails" or "fetch failed".
	HarvestURL(ctx context.Context, rawURL string) *HarvestResult
}

// ContactLink is a link to a likely contact or about page, discovered on a
// fetched homepage.
type ContactLink struct {
	URL  string
	Text string
}

// ContactFinder discovers likely contact-page links in HTML.
type ContactFinder interface {
	// FindContactLinks parses HTML and returns absolute URLs of pages that
	// look like contact or about pages. The baseURL resolves relative hrefs.
	FindContactLinks(html []byte, baseURL string) ([]ContactLink, error)
}

// ContactSource discovers likely contact-page URLs from a site's sitemap.
type ContactSource interface {
	// DiscoverContactURLs checks robots.txt and /sitemap.xml for URLs whose
	// paths suggest contact or about pages.
	DiscoverContactURLs(ctx context.Context, baseURL string) ([]string, error)
}
