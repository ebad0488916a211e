// Package harvest implements the email-discovery pipeline: URL
// normalization, bounded fetch, tolerant decoding, pattern extraction,
// junk filtering and deduplication. It also provides batch orchestration
// over stored leads.
package harvest

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pmilosz/leadharvest"
)

// Frontier configuration for deep harvesting.
const (
	// frontierExpectedURLs sizes the Bloom filter for contact-page dedupe.
	frontierExpectedURLs = 1000
	// frontierFalsePositiveRate is the acceptable skip rate for candidates.
	frontierFalsePositiveRate = 0.01
	// defaultMaxContactPages bounds follow-up fetches per site.
	defaultMaxContactPages = 5
)

// Compile-time interface verification.
var _ leadharvest.Harvester = (*Harvester)(nil)

// Harvester discovers public email addresses on business websites.
//
// The zero value is not usable: Fetcher is required. Contacts, Sitemaps,
// Limiter and Logger are optional; leaving Contacts and Sitemaps nil
// restricts harvesting to the homepage.
type Harvester struct {
	Fetcher  leadharvest.Fetcher
	Contacts leadharvest.ContactFinder
	Sitemaps leadharvest.ContactSource
	Limiter  leadharvest.HostLimiter
	Logger   *slog.Logger

	// MaxContactPages bounds the number of contact-page candidates fetched
	// by HarvestSite. Zero means defaultMaxContactPages.
	MaxContactPages int
}

// Harvest normalizes rawURL, fetches it once, and returns every distinct
// email-like token found on the page, sorted ascending. It never returns
// an error: empty input and fetch failures both degrade to an empty list.
// Use HarvestURL when the distinction matters.
func (h *Harvester) Harvest(ctx context.Context, rawURL string) []string {
	return h.HarvestURL(ctx, rawURL).Emails
}

// HarvestURL is the strengthened single-page harvest. The returned result
// distinguishes empty input, fetch failure and a genuinely email-free page.
// Emails is always non-nil.
func (h *Harvester) HarvestURL(ctx context.Context, rawURL string) *leadharvest.HarvestResult {
	target := NormalizeURL(rawURL)
	if target == "" {
		return &leadharvest.HarvestResult{
			Status: leadharvest.StatusEmptyInput,
			Emails: []string{},
		}
	}

	body, err := h.fetch(ctx, target)
	if err != nil {
		h.log().Warn("fetch failed", "url", target, "err", err)
		return &leadharvest.HarvestResult{
			URL:    target,
			Status: leadharvest.StatusFetchFailed,
			Emails: []string{},
			Err:    err,
		}
	}

	return &leadharvest.HarvestResult{
		URL:          target,
		Status:       leadharvest.StatusFetched,
		Emails:       ExtractEmails(DecodeText(body)),
		SnapshotHash: snapshotHash(body),
	}
}

// HarvestSite harvests the homepage and then up to MaxContactPages likely
// contact pages discovered via the site's sitemap and homepage links.
// Contact-page fetch failures are skipped silently; the homepage result
// determines the overall status. All emails are merged, deduplicated and
// sorted.
func (h *Harvester) HarvestSite(ctx context.Context, rawURL string) *leadharvest.HarvestResult {
	target := NormalizeURL(rawURL)
	if target == "" {
		return &leadharvest.HarvestResult{
			Status: leadharvest.StatusEmptyInput,
			Emails: []string{},
		}
	}

	body, err := h.fetch(ctx, target)
	if err != nil {
		h.log().Warn("fetch failed", "url", target, "err", err)
		return &leadharvest.HarvestResult{
			URL:    target,
			Status: leadharvest.StatusFetchFailed,
			Emails: []string{},
			Err:    err,
		}
	}

	result := &leadharvest.HarvestResult{
		URL:          target,
		Status:       leadharvest.StatusFetched,
		SnapshotHash: snapshotHash(body),
	}

	lists := [][]string{ExtractEmails(DecodeText(body))}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.MarkSeen(target)

	h.discoverCandidates(ctx, target, body, frontier)

	maxPages := h.MaxContactPages
	if maxPages <= 0 {
		maxPages = defaultMaxContactPages
	}

	fetched := 0
	for fetched < maxPages {
		pageURL, ok := frontier.PopURL()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			break
		}
		fetched++

		pageBody, err := h.fetch(ctx, pageURL)
		if err != nil {
			h.log().Debug("contact page fetch failed", "url", pageURL, "err", err)
			continue
		}
		lists = append(lists, ExtractEmails(DecodeText(pageBody)))
	}

	result.Emails = mergeEmails(lists...)
	return result
}

// discoverCandidates fills the frontier with contact-page candidates from
// the sitemap and from homepage links, scoped to the homepage's host.
func (h *Harvester) discoverCandidates(ctx context.Context, target string, body []byte, frontier *Frontier) {
	base, err := url.Parse(target)
	if err != nil {
		return
	}

	if h.Sitemaps != nil {
		urls, err := h.Sitemaps.DiscoverContactURLs(ctx, target)
		if err != nil {
			h.log().Debug("sitemap contact discovery failed", "url", target, "err", err)
		}
		for _, u := range urls {
			if sameHost(u, base) {
				frontier.PushURL(u, classifyLink(u, ""))
			}
		}
	}

	if h.Contacts != nil {
		links, err := h.Contacts.FindContactLinks(body, target)
		if err != nil {
			h.log().Debug("contact link discovery failed", "url", target, "err", err)
			return
		}
		for _, link := range links {
			if sameHost(link.URL, base) {
				frontier.PushURL(link.URL, classifyLink(link.URL, link.Text))
			}
		}
	}
}

// fetch applies the per-host rate limit, if configured, then delegates to
// the Fetcher.
func (h *Harvester) fetch(ctx context.Context, target string) ([]byte, error) {
	if h.Limiter != nil {
		if u, err := url.Parse(target); err == nil && u.Host != "" {
			if err := h.Limiter.Wait(ctx, u.Host); err != nil {
				return nil, err
			}
		}
	}
	return h.Fetcher.Fetch(ctx, target)
}

func (h *Harvester) log() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// contactKeywords and aboutKeywords classify candidate links by URL path
// and anchor text.
var (
	contactKeywords = []string{"contact", "kontakt", "impressum", "get-in-touch", "getintouch"}
	aboutKeywords   = []string{"about", "team", "staff", "imprint", "support"}
)

func classifyLink(rawURL, text string) LinkPriority {
	haystack := strings.ToLower(rawURL + " " + text)
	for _, kw := range contactKeywords {
		if strings.Contains(haystack, kw) {
			return PriorityContact
		}
	}
	for _, kw := range aboutKeywords {
		if strings.Contains(haystack, kw) {
			return PriorityAbout
		}
	}
	return PriorityOther
}

func sameHost(rawURL string, base *url.URL) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// snapshotHash fingerprints fetched page bytes with xxhash so unchanged
// pages can be detected between runs.
func snapshotHash(body []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(body))
}
