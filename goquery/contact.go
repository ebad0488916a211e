// Package goquery implements HTML link discovery using the goquery library.
package goquery

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pmilosz/leadharvest"
)

// Compile-time interface verification.
var _ leadharvest.ContactFinder = (*ContactFinder)(nil)

// linkKeywords mark anchors that likely lead to a page with contact
// details. Matched against the href and the link text, lowercased.
var linkKeywords = []string{
	"contact", "kontakt", "impressum", "imprint", "about", "team",
	"staff", "support", "get in touch",
}

// ContactFinder extracts candidate contact-page links from HTML.
type ContactFinder struct{}

// NewContactFinder creates a new ContactFinder.
func NewContactFinder() *ContactFinder {
	return &ContactFinder{}
}

// FindContactLinks parses html and returns anchors that look like links
// to contact or about pages, with hrefs resolved against baseURL.
// Returns an empty slice (not nil) when nothing matches.
func (f *ContactFinder) FindContactLinks(html []byte, baseURL string) ([]leadharvest.ContactLink, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	links := []leadharvest.ContactLink{}
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		resolved.Fragment = ""

		text := strings.TrimSpace(sel.Text())
		if !matchesKeyword(resolved.String(), text) {
			return
		}

		abs := resolved.String()
		if seen[abs] {
			return
		}
		seen[abs] = true
		links = append(links, leadharvest.ContactLink{URL: abs, Text: text})
	})

	return links, nil
}

// matchesKeyword reports whether the link's URL or text contains a
// contact keyword.
func matchesKeyword(rawURL, text string) bool {
	haystack := strings.ToLower(rawURL + " " + text)
	for _, keyword := range linkKeywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}
