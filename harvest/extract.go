package harvest

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// emailPattern matches local-part@domain.tld tokens. It deliberately runs
// over raw page source, script tags and attribute values included:
// addresses hidden in mailto: links or assembled by JS outnumber the false
// positives this costs, and the junk-suffix filter catches the worst of
// those.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// junkSuffixes disqualify otherwise-matching tokens that are really asset
// filenames, e.g. sprite@2x.png referenced from CSS or JS.
var junkSuffixes = []string{".png", ".jpg", ".jpeg", ".gif", ".svg"}

// ExtractEmails scans decoded page text for email-like tokens, drops
// image-filename lookalikes, deduplicates by exact string equality and
// returns the remainder sorted ascending. Case is preserved. The result is
// never nil.
//
// HTML entities are unescaped first so that &#64;-obfuscated addresses are
// caught.
func ExtractEmails(text string) []string {
	text = html.UnescapeString(text)

	seen := make(map[string]struct{})
	emails := []string{}
	for _, match := range emailPattern.FindAllString(text, -1) {
		if isJunk(match) {
			continue
		}
		if _, ok := seen[match]; ok {
			continue
		}
		seen[match] = struct{}{}
		emails = append(emails, match)
	}
	sort.Strings(emails)
	return emails
}

func isJunk(email string) bool {
	lower := strings.ToLower(email)
	for _, suffix := range junkSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// mergeEmails combines per-page email lists into one deduplicated,
// ascending-sorted list.
func mergeEmails(lists ...[]string) []string {
	seen := make(map[string]struct{})
	merged := []string{}
	for _, list := range lists {
		for _, email := range list {
			if _, ok := seen[email]; ok {
				continue
			}
			seen[email] = struct{}{}
			merged = append(merged, email)
		}
	}
	sort.Strings(merged)
	return merged
}
