package harvest

import "strings"

// NormalizeURL prepares a caller-supplied website string for fetching.
// Whitespace is trimmed; an empty result means "no URL" and is returned
// as-is. Anything without an explicit http:// or https:// scheme gets
// https:// prepended, since business records routinely store bare domains.
// Normalization is lenient: malformed input is never rejected here.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return "https://" + trimmed
	}
	return trimmed
}
