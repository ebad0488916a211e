package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string. An empty
// value maps to the zero time.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// formatRFC3339 formats a timestamp for storage. The zero time maps to
// an empty string.
func formatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// joinEmails flattens an email list for storage in a single column.
// Email addresses cannot contain newlines, so "\n" is a safe separator.
func joinEmails(emails []string) string {
	return strings.Join(emails, "\n")
}

// splitEmails reverses joinEmails. An empty column maps to nil.
func splitEmails(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, "\n")
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder
// if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
