package harvest_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/pmilosz/leadharvest/harvest"
	"github.com/stretchr/testify/assert"
)

func TestExtractEmails(t *testing.T) {
	t.Parallel()

	t.Run("finds and sorts distinct addresses", func(t *testing.T) {
		t.Parallel()

		body := "Contact us: sales@example.com or info@example.com"
		assert.Equal(t, []string{"info@example.com", "sales@example.com"}, harvest.ExtractEmails(body))
	})

	t.Run("drops image filename lookalikes", func(t *testing.T) {
		t.Parallel()

		body := `<img src="logo@2x.png"> reach contact@firm.co`
		assert.Equal(t, []string{"contact@firm.co"}, harvest.ExtractEmails(body))
	})

	t.Run("junk suffix match is case-insensitive", func(t *testing.T) {
		t.Parallel()

		body := "sprite@2x.PNG icon@3x.Jpeg photo@x.GIF real@firm.io"
		assert.Equal(t, []string{"real@firm.io"}, harvest.ExtractEmails(body))
	})

	t.Run("deduplicates exact matches", func(t *testing.T) {
		t.Parallel()

		body := "dup@x.com dup@x.com and again dup@x.com"
		assert.Equal(t, []string{"dup@x.com"}, harvest.ExtractEmails(body))
	})

	t.Run("preserves case and treats case variants as distinct", func(t *testing.T) {
		t.Parallel()

		body := "Sales@Example.com sales@example.com"
		assert.Equal(t, []string{"Sales@Example.com", "sales@example.com"}, harvest.ExtractEmails(body))
	})

	t.Run("matches inside mailto links and scripts", func(t *testing.T) {
		t.Parallel()

		body := `<a href="mailto:office@example.org?subject=hi">mail</a>
			<script>var e = "js" + "hidden@example.org";</script>`
		got := harvest.ExtractEmails(body)

		assert.Contains(t, got, "office@example.org")
		assert.Contains(t, got, "hidden@example.org")
	})

	t.Run("decodes HTML entity obfuscation", func(t *testing.T) {
		t.Parallel()

		body := "write to info&#64;example.com for details"
		assert.Equal(t, []string{"info@example.com"}, harvest.ExtractEmails(body))
	})

	t.Run("requires two-letter alphabetic TLD", func(t *testing.T) {
		t.Parallel()

		got := harvest.ExtractEmails("bad@host.1 worse@x short@y.z ok@example.co")
		assert.Equal(t, []string{"ok@example.co"}, got)
	})

	t.Run("empty text yields empty non-nil list", func(t *testing.T) {
		t.Parallel()

		got := harvest.ExtractEmails("")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("output is always sorted and distinct", func(t *testing.T) {
		t.Parallel()

		body := "z@z.zz a@a.aa m@m.mm z@z.zz a@a.aa"
		got := harvest.ExtractEmails(body)

		assert.True(t, sort.StringsAreSorted(got))
		seen := map[string]bool{}
		for _, e := range got {
			assert.False(t, seen[e], "duplicate %q", e)
			seen[e] = true
			assert.False(t, strings.HasSuffix(strings.ToLower(e), ".png"))
		}
	})
}
