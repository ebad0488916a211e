package harvest_test

import (
	"testing"
	"unicode/utf8"

	"github.com/pmilosz/leadharvest/harvest"
	"github.com/stretchr/testify/assert"
)

func TestDecodeText(t *testing.T) {
	t.Parallel()

	t.Run("passes valid UTF-8 through unchanged", func(t *testing.T) {
		t.Parallel()

		in := "Contact: info@example.com — zażółć"
		assert.Equal(t, in, harvest.DecodeText([]byte(in)))
	})

	t.Run("falls back to Latin-1 for invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		// 0xE9 is 'é' in Latin-1 and an invalid sequence in UTF-8.
		in := []byte("caf\xe9 info@example.com")
		out := harvest.DecodeText(in)

		assert.True(t, utf8.ValidString(out))
		assert.Contains(t, out, "café")
		assert.Contains(t, out, "info@example.com")
	})

	t.Run("never fails for arbitrary bytes", func(t *testing.T) {
		t.Parallel()

		in := []byte{0xff, 0xfe, 0x00, 0x80, 0xc3}
		out := harvest.DecodeText(in)

		assert.True(t, utf8.ValidString(out))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", harvest.DecodeText(nil))
	})
}
