package harvest

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeText interprets raw page bytes as text. Valid UTF-8 is returned
// unchanged; anything else is decoded as Latin-1, which maps every byte to
// a rune and therefore cannot fail. The scanner always receives valid text
// regardless of what the server sent.
func DecodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		// Latin-1 decoding is total; this branch guards against future
		// decoder changes. The raw conversion is still scannable.
		return string(b)
	}
	return string(decoded)
}
