package music

import (
	"strings"
	"unicode"

	"github.com/gosimple/unidecode"
)

// SearchKey derives the normalized search key from the given text parts:
// transliterated to ASCII, lowercased, with everything that is not a letter
// or digit stripped. A track's stored key and a user query normalized the
// same way match by plain substring containment regardless of formatting.
func SearchKey(parts ...string) string {
	s := unidecode.Unidecode(strings.Join(parts, " "))
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeQuery normalizes a raw user query the same way track search keys
// are derived.
func NormalizeQuery(q string) string {
	return SearchKey(q)
}
