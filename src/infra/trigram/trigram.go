// Package trigram implements pg_trgm-style trigram similarity scoring.
// It exists so the SQLite store can offer the same similarity() function
// and 0.3 match threshold Postgres installations get from the pg_trgm
// extension.
package trigram

import (
	"strings"
	"unicode"
)

// DefaultThreshold is the minimum similarity considered a match, matching
// pg_trgm's % operator default.
const DefaultThreshold = 0.3

// Similarity returns the trigram similarity of two strings in [0, 1]:
// the size of the trigram-set intersection over the size of the union.
func Similarity(a, b string) float64 {
	ta := trigrams(a)
	tb := trigrams(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	shared := 0
	for t := range ta {
		if _, ok := tb[t]; ok {
			shared++
		}
	}
	union := len(ta) + len(tb) - shared
	return float64(shared) / float64(union)
}

// Matches reports whether the two strings are at least threshold-similar.
func Matches(a, b string, threshold float64) bool {
	return Similarity(a, b) >= threshold
}

// trigrams extracts the deduplicated trigram set of s. Like pg_trgm, the
// string is lowercased and split into alphanumeric words, and each word is
// padded with two leading and one trailing blank before extraction.
func trigrams(s string) map[string]struct{} {
	set := make(map[string]struct{})
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		padded := []rune("  " + w + " ")
		for i := 0; i+3 <= len(padded); i++ {
			set[string(padded[i:i+3])] = struct{}{}
		}
	}
	return set
}
