package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks is the Combining Diacritical Marks block, U+0300..U+036F.
var combiningMarks = runes.In(&unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
})

// Normalize lower-cases s and strips combining diacritics, so "Perawatan",
// "perawatan" and "pérawatan" compare equal.
func Normalize(s string) string {
	lowered := strings.ToLower(s)
	if isASCII(lowered) {
		return lowered
	}
	// transform chains carry state, one per call
	t := transform.Chain(norm.NFD, runes.Remove(combiningMarks), norm.NFC)
	out, _, err := transform.String(t, lowered)
	if err != nil {
		return lowered
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Matches reports whether the normalized query is a non-empty substring of
// at least one normalized field.
func Matches(query string, fields ...string) bool {
	return matchNormalized(Normalize(query), fields)
}

func matchNormalized(nq string, fields []string) bool {
	if strings.TrimSpace(nq) == "" {
		return false
	}
	for _, f := range fields {
		if strings.Contains(Normalize(f), nq) {
			return true
		}
	}
	return false
}
