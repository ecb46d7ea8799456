// Package textutil holds small string helpers for display and search.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first letter of each space-separated word.
// Other characters, including hyphens, are left alone.
func Capitalize(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// ContainsBrokenSubstring reports whether every rune of sub appears in s in
// the same order, with any gaps between them. "bsr" matches "bulbasaur".
// An empty sub never matches.
func ContainsBrokenSubstring(s, sub string) bool {
	if sub == "" {
		return false
	}
	want := []rune(sub)
	i := 0
	for _, r := range s {
		if r == want[i] {
			i++
			if i == len(want) {
				return true
			}
		}
	}
	return false
}
