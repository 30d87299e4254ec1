package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/julianstephens/agenda/internal/locale"
)

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	l := locale.Default()
	_, size := utf8.DecodeRuneInString(s)
	return l.Upper(s[:size]) + l.Lower(s[size:])
}

// CapitalizeWords applies Capitalize to every whitespace-separated word and
// joins them with single spaces.
func CapitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}
