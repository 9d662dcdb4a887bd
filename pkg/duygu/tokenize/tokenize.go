// Package tokenize normalizes raw Turkish sentences into token sequences.
package tokenize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Turkish casing is not the Unicode default: dotted İ lowercases to i and
// dotless I to ı. A language-aware caser avoids the İ/I trap.
var lowerTurkish = cases.Lower(language.Turkish)

// Lower lowercases a string with Turkish casing rules.
func Lower(s string) string {
	return lowerTurkish.String(s)
}

// Normalize lowercases a sentence, removes non-letter runes, and splits on
// whitespace into an ordered token sequence. Punctuation is deleted in place
// rather than treated as a boundary, so "güzel'di" stays one token. Empty
// tokens are discarded and word order is preserved — negation scoping
// downstream depends on it.
//
// Normalize is idempotent: feeding its output back in yields the same tokens.
func Normalize(sentence string) []string {
	sentence = Lower(sentence)
	sentence = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r):
			return r
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, sentence)
	return strings.Fields(sentence)
}
