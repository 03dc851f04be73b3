// Package clean normalizes raw text fields before they enter the
// output tables. Both functions are total: any input string, including
// an empty one standing in for a missing value, produces a valid result.
package clean

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Whitespace collapses every run of whitespace to a single space and
// trims the ends. Idempotent.
func Whitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TitleCase normalizes whitespace and then title-cases the string, but
// only when its casing carries no information: entirely lower-case or
// entirely upper-case input is recased, anything mixed ("McDonald",
// "O'Brien") is returned as-is so intentional capitalization survives.
func TitleCase(s string) string {
	s = Whitespace(s)
	if s == "" {
		return s
	}
	if isLower(s) || isUpper(s) {
		return cases.Title(language.Und).String(s)
	}
	return s
}

// isLower reports whether s contains at least one cased rune and no
// upper- or title-case rune. Digits and punctuation are ignored, so
// "123 main st" still counts as lower-case.
func isLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// isUpper is the mirror of isLower.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
