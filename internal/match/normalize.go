// Package match provides fuzzy name matching used to suggest the closest
// existing user or tag name when a configured one does not resolve.
package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases a name and strips accents and surrounding
// whitespace so that "José " and "jose" compare equal.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return removeAccents(s)
}

// removeAccents strips diacritical marks (é → e, ñ → n).
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
