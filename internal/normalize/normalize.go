// Package normalize prepares a transcribed utterance for pattern matching.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// "5 mil" -> "5000". The trailing group keeps "milho" out of the rewrite
	// and is written back unchanged.
	thousandsRE = regexp.MustCompile(`(\d+)\s*mil([^\p{L}\p{N}_]|$)`)

	// "2 e 5" -> "2.5". Applied to any two numbers joined by "e", whether or
	// not they form a fraction.
	conjunctionRE = regexp.MustCompile(`(\d+)\s*e\s*(\d+)`)
)

// Text returns the normalized form of raw: NFC-composed, lowercased,
// trimmed, with numeric idioms rewritten. Each rewrite is a single global
// pass; results are not fed back through the same rule.
func Text(raw string) string {
	s := norm.NFC.String(raw)
	s = strings.ToLower(strings.TrimSpace(s))
	s = thousandsRE.ReplaceAllString(s, "${1}000${2}")
	s = conjunctionRE.ReplaceAllString(s, "${1}.${2}")
	return s
}
