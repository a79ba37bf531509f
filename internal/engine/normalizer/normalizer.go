// Package normalizer prepares raw comment text for risk detection,
// keyword search, and sentiment classification.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// MaxClassifierChars is the hard input-length ceiling of the sentiment
// classifier. Excess text is dropped silently, no truncation marker.
const MaxClassifierChars = 510

// Clean strips diacritics, lowercases, and trims surrounding whitespace.
// The risk dictionary uses ASCII root forms, so accented variants of a
// keyword match uniformly after Clean. Idempotent.
func Clean(raw string) string {
	return strings.TrimSpace(strings.ToLower(stripAccents(raw)))
}

// ForClassifier produces the sentiment-path form of a comment: Clean plus
// removal of literal '.' and '-' (so punctuation-only placeholders cannot
// masquerade as content) and truncation to MaxClassifierChars. Idempotent.
func ForClassifier(raw string) string {
	s := Clean(raw)
	s = strings.Map(func(r rune) rune {
		if r == '.' || r == '-' {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > MaxClassifierChars {
		s = string(runes[:MaxClassifierChars])
	}
	return strings.TrimSpace(s)
}

// stripAccents removes combining diacritical marks after NFD normalization.
func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
