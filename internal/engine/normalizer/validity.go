package normalizer

import "strings"

// Policy decides whether a raw comment carries any signal. Invalid comments
// are excluded from sentiment statistics and risk views but stay in the
// corpus for audience counts.
type Policy interface {
	Valid(raw string) bool
}

// placeholders are the exact form-filler strings students type to skip the
// free-text field. Whitespace-only input trims to "".
var placeholders = map[string]struct{}{
	"":  {},
	".": {},
	"-": {},
}

// PlaceholderPolicy rejects only the known placeholder strings.
type PlaceholderPolicy struct{}

func (PlaceholderPolicy) Valid(raw string) bool {
	_, skip := placeholders[strings.TrimSpace(raw)]
	return !skip
}

// MinLengthPolicy rejects comments whose trimmed form is shorter than N
// runes. The stricter variant used ahead of risk detection.
type MinLengthPolicy struct {
	N int
}

func (p MinLengthPolicy) Valid(raw string) bool {
	return len([]rune(strings.TrimSpace(raw))) >= p.N
}
