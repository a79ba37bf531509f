package normalizer

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"accents stripped", "El profesor gritó y humilló", "el profesor grito y humillo"},
		{"upper to lower", "BUEN PROFESOR", "buen profesor"},
		{"surrounding whitespace", "  buen trato  ", "buen trato"},
		{"enye collapses to n", "enseñanza", "ensenanza"},
		{"umlaut", "pingüino", "pinguino"},
		{"empty input", "", ""},
		{"punctuation kept", "muy malo!!", "muy malo!!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestForClassifier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dots and dashes removed", "regular.- podría mejorar.", "regular podria mejorar"},
		{"dot only becomes empty", ".", ""},
		{"dash only becomes empty", " - ", ""},
		{"interior dash", "auto-evaluación", "autoevaluacion"},
		{"other punctuation kept", "¿por qué grita?", "¿por que grita?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForClassifier(tt.in); got != tt.want {
				t.Errorf("ForClassifier(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestForClassifierTruncates(t *testing.T) {
	long := strings.Repeat("a", 600)
	got := ForClassifier(long)
	if len([]rune(got)) != MaxClassifierChars {
		t.Fatalf("expected %d runes, got %d", MaxClassifierChars, len([]rune(got)))
	}
	// Multi-byte runes count as single characters.
	longRunes := strings.Repeat("á", 600)
	got = ForClassifier(longRunes)
	if n := len([]rune(got)); n != MaxClassifierChars {
		t.Fatalf("expected %d runes for multi-byte input, got %d", MaxClassifierChars, n)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		".",
		"El profesor gritó y humilló.",
		"  BUEN   PROFESOR  ",
		strings.Repeat("palabra acentuada é ", 60),
		"auto-evaluación . - continua",
	}
	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean not idempotent for %q: %q != %q", in, once, twice)
		}
		once = ForClassifier(in)
		if twice := ForClassifier(once); twice != once {
			t.Errorf("ForClassifier not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestPlaceholderPolicy(t *testing.T) {
	p := PlaceholderPolicy{}
	invalid := []string{"", ".", "-", " ", "   ", " . ", "\t-\n"}
	for _, in := range invalid {
		if p.Valid(in) {
			t.Errorf("PlaceholderPolicy.Valid(%q) = true, want false", in)
		}
	}
	valid := []string{"ok", "..", "x", "buen profesor"}
	for _, in := range valid {
		if !p.Valid(in) {
			t.Errorf("PlaceholderPolicy.Valid(%q) = false, want true", in)
		}
	}
}

func TestMinLengthPolicy(t *testing.T) {
	p := MinLengthPolicy{N: 3}
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"no", false},
		{"  ab  ", false},
		{"sí.", true},
		{"mal", true},
		{"buen profesor", true},
	}
	for _, tt := range tests {
		if got := p.Valid(tt.in); got != tt.want {
			t.Errorf("MinLengthPolicy{3}.Valid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
