// Package risk flags comments containing hazard-related language by exact
// whole-word keyword matching over normalized text.
package risk

import (
	"fmt"
	"regexp"

	"github.com/solmirano/aula/internal/engine/normalizer"
	"github.com/solmirano/aula/internal/model"
)

// Dictionary maps each risk category to its keyword roots. Keywords are
// normalized (diacritic-free, lowercase) at Detector construction, so
// dictionaries may be written with or without accents.
type Dictionary map[model.Category][]string

// Detector matches normalized comment text against per-category keyword
// sets. Matching is strict whole-word: a keyword hits only when delimited
// by word boundaries, never as a fragment of a longer word.
type Detector struct {
	patterns map[model.Category][]*regexp.Regexp
}

// NewDetector compiles the dictionary into per-keyword boundary patterns.
// An empty or nil dictionary yields a detector that never matches.
func NewDetector(dict Dictionary) (*Detector, error) {
	d := &Detector{patterns: make(map[model.Category][]*regexp.Regexp, len(dict))}
	for cat, keywords := range dict {
		for _, kw := range keywords {
			kw = normalizer.Clean(kw)
			if kw == "" {
				continue
			}
			re, err := regexp.Compile(`\b` + regexp.QuoteMeta(kw) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("risk: keyword %q: %w", kw, err)
			}
			d.patterns[cat] = append(d.patterns[cat], re)
		}
	}
	return d, nil
}

// Detect returns the categories triggered by the cleaned text, in canonical
// order. Each category appears at most once however many of its keywords hit.
func (d *Detector) Detect(cleaned string) []model.Category {
	var cats []model.Category
	for _, cat := range model.Categories() {
		for _, re := range d.patterns[cat] {
			if re.MatchString(cleaned) {
				cats = append(cats, cat)
				break
			}
		}
	}
	return cats
}

// Match reports whether the cleaned text triggers any category.
func (d *Detector) Match(cleaned string) bool {
	for _, cat := range model.Categories() {
		for _, re := range d.patterns[cat] {
			if re.MatchString(cleaned) {
				return true
			}
		}
	}
	return false
}
