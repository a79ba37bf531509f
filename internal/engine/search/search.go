// Package search implements ad-hoc keyword search over the comment corpus.
//
// Search matching is plain substring containment over normalized text, the
// behavior of the original free-search module. Risk-category detection
// (package risk) keeps the stricter whole-word policy; the two are
// deliberately different.
package search

import (
	"sort"
	"strings"

	"github.com/solmirano/aula/internal/engine/normalizer"
	"github.com/solmirano/aula/internal/engine/risk"
	"github.com/solmirano/aula/internal/model"
)

// Scope restricts which comments a search considers.
type Scope int

const (
	// All searches the entire corpus.
	All Scope = iota
	// RiskOnly searches only comments flagged by the risk detector.
	RiskOnly
)

// ParseScope resolves a scope name ("all"/"todos" or "risk"/"riesgo").
func ParseScope(s string) (Scope, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "todos":
		return All, true
	case "risk", "risk-only", "riesgo":
		return RiskOnly, true
	}
	return All, false
}

// Run filters comments containing the query and groups matches per teacher.
// The query is normalized with the same rules as comment text. An empty
// query yields no results. Teachers with zero matches are omitted. Output
// is sorted by match count descending, ties broken by teacher id ascending.
func Run(records []model.Comment, query string, scope Scope, det *risk.Detector) []model.KeywordMatch {
	q := normalizer.Clean(query)
	if q == "" {
		return nil
	}

	byTeacher := make(map[int]*model.KeywordMatch)
	var order []int
	for _, rec := range records {
		cleaned := normalizer.Clean(rec.Text)
		if scope == RiskOnly && (det == nil || !det.Match(cleaned)) {
			continue
		}
		if !strings.Contains(cleaned, q) {
			continue
		}
		m, ok := byTeacher[rec.TeacherID]
		if !ok {
			m = &model.KeywordMatch{TeacherID: rec.TeacherID}
			byTeacher[rec.TeacherID] = m
			order = append(order, rec.TeacherID)
		}
		m.Count++
		m.Comments = append(m.Comments, rec.Text)
	}

	matches := make([]model.KeywordMatch, 0, len(order))
	for _, id := range order {
		matches = append(matches, *byTeacher[id])
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Count != matches[j].Count {
			return matches[i].Count > matches[j].Count
		}
		return matches[i].TeacherID < matches[j].TeacherID
	})
	return matches
}
