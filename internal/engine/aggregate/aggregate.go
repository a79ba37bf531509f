// Package aggregate builds the per-teacher severity report.
package aggregate

import (
	"math"
	"sort"

	"github.com/solmirano/aula/internal/model"
)

// LabeledComment is a valid comment annotated with its sentiment bucket.
type LabeledComment struct {
	model.Comment
	Label model.Label
}

// Summarize builds one TeacherSummary per distinct teacher id found in
// records within [from, to], including teachers with zero valid comments.
// Audience counts (subjects, students) come from all records; sentiment
// counts only from the labeled subset. Output is sorted by severity index
// descending, ties broken by teacher id ascending.
func Summarize(records []model.Comment, labeled []LabeledComment, from, to int) []model.TeacherSummary {
	inRange := func(id int) bool { return id >= from && id <= to }

	byTeacher := make(map[int][]model.Comment)
	for _, rec := range records {
		if inRange(rec.TeacherID) {
			byTeacher[rec.TeacherID] = append(byTeacher[rec.TeacherID], rec)
		}
	}

	labeledByTeacher := make(map[int][]LabeledComment)
	for _, lc := range labeled {
		if inRange(lc.TeacherID) {
			labeledByTeacher[lc.TeacherID] = append(labeledByTeacher[lc.TeacherID], lc)
		}
	}

	summaries := make([]model.TeacherSummary, 0, len(byTeacher))
	for id, rows := range byTeacher {
		s := model.TeacherSummary{
			TeacherID:      id,
			SubjectsTaught: distinctSubjects(rows),
			StudentsServed: len(rows),
		}
		for _, lc := range labeledByTeacher[id] {
			s.ValidComments++
			switch lc.Label {
			case model.Negative:
				s.NegativeCount++
			case model.Neutral:
				s.NeutralCount++
			case model.Positive:
				s.PositiveCount++
			}
		}
		if s.ValidComments > 0 {
			s.NegativeProportion = float64(s.NegativeCount) / float64(s.ValidComments)
		}
		// Log-volume dampening: proportion alone overweights teachers with
		// a single negative comment.
		s.SeverityIndex = s.NegativeProportion * math.Log1p(float64(s.NegativeCount))
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].SeverityIndex != summaries[j].SeverityIndex {
			return summaries[i].SeverityIndex > summaries[j].SeverityIndex
		}
		return summaries[i].TeacherID < summaries[j].TeacherID
	})
	return summaries
}

func distinctSubjects(rows []model.Comment) int {
	seen := make(map[int]struct{})
	for _, r := range rows {
		if r.SubjectID != nil {
			seen[*r.SubjectID] = struct{}{}
		}
	}
	return len(seen)
}
