package aggregate

import (
	"math"
	"testing"

	"github.com/solmirano/aula/internal/model"
)

func intPtr(v int) *int { return &v }

func comment(teacher int, subject *int, text string) model.Comment {
	return model.Comment{TeacherID: teacher, SubjectID: subject, Text: text}
}

func labeled(teacher int, lbl model.Label) LabeledComment {
	return LabeledComment{Comment: model.Comment{TeacherID: teacher}, Label: lbl}
}

func TestSummarizeCounts(t *testing.T) {
	records := []model.Comment{
		comment(1, intPtr(10), "Buen profesor"),
		comment(1, intPtr(10), "."),
		comment(1, intPtr(20), "excelente"),
		comment(2, intPtr(30), "me grito y me humillo"),
	}
	labeledSet := []LabeledComment{
		labeled(1, model.Positive),
		labeled(1, model.Positive),
		labeled(2, model.Negative),
	}

	got := Summarize(records, labeledSet, 1, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}

	// Teacher 2 ranks first: severity 1.0 * ln(2) > 0.
	first := got[0]
	if first.TeacherID != 2 {
		t.Fatalf("first row teacher = %d, want 2", first.TeacherID)
	}
	if first.ValidComments != 1 || first.NegativeCount != 1 {
		t.Errorf("teacher 2 counts = %+v", first)
	}
	if want := math.Log1p(1); math.Abs(first.SeverityIndex-want) > 1e-9 {
		t.Errorf("teacher 2 severity = %v, want %v", first.SeverityIndex, want)
	}

	second := got[1]
	if second.TeacherID != 1 {
		t.Fatalf("second row teacher = %d, want 1", second.TeacherID)
	}
	if second.SubjectsTaught != 2 {
		t.Errorf("teacher 1 subjects = %d, want 2", second.SubjectsTaught)
	}
	if second.StudentsServed != 3 {
		t.Errorf("teacher 1 students = %d, want 3 (invalid rows count)", second.StudentsServed)
	}
	if second.ValidComments != 2 || second.PositiveCount != 2 {
		t.Errorf("teacher 1 counts = %+v", second)
	}
	if second.SeverityIndex != 0 {
		t.Errorf("teacher 1 severity = %v, want 0", second.SeverityIndex)
	}
}

func TestSummarizeZeroValidComments(t *testing.T) {
	records := []model.Comment{comment(7, nil, ".")}
	got := Summarize(records, nil, 1, 10)
	if len(got) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(got))
	}
	s := got[0]
	if s.NegativeProportion != 0 {
		t.Errorf("proportion = %v, want explicit 0", s.NegativeProportion)
	}
	if s.SeverityIndex != 0 {
		t.Errorf("severity = %v, want 0", s.SeverityIndex)
	}
	if s.StudentsServed != 1 {
		t.Errorf("students = %d, want 1", s.StudentsServed)
	}
}

func TestSummarizeRangeFilter(t *testing.T) {
	records := []model.Comment{
		comment(1, nil, "a"),
		comment(5, nil, "b"),
		comment(9, nil, "c"),
	}
	got := Summarize(records, nil, 2, 8)
	if len(got) != 1 || got[0].TeacherID != 5 {
		t.Fatalf("range filter result = %+v, want only teacher 5", got)
	}
}

func TestSummarizeVolumeDampening(t *testing.T) {
	// Ten valid comments, one negative vs. one valid comment, one negative.
	var labeledSet []LabeledComment
	var records []model.Comment
	for i := 0; i < 10; i++ {
		records = append(records, comment(1, nil, "x"))
		lbl := model.Positive
		if i == 0 {
			lbl = model.Negative
		}
		labeledSet = append(labeledSet, labeled(1, lbl))
	}
	records = append(records, comment(2, nil, "y"))
	labeledSet = append(labeledSet, labeled(2, model.Negative))

	got := Summarize(records, labeledSet, 1, 2)

	if got[0].TeacherID != 2 {
		t.Fatalf("expected single-comment teacher to rank first, got teacher %d", got[0].TeacherID)
	}
	wantLow := 0.1 * math.Log1p(1)
	wantHigh := 1.0 * math.Log1p(1)
	if math.Abs(got[1].SeverityIndex-wantLow) > 1e-9 {
		t.Errorf("ten-comment teacher severity = %v, want %v", got[1].SeverityIndex, wantLow)
	}
	if math.Abs(got[0].SeverityIndex-wantHigh) > 1e-9 {
		t.Errorf("single-comment teacher severity = %v, want %v", got[0].SeverityIndex, wantHigh)
	}
}

func TestSummarizeInvariants(t *testing.T) {
	records := []model.Comment{
		comment(1, nil, "a"), comment(1, nil, "b"), comment(1, nil, "c"),
		comment(2, nil, "d"),
	}
	labeledSet := []LabeledComment{
		labeled(1, model.Negative), labeled(1, model.Neutral), labeled(1, model.Positive),
		labeled(2, model.Neutral),
	}
	for _, s := range Summarize(records, labeledSet, 1, 2) {
		if sum := s.NegativeCount + s.NeutralCount + s.PositiveCount; sum != s.ValidComments {
			t.Errorf("teacher %d: label counts sum %d != valid %d", s.TeacherID, sum, s.ValidComments)
		}
		if s.NegativeProportion < 0 || s.NegativeProportion > 1 {
			t.Errorf("teacher %d: proportion %v outside [0,1]", s.TeacherID, s.NegativeProportion)
		}
		if s.SeverityIndex < 0 {
			t.Errorf("teacher %d: severity %v negative", s.TeacherID, s.SeverityIndex)
		}
	}
}

func TestSummarizeTieBreakByTeacherID(t *testing.T) {
	records := []model.Comment{
		comment(4, nil, "a"), comment(2, nil, "b"), comment(9, nil, "c"),
	}
	// All severities zero: order must be by teacher id ascending.
	got := Summarize(records, nil, 1, 10)
	ids := []int{got[0].TeacherID, got[1].TeacherID, got[2].TeacherID}
	if ids[0] != 2 || ids[1] != 4 || ids[2] != 9 {
		t.Errorf("tie-break order = %v, want [2 4 9]", ids)
	}
}

func TestSummarizeEmptyRange(t *testing.T) {
	records := []model.Comment{comment(1, nil, "a")}
	if got := Summarize(records, nil, 100, 200); len(got) != 0 {
		t.Fatalf("expected empty summary set, got %d rows", len(got))
	}
}
