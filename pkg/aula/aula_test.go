package aula

import (
	"context"
	"errors"
	"math"
	"testing"
)

// fakeClassifier returns a fixed rating per text, cycling when the batch
// is longer than the configured ratings.
type fakeClassifier struct {
	ratings []int
	calls   int
	closed  bool
}

func (f *fakeClassifier) ClassifyBatch(_ context.Context, texts []string) ([]int, error) {
	f.calls++
	out := make([]int, len(texts))
	for i := range texts {
		out[i] = f.ratings[i%len(f.ratings)]
	}
	return out, nil
}

func (f *fakeClassifier) Close() error {
	f.closed = true
	return nil
}

func subject(id int) *int { return &id }

func testCorpus() []Comment {
	return []Comment{
		{TeacherID: 1, SubjectID: subject(10), Text: "Buen profesor"},
		{TeacherID: 1, SubjectID: subject(10), Text: "."},
		{TeacherID: 2, SubjectID: subject(30), Text: "me grito y me humillo"},
	}
}

func TestSummarize(t *testing.T) {
	cls := &fakeClassifier{ratings: []int{5, 1}}
	a, err := New(WithClassifier(cls))
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	report, err := a.Summarize(context.Background(), testCorpus(), 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(report) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report))
	}

	// Teacher 2's only comment rated 1 star: proportion 1, severity ln 2.
	top := report[0]
	if top.TeacherID != 2 {
		t.Fatalf("top teacher = %d, want 2", top.TeacherID)
	}
	if top.NegativeProportion != 1 {
		t.Errorf("proportion = %v, want 1", top.NegativeProportion)
	}
	if want := math.Log1p(1); math.Abs(top.SeverityIndex-want) > 1e-9 {
		t.Errorf("severity = %v, want %v", top.SeverityIndex, want)
	}
	if cls.calls != 1 {
		t.Errorf("classifier calls = %d, want 1 batch", cls.calls)
	}

	// The placeholder "." still counts toward students served.
	if report[1].StudentsServed != 2 || report[1].ValidComments != 1 {
		t.Errorf("teacher 1 row = %+v", report[1])
	}
}

func TestSummarizeWithoutClassifier(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	if _, err := a.Summarize(context.Background(), testCorpus(), 0, 100); err == nil {
		t.Fatal("expected error without a classifier")
	}
}

func TestTeacherDetail(t *testing.T) {
	a, err := New(WithClassifier(&fakeClassifier{ratings: []int{1}}))
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	d, err := a.TeacherDetail(context.Background(), testCorpus(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if d.TotalComments != 1 || d.NegativeCount != 1 {
		t.Errorf("detail = %+v", d)
	}
	if got := d.ByLabel["NEG"]; len(got) != 1 || got[0] != "me grito y me humillo" {
		t.Errorf("ByLabel[NEG] = %v", got)
	}

	if _, err := a.TeacherDetail(context.Background(), testCorpus(), 99); !errors.Is(err, ErrTeacherNotFound) {
		t.Errorf("err = %v, want ErrTeacherNotFound", err)
	}
}

func TestFlagRisksWithoutClassifier(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	flags := a.FlagRisks(testCorpus())
	if len(flags) != 1 || flags[0].TeacherID != 2 {
		t.Fatalf("flags = %+v", flags)
	}
	if got := flags[0].Categories; len(got) != 1 || got[0] != "maltrato_verbal_fisico" {
		t.Errorf("categories = %v", got)
	}
}

func TestSearch(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	matches, err := a.Search(testCorpus(), "grit", "todos")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].TeacherID != 2 || matches[0].Count != 1 {
		t.Fatalf("matches = %+v", matches)
	}

	if _, err := a.Search(testCorpus(), "grit", "bogus"); err == nil {
		t.Fatal("expected error for unknown scope")
	}
}

func TestCustomDictionary(t *testing.T) {
	a, err := New(WithDictionary(map[string][]string{
		"riesgo_psicosocial": {"agobiado"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	flags := a.FlagRisks([]Comment{{TeacherID: 3, Text: "me siento agobiado"}})
	if len(flags) != 1 || flags[0].Categories[0] != "riesgo_psicosocial" {
		t.Fatalf("flags = %+v", flags)
	}
	// The built-in keywords are gone.
	if got := a.FlagRisks(testCorpus()); len(got) != 0 {
		t.Errorf("expected no flags with replaced dictionary, got %+v", got)
	}
}

func TestCustomDictionaryUnknownCategory(t *testing.T) {
	if _, err := New(WithDictionary(map[string][]string{"nope": {"x"}})); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestClose(t *testing.T) {
	cls := &fakeClassifier{ratings: []int{3}}
	a, err := New(WithClassifier(cls))
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	if !cls.closed {
		t.Error("classifier not closed")
	}
}
