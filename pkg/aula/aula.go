package aula

import (
	"context"
	"errors"
	"fmt"

	"github.com/solmirano/aula/internal/engine"
	"github.com/solmirano/aula/internal/engine/normalizer"
	"github.com/solmirano/aula/internal/engine/risk"
	"github.com/solmirano/aula/internal/engine/search"
	"github.com/solmirano/aula/internal/engine/sentiment"
	"github.com/solmirano/aula/internal/model"
)

// ErrTeacherNotFound is returned by TeacherDetail when the corpus holds no
// comments for the requested teacher.
var ErrTeacherNotFound = engine.ErrTeacherNotFound

// Aula is a comment analysis engine. It normalizes evaluation comments,
// classifies their sentiment, scans for risk keywords and aggregates
// per-teacher severity. Safe for concurrent use.
type Aula struct {
	engine     *engine.Engine
	classifier sentiment.Classifier
}

// New creates an Aula instance. Loading an ONNX model is expensive — create
// once, reuse across requests. Without a classifier option, sentiment
// operations fail and only FlagRisks and Search are usable.
func New(opts ...Option) (*Aula, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dict, err := resolveDictionary(o)
	if err != nil {
		return nil, fmt.Errorf("aula: %w", err)
	}
	det, err := risk.NewDetector(dict)
	if err != nil {
		return nil, fmt.Errorf("aula: %w", err)
	}

	cls, err := resolveClassifier(o)
	if err != nil {
		return nil, fmt.Errorf("aula: %w", err)
	}

	var engOpts []engine.Option
	if o.minLength > 0 {
		engOpts = append(engOpts, engine.WithSentimentPolicy(normalizer.MinLengthPolicy{N: o.minLength}))
	}

	return &Aula{
		engine:     engine.New(cls, det, engOpts...),
		classifier: cls,
	}, nil
}

func resolveDictionary(o options) (risk.Dictionary, error) {
	if o.dictionaryPath != "" {
		return risk.LoadDictionary(o.dictionaryPath)
	}
	if o.dictionary == nil {
		return risk.DefaultDictionary(), nil
	}
	dict := make(risk.Dictionary, len(o.dictionary))
	for name, keywords := range o.dictionary {
		cat, err := model.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		dict[cat] = keywords
	}
	return dict, nil
}

func resolveClassifier(o options) (sentiment.Classifier, error) {
	switch {
	case o.classifier != nil:
		return o.classifier, nil
	case o.remoteURL != "":
		return sentiment.NewRemote(o.remoteURL), nil
	case o.modelPath != "":
		return sentiment.NewONNX(o.modelPath, o.vocabPath)
	default:
		return nil, nil
	}
}

// Summarize produces the per-teacher severity report for teachers whose id
// falls in [from, to], sorted by severity index descending.
func (a *Aula) Summarize(ctx context.Context, comments []Comment, from, to int) ([]TeacherReport, error) {
	rows, err := a.engine.Summarize(ctx, toInternal(comments), from, to)
	if err != nil {
		return nil, err
	}
	report := make([]TeacherReport, len(rows))
	for i, r := range rows {
		report[i] = reportFromSummary(r)
	}
	return report, nil
}

// TeacherDetail returns the drill-down view for one teacher. Returns
// ErrTeacherNotFound when the corpus has no comments for that id.
func (a *Aula) TeacherDetail(ctx context.Context, comments []Comment, teacherID int) (TeacherDetail, error) {
	d, err := a.engine.TeacherDetail(ctx, toInternal(comments), teacherID)
	if err != nil {
		return TeacherDetail{}, err
	}
	return detailFromInternal(d), nil
}

// FlagRisks scans the corpus for risk keywords and returns the comments
// that matched, with their categories. Works without a classifier.
func (a *Aula) FlagRisks(comments []Comment) []Flag {
	rows := a.engine.FlagRisks(toInternal(comments))
	flags := make([]Flag, len(rows))
	for i, f := range rows {
		names := make([]string, len(f.Categories))
		for j, c := range f.Categories {
			names[j] = c.String()
		}
		flags[i] = Flag{TeacherID: f.TeacherID, Text: f.Text, Categories: names}
	}
	return flags
}

// Search finds comments containing word, grouped per teacher and sorted by
// match count. Scope is "todos" (all comments) or "riesgo" (only comments
// the risk detector matches). Works without a classifier.
func (a *Aula) Search(comments []Comment, word, scope string) ([]Match, error) {
	sc, ok := search.ParseScope(scope)
	if !ok {
		return nil, errors.New("aula: unknown search scope " + scope)
	}
	rows := a.engine.Search(toInternal(comments), word, sc)
	matches := make([]Match, len(rows))
	for i, m := range rows {
		matches[i] = Match{TeacherID: m.TeacherID, Count: m.Count, Comments: m.Comments}
	}
	return matches, nil
}

// Close releases classifier resources. Safe to call when no classifier
// was configured.
func (a *Aula) Close() error {
	if a.classifier == nil {
		return nil
	}
	return a.classifier.Close()
}
