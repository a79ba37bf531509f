// Package engine orchestrates the normalize → filter → classify → aggregate
// flow over a comment corpus.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/solmirano/aula/internal/engine/aggregate"
	"github.com/solmirano/aula/internal/engine/normalizer"
	"github.com/solmirano/aula/internal/engine/risk"
	"github.com/solmirano/aula/internal/engine/search"
	"github.com/solmirano/aula/internal/engine/sentiment"
	"github.com/solmirano/aula/internal/model"
)

// ErrTeacherNotFound reports a drill-down request for a teacher id with no
// rows in the corpus.
var ErrTeacherNotFound = errors.New("engine: teacher not found")

// ErrNoClassifier reports a sentiment-dependent operation on an engine
// built without a classifier. Risk detection and search stay usable.
var ErrNoClassifier = errors.New("engine: no sentiment classifier configured")

// Engine runs the analysis operations over an in-memory corpus. All derived
// results are rebuilt per call; only the classifier is reused across calls.
type Engine struct {
	classifier      sentiment.Classifier
	detector        *risk.Detector
	sentimentPolicy normalizer.Policy
	riskPolicy      normalizer.Policy
}

// Option configures an Engine.
type Option func(*Engine)

// WithSentimentPolicy overrides the validity filter used ahead of sentiment
// classification. Default: PlaceholderPolicy.
func WithSentimentPolicy(p normalizer.Policy) Option {
	return func(e *Engine) { e.sentimentPolicy = p }
}

// WithRiskPolicy overrides the stricter validity filter used ahead of risk
// detection. Default: MinLengthPolicy{N: 3}.
func WithRiskPolicy(p normalizer.Policy) Option {
	return func(e *Engine) { e.riskPolicy = p }
}

// New creates an Engine. The classifier may be nil for hosts that only run
// risk detection and search; the detector must not be nil.
func New(cls sentiment.Classifier, det *risk.Detector, opts ...Option) *Engine {
	e := &Engine{
		classifier:      cls,
		detector:        det,
		sentimentPolicy: normalizer.PlaceholderPolicy{},
		riskPolicy:      normalizer.MinLengthPolicy{N: 3},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Summarize builds the severity report for teachers within [from, to].
// Valid comments are classified in one batch call; the returned ratings
// are index-aligned with the submitted texts and mapped element-wise.
func (e *Engine) Summarize(ctx context.Context, records []model.Comment, from, to int) ([]model.TeacherSummary, error) {
	if e.classifier == nil {
		return nil, ErrNoClassifier
	}

	var valid []model.Comment
	var texts []string
	for _, rec := range records {
		if rec.TeacherID < from || rec.TeacherID > to {
			continue
		}
		if !e.sentimentPolicy.Valid(rec.Text) {
			continue
		}
		valid = append(valid, rec)
		texts = append(texts, normalizer.ForClassifier(rec.Text))
	}

	labeled, err := e.classify(ctx, valid, texts)
	if err != nil {
		return nil, err
	}
	return aggregate.Summarize(records, labeled, from, to), nil
}

// TeacherDetail builds the per-teacher drill-down: every row for the
// teacher, sentiment counts, and cleaned comments grouped by label.
func (e *Engine) TeacherDetail(ctx context.Context, records []model.Comment, teacherID int) (model.TeacherDetail, error) {
	if e.classifier == nil {
		return model.TeacherDetail{}, ErrNoClassifier
	}

	detail := model.TeacherDetail{
		TeacherID: teacherID,
		ByLabel:   make(map[model.Label][]string),
	}
	var valid []model.Comment
	var texts []string
	for _, rec := range records {
		if rec.TeacherID != teacherID {
			continue
		}
		detail.Rows = append(detail.Rows, rec)
		if e.sentimentPolicy.Valid(rec.Text) {
			valid = append(valid, rec)
			texts = append(texts, normalizer.ForClassifier(rec.Text))
		}
	}
	if len(detail.Rows) == 0 {
		return model.TeacherDetail{}, fmt.Errorf("%w: id %d", ErrTeacherNotFound, teacherID)
	}

	labeled, err := e.classify(ctx, valid, texts)
	if err != nil {
		return model.TeacherDetail{}, err
	}
	for i, lc := range labeled {
		detail.ValidComments++
		switch lc.Label {
		case model.Negative:
			detail.NegativeCount++
		case model.Neutral:
			detail.NeutralCount++
		case model.Positive:
			detail.PositiveCount++
		}
		detail.ByLabel[lc.Label] = append(detail.ByLabel[lc.Label], texts[i])
	}
	return detail, nil
}

// FlagRisks returns one flag per comment that triggers at least one risk
// category. Independent of the sentiment classifier: usable when the
// classifier is unavailable.
func (e *Engine) FlagRisks(records []model.Comment) []model.RiskFlag {
	var flags []model.RiskFlag
	for _, rec := range records {
		if !e.riskPolicy.Valid(rec.Text) {
			continue
		}
		cats := e.detector.Detect(normalizer.Clean(rec.Text))
		if len(cats) == 0 {
			continue
		}
		flags = append(flags, model.RiskFlag{
			TeacherID:  rec.TeacherID,
			Text:       rec.Text,
			Categories: cats,
		})
	}
	return flags
}

// Search runs a keyword search over the corpus, optionally restricted to
// risk-flagged comments.
func (e *Engine) Search(records []model.Comment, query string, scope search.Scope) []model.KeywordMatch {
	return search.Run(records, query, scope, e.detector)
}

// classify submits the cleaned texts in one batch and zips the mapped
// labels with their comments, preserving order.
func (e *Engine) classify(ctx context.Context, valid []model.Comment, texts []string) ([]aggregate.LabeledComment, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	ratings, err := e.classifier.ClassifyBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("engine: classify: %w", err)
	}
	if len(ratings) != len(texts) {
		return nil, fmt.Errorf("engine: classifier returned %d ratings for %d texts", len(ratings), len(texts))
	}
	labels, err := sentiment.MapLabels(ratings)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	labeled := make([]aggregate.LabeledComment, len(valid))
	for i := range valid {
		labeled[i] = aggregate.LabeledComment{Comment: valid[i], Label: labels[i]}
	}
	return labeled, nil
}
