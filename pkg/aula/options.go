package aula

import "context"

// Classifier rates texts 1-5 stars. Implement it to plug in a custom
// sentiment backend; the built-in backends are selected with
// WithRemoteClassifier and WithONNXClassifier.
type Classifier interface {
	ClassifyBatch(ctx context.Context, texts []string) ([]int, error)
	Close() error
}

type options struct {
	classifier     Classifier
	remoteURL      string
	modelPath      string
	vocabPath      string
	dictionary     map[string][]string
	dictionaryPath string
	minLength      int
}

// Option configures an Aula instance.
type Option func(*options)

// WithRemoteClassifier uses an HTTP classification service at baseURL.
func WithRemoteClassifier(baseURL string) Option {
	return func(o *options) {
		o.remoteURL = baseURL
	}
}

// WithONNXClassifier loads a local 5-star sequence classification model.
func WithONNXClassifier(modelPath, vocabPath string) Option {
	return func(o *options) {
		o.modelPath = modelPath
		o.vocabPath = vocabPath
	}
}

// WithClassifier injects a custom classifier implementation. Takes
// precedence over the built-in backends.
func WithClassifier(c Classifier) Option {
	return func(o *options) {
		o.classifier = c
	}
}

// WithDictionary replaces the built-in risk keyword dictionary. Keys are
// category identifiers ("riesgo_psicosocial", "acoso_maltrato",
// "maltrato_verbal_fisico", "vulnerabilidad_discriminacion").
func WithDictionary(dict map[string][]string) Option {
	return func(o *options) {
		o.dictionary = dict
	}
}

// WithDictionaryFile loads the risk keyword dictionary from a YAML file.
func WithDictionaryFile(path string) Option {
	return func(o *options) {
		o.dictionaryPath = path
	}
}

// WithMinLength switches the sentiment validity filter from the
// placeholder set to a minimum trimmed length of n runes.
func WithMinLength(n int) Option {
	return func(o *options) {
		o.minLength = n
	}
}

func defaultOptions() options {
	return options{}
}
