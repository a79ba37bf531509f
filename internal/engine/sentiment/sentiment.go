// Package sentiment defines the external classifier boundary and the
// rating-to-polarity mapping.
package sentiment

import (
	"context"
	"fmt"

	"github.com/solmirano/aula/internal/model"
)

// Classifier scores cleaned comment texts on the 1-5 star scale.
// ClassifyBatch is a blocking call: index i of the result is the rating for
// index i of the input, and the lengths always match on success.
// Implementations are expensive to construct; create once and reuse.
type Classifier interface {
	ClassifyBatch(ctx context.Context, texts []string) ([]int, error)
	Close() error
}

// MapLabel converts a 1-5 star rating into a polarity bucket.
// Ratings outside 1..5 violate the classifier contract and are an error,
// never a silent default.
func MapLabel(rating int) (model.Label, error) {
	switch {
	case rating == 1 || rating == 2:
		return model.Negative, nil
	case rating == 3:
		return model.Neutral, nil
	case rating == 4 || rating == 5:
		return model.Positive, nil
	}
	return 0, fmt.Errorf("sentiment: rating %d outside 1..5", rating)
}

// MapLabels applies MapLabel element-wise, preserving order.
func MapLabels(ratings []int) ([]model.Label, error) {
	labels := make([]model.Label, len(ratings))
	for i, r := range ratings {
		lbl, err := MapLabel(r)
		if err != nil {
			return nil, err
		}
		labels[i] = lbl
	}
	return labels, nil
}
