package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Remote is a Classifier backed by an HTTP sentiment service. The service
// accepts an ordered list of cleaned texts and returns a parallel ordered
// list of 1-5 star ratings.
type Remote struct {
	baseURL    string
	httpClient *http.Client
}

// RemoteOption configures a Remote classifier.
type RemoteOption func(*Remote)

// WithTimeout sets the HTTP client timeout. Default: 60s — batch calls
// block until every rating returns.
func WithTimeout(d time.Duration) RemoteOption {
	return func(r *Remote) {
		r.httpClient.Timeout = d
	}
}

// NewRemote creates a Remote classifier for the service at baseURL.
func NewRemote(baseURL string, opts ...RemoteOption) *Remote {
	r := &Remote{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type batchRequest struct {
	Texts []string `json:"texts"`
}

type batchResponse struct {
	Ratings []int `json:"ratings"`
}

// ClassifyBatch submits the full batch in one call and blocks until all
// ratings return. Partial results are never produced: any failure is
// reported as a single error.
func (r *Remote) ClassifyBatch(ctx context.Context, texts []string) ([]int, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(batchRequest{Texts: texts})
	if err != nil {
		return nil, fmt.Errorf("sentiment: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/v1/classify/batch", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("sentiment: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sentiment: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sentiment: service returned status %d: %s", resp.StatusCode, string(b))
	}

	var result batchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("sentiment: decode response: %w", err)
	}

	if len(result.Ratings) != len(texts) {
		return nil, fmt.Errorf("sentiment: service returned %d ratings for %d texts", len(result.Ratings), len(texts))
	}
	return result.Ratings, nil
}

// Close is a no-op; the remote service owns its own lifecycle.
func (r *Remote) Close() error {
	return nil
}
