package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coltonk1/trackify-jobs/internal/types"
)

// RegressionClient calls the trained match-score regression model. The
// feature layout is fixed by the model's training pipeline:
// [avg_phrase_sim*100, hard_skill_avg_sim, max_phrase_sim*100].
type RegressionClient struct {
	baseURL string
	hc      *http.Client
}

// NewRegressionClient creates a client for the given endpoint URL.
func NewRegressionClient(baseURL string) *RegressionClient {
	return &RegressionClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient overrides the underlying HTTP client. Used by tests.
func (c *RegressionClient) WithHTTPClient(hc *http.Client) *RegressionClient {
	c.hc = hc
	return c
}

type regressionRequest struct {
	Features []float64 `json:"features"`
}

type regressionResponse struct {
	Score float64 `json:"score"`
}

// Predict returns the model output for a feature vector. The output is
// reported to callers as ai_score and is not bounded.
func (c *RegressionClient) Predict(ctx context.Context, features []float64) (float64, error) {
	body, err := json.Marshal(regressionRequest{Features: features})
	if err != nil {
		return 0, fmt.Errorf("failed to encode regression request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build regression request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, &types.ModelUnavailableError{Backend: "regression", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, &types.ModelUnavailableError{Backend: "regression", Err: err}
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return 0, &types.ModelUnavailableError{
			Backend: "regression",
			Err:     fmt.Errorf("endpoint returned %d: %s", resp.StatusCode, data),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("regression endpoint rejected request (%d): %s", resp.StatusCode, data)
	}

	var out regressionResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return 0, fmt.Errorf("failed to decode regression response: %w", err)
	}
	return out.Score, nil
}
