// Package inference provides HTTP clients for the external model backends:
// the token-classification (NER) model and the regression scoring model.
// Both are black boxes to the pipeline; connection failures surface as
// ModelUnavailableError and are never retried here.
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

// Entity is one labeled span from the token-classification model, in the
// aggregated output format the serving layer produces.
type Entity struct {
	Group string  `json:"entity_group"`
	Word  string  `json:"word"`
	Score float64 `json:"score"`
	Start int     `json:"start"`
	End   int     `json:"end"`
}

// NERClient calls a token-classification inference endpoint.
type NERClient struct {
	baseURL string
	token   string
	hc      *http.Client
}

// NEROption configures a NERClient.
type NEROption func(*NERClient)

// WithNERToken sets a bearer token for the inference endpoint.
func WithNERToken(token string) NEROption {
	return func(c *NERClient) { c.token = token }
}

// WithNERHTTPClient overrides the underlying HTTP client.
func WithNERHTTPClient(hc *http.Client) NEROption {
	return func(c *NERClient) { c.hc = hc }
}

// NewNERClient creates a client for the given endpoint URL.
func NewNERClient(baseURL string, opts ...NEROption) *NERClient {
	c := &NERClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Label runs the model on text and returns the labeled spans.
func (c *NERClient) Label(ctx context.Context, text string) ([]Entity, error) {
	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode NER request: %w", err)
	}

	data, err := c.post(ctx, body)
	if err != nil {
		return nil, err
	}

	var entities []Entity
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("failed to decode NER response: %w", err)
	}
	return entities, nil
}

func (c *NERClient) post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build NER request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &types.ModelUnavailableError{Backend: "ner", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.ModelUnavailableError{Backend: "ner", Err: err}
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &types.ModelUnavailableError{
			Backend: "ner",
			Err:     fmt.Errorf("endpoint returned %d: %s", resp.StatusCode, data),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NER endpoint rejected request (%d): %s", resp.StatusCode, data)
	}
	return data, nil
}
