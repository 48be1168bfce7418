package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the Hugging Face inference API client.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewClient creates a new inference client with the given API key, using the
// default zero-shot classification model.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     DefaultAPIURL,
		model:      DefaultClassificationModel,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetAPIURL overrides the default inference API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SetModel overrides the classification model.
func (c *Client) SetModel(model string) {
	c.model = model
}

// Classify runs zero-shot classification of text against candidateLabels and
// returns the best label with its score. Empty candidateLabels falls back to
// the default task categories.
func (c *Client) Classify(ctx context.Context, text string, candidateLabels []string) (Classification, error) {
	if len(candidateLabels) == 0 {
		candidateLabels = DefaultCandidateLabels
	}

	payload := classifyRequest{
		Inputs:     text,
		Parameters: classifyParameters{CandidateLabels: candidateLabels},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Classification{}, fmt.Errorf("failed to marshal classify request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.apiURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return Classification{}, fmt.Errorf("failed to build classify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Classification{}, fmt.Errorf("classify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return Classification{}, fmt.Errorf("hugging face API error %d: %s", resp.StatusCode, string(raw))
	}

	var out ClassifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Classification{}, fmt.Errorf("failed to decode classify response: %w", err)
	}
	if len(out.Labels) == 0 || len(out.Scores) == 0 {
		return Classification{}, fmt.Errorf("empty classification response")
	}

	return Classification{Label: out.Labels[0], Score: out.Scores[0]}, nil
}
