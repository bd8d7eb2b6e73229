// Package insights wraps the external text-generation API that turns
// inventory statistics into advisory commentary. The API is opaque: the
// rest of the service only ever sees a string, and a failed call
// degrades to a fixed fallback instead of an error.
package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the generate-content endpoint.
type Client struct {
	BaseURL string
	APIKey  string
	Model   string
	HTTP    *http.Client
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

type generateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	OK   bool   `json:"ok"`
	Text string `json:"text"`
}

// Generate sends one prompt and returns the generated text.
func (c *Client) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	if c.BaseURL == "" {
		return "", fmt.Errorf("insights: base URL not configured")
	}

	b, _ := json.Marshal(generateRequest{
		Model:       c.Model,
		Prompt:      prompt,
		Temperature: temperature,
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/generate", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("insights request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("insights call: %w", err)
	}
	defer resp.Body.Close()

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("insights decode: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("insights error (status %d)", resp.StatusCode)
	}
	return out.Text, nil
}
