// Package suggest calls the external generative-AI service for day
// plans and weather advisories, degrading to deterministic fallbacks
// whenever the service is unreachable or unconfigured.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"

	// APIKeyEnv is the environment variable holding the credential.
	APIKeyEnv = "GEMINI_API_KEY"
)

// Client talks to the generative-language API. A Client with no API key
// is valid; every request then resolves to its offline outcome.
type Client struct {
	APIKey      string
	BaseURL     string
	Model       string
	Destination string

	HTTPClient *http.Client
}

// New builds a client for the given destination, reading the credential
// from the environment.
func New(destination string) *Client {
	return &Client{
		APIKey:      os.Getenv(APIKeyEnv),
		BaseURL:     defaultBaseURL,
		Model:       defaultModel,
		Destination: destination,
		HTTPClient:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Enabled reports whether a credential is configured.
func (c *Client) Enabled() bool {
	return c.APIKey != ""
}

// generate performs one generateContent call and returns the reply text.
func (c *Client) generate(ctx context.Context, req generateRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("suggest: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.BaseURL, c.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("suggest: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("suggest: call model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("suggest: model returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("suggest: decode response: %w", err)
	}
	text := out.text()
	if text == "" {
		return "", fmt.Errorf("suggest: empty response")
	}
	return text, nil
}
