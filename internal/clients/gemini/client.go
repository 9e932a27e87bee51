// Package gemini provides a client for a Gemini-compatible generative-text
// endpoint. The API is an opaque collaborator: a text prompt goes in, a
// text (often HTML-fragment) response comes out, with no determinism or
// schema guarantees beyond that.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ErrNotConfigured is returned when no API key or URL is configured
var ErrNotConfigured = errors.New("generative API is not configured")

// Client calls the generative-text endpoint
type Client struct {
	apiURL string
	apiKey string
	client *http.Client
	log    zerolog.Logger
}

// NewClient creates a new generative-text client. An empty apiURL or apiKey
// yields a client whose calls fail with ErrNotConfigured.
func NewClient(apiURL, apiKey string, log zerolog.Logger) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 60 * time.Second},
		log:    log.With().Str("client", "gemini").Logger(),
	}
}

// Configured reports whether the client has an endpoint and key
func (c *Client) Configured() bool {
	return c.apiURL != "" && c.apiKey != ""
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends a prompt and returns the model's text response
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode prompt: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"?key="+c.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("API response contained no candidates")
	}

	c.log.Debug().
		Dur("elapsed", time.Since(start)).
		Int("prompt_len", len(prompt)).
		Msg("Generated content")

	return result.Candidates[0].Content.Parts[0].Text, nil
}
