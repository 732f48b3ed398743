// Package gemini implements the upstream generation client against the Google
// Gemini generateContent API.
//
// Responsibilities:
//   - Compose the full prompt (assistant persona + FAQ context + user message)
//   - Perform exactly one HTTP POST per Answer call, bounded by a timeout
//   - Extract the generated text at candidates[0].content.parts[0].text
//   - Classify failures: 429 becomes llm.ErrRateLimited, everything else
//     (network error, non-2xx, malformed or empty body) becomes *llm.UpstreamError
//
// No retries here: the gateway decides what happens after a failure.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/admybrand/adbot-gateway/internal/llm"
)

const (
	// DefaultEndpoint is the generateContent URL for the default model.
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

	DefaultTimeout = 30 * time.Second
)

// Client calls the Gemini generateContent endpoint. Safe for concurrent use;
// all fields are set at construction and never mutated.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// Gemini API wire structures (request and the subset of the response we read).
type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
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

// NewClient creates a Gemini client. The API key is required; endpoint and
// timeout fall back to defaults when zero-valued.
func NewClient(endpoint, apiKey string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Answer implements llm.Client. It sends the composed prompt and returns the
// generated text, or a classified failure.
func (c *Client) Answer(ctx context.Context, message string) (string, error) {
	prompt := BuildPrompt(message)

	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", &llm.UpstreamError{Reason: "marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &llm.UpstreamError{Reason: "create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &llm.UpstreamError{Reason: "http request failed", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &llm.UpstreamError{Status: resp.StatusCode, Reason: "read response", Err: err}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", llm.ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return "", &llm.UpstreamError{
			Status: resp.StatusCode,
			Reason: fmt.Sprintf("non-success status: %s", truncate(string(respBody), 256)),
		}
	}

	var gen generateResponse
	if err := json.Unmarshal(respBody, &gen); err != nil {
		return "", &llm.UpstreamError{Status: resp.StatusCode, Reason: "malformed response body", Err: err}
	}
	if len(gen.Candidates) == 0 || len(gen.Candidates[0].Content.Parts) == 0 {
		return "", &llm.UpstreamError{Status: resp.StatusCode, Reason: "response has no candidates"}
	}

	text := gen.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", &llm.UpstreamError{Status: resp.StatusCode, Reason: "response candidate has empty text"}
	}
	return text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
