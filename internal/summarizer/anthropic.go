// Package summarizer calls the Anthropic messages API, the upstream
// summarization service.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"contract-summarizer/internal/domain"
)

const (
	defaultBaseURL = "https://api.anthropic.com"
	defaultTimeout = 120 * time.Second

	// apiVersion is the anthropic-version header value the messages API requires.
	apiVersion = "2023-06-01"
)

// APIError is a typed error returned by the messages API (rate limit, auth,
// malformed request and so on). The taxonomy is treated opaquely; only the
// message is surfaced to callers.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("anthropic api error (%s): %s", e.Type, e.Message)
	}
	return fmt.Sprintf("anthropic api error (status %d): %s", e.StatusCode, e.Message)
}

// Client implements domain.Summarizer against the Anthropic messages API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     domain.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds the whole upstream call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a new messages API client
func NewClient(apiKey, model string, logger domain.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	System    string    `json:"system,omitempty"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type messagesResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
}

type errorEnvelope struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Summarize performs a single synchronous messages call. The returned string
// is the concatenation of the response's text blocks; it may be empty when
// the service answered without usable content, which is the caller's error
// to classify. No retries are performed.
func (c *Client) Summarize(ctx context.Context, system, user string, maxTokens int) (string, error) {
	start := time.Now()

	body := messagesRequest{
		Model:     c.model,
		System:    system,
		MaxTokens: maxTokens,
		Messages: []message{
			{Role: "user", Content: []contentBlock{{Type: "text", Text: user}}},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach summarization service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(raw)}
		var envelope errorEnvelope
		if json.Unmarshal(raw, &envelope) == nil && envelope.Error.Message != "" {
			apiErr.Type = envelope.Error.Type
			apiErr.Message = envelope.Error.Message
		}
		c.logger.Error("Summarization service rejected the call", apiErr,
			"status", resp.StatusCode, "elapsed_ms", time.Since(start).Milliseconds())
		return "", apiErr
	}

	var out messagesResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	var sb bytes.Buffer
	for _, block := range out.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	c.logger.Info("Summarization service call complete",
		"model", c.model, "stop_reason", out.StopReason,
		"summary_len", sb.Len(), "elapsed_ms", time.Since(start).Milliseconds())

	return sb.String(), nil
}
