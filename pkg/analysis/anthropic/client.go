// Package anthropic implements the analysis TextGenerator backend over
// Anthropic's Messages API.
//
// The backend performs exactly one HTTP call per Generate; retry and
// backoff policy belongs to the analysis client wrapping it.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"agie-hq/agie/pkg/analysis"
)

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "claude-sonnet-4-20250514"

	// DefaultBaseURL is the Anthropic API endpoint.
	DefaultBaseURL = "https://api.anthropic.com"

	// APIVersion is the Messages API version header value.
	APIVersion = "2023-06-01"

	// APIKeyEnv is the environment variable consulted when no API key is
	// passed explicitly.
	APIKeyEnv = "ANTHROPIC_API_KEY"

	// maxTokens caps the response length. The analysis contract is a
	// small JSON document, so this is generous.
	maxTokens = 4096
)

// Backend is a TextGenerator over the Anthropic Messages API.
type Backend struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// Options configure an Anthropic backend.
type Options struct {
	// APIKey is the Anthropic API key. Empty falls back to
	// ANTHROPIC_API_KEY.
	APIKey string

	// Model is the model identifier (default claude-sonnet-4-20250514).
	Model string

	// BaseURL overrides the API endpoint, for tests.
	BaseURL string

	// Timeout bounds each HTTP request (default 120s; analysis calls
	// routinely take tens of seconds).
	Timeout time.Duration
}

// New creates an Anthropic backend. It fails with an *analysis.AuthError
// when no API key is available.
func New(opts Options) (*Backend, error) {
	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(APIKeyEnv)
	}
	if apiKey == "" {
		return nil, &analysis.AuthError{
			Backend: "anthropic",
			Message: fmt.Sprintf("%s not set (export it or add it to .env)", APIKeyEnv),
		}
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	slog.Info("anthropic backend initialized", "model", model, "base_url", baseURL)
	return &Backend{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// messagesRequest is the Messages API request body.
type messagesRequest struct {
	Model     string    `json:"model"`
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

// message is a single turn in Messages API format.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the Messages API response body.
type messagesResponse struct {
	ID         string         `json:"id"`
	Content    []contentBlock `json:"content"`
	Model      string         `json:"model"`
	StopReason string         `json:"stop_reason"`
	Usage      usage          `json:"usage"`
}

// contentBlock is a response content block; only text blocks matter here.
type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// usage reports token consumption.
type usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Generate implements analysis.TextGenerator with a single Messages API
// call. The prompt travels as one user message.
func (b *Backend) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(&messagesRequest{
		Model:     b.model,
		Messages:  []message{{Role: "user", Content: prompt}},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := b.baseURL + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", b.apiKey)
	req.Header.Set("anthropic-version", APIVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", &analysis.BackendError{
			Backend: "anthropic",
			Message: "request failed",
			Cause:   err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &analysis.BackendError{
			Backend: "anthropic",
			Message: "failed to read response",
			Cause:   err,
		}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", &analysis.AuthError{Backend: "anthropic", Message: string(body)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", &analysis.BackendError{
			Backend:    "anthropic",
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	var parsed messagesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &analysis.BackendError{
			Backend: "anthropic",
			Message: "failed to decode response",
			Cause:   err,
		}
	}

	var text strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", &analysis.BackendError{
			Backend: "anthropic",
			Message: "response carried no text content",
		}
	}

	slog.Debug("anthropic response received",
		"model", parsed.Model,
		"stop_reason", parsed.StopReason,
		"output_tokens", parsed.Usage.OutputTokens,
	)
	return text.String(), nil
}

// Name implements analysis.TextGenerator.
func (b *Backend) Name() string { return "anthropic" }
