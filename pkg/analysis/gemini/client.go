// Package gemini implements the analysis TextGenerator backend over the
// Google GenAI SDK (Gemini API).
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/genai"

	"agie-hq/agie/pkg/analysis"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// APIKeyEnv is the environment variable consulted when no API key is
// passed explicitly.
const APIKeyEnv = "GOOGLE_API_KEY"

// Backend is a TextGenerator over the Gemini API.
type Backend struct {
	client *genai.Client
	model  string
}

// Options configure a Gemini backend.
type Options struct {
	// APIKey is the Gemini API key. Empty falls back to GOOGLE_API_KEY.
	APIKey string

	// Model is the model identifier (default gemini-2.5-flash).
	Model string
}

// New creates a Gemini backend. It fails with an *analysis.AuthError when
// no API key is available: retrying cannot help, and the caller can tell
// a credentials problem from a backend outage.
func New(ctx context.Context, opts Options) (*Backend, error) {
	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(APIKeyEnv)
	}
	if apiKey == "" {
		return nil, &analysis.AuthError{
			Backend: "gemini",
			Message: fmt.Sprintf("%s not set (export it or add it to .env)", APIKeyEnv),
		}
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &analysis.BackendError{
			Backend: "gemini",
			Message: "failed to create client",
			Cause:   err,
		}
	}

	slog.Info("gemini backend initialized", "model", model)
	return &Backend{client: client, model: model}, nil
}

// Generate implements analysis.TextGenerator with a single
// GenerateContent call.
func (b *Backend) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: prompt}}},
	}

	result, err := b.client.Models.GenerateContent(ctx, b.model, contents, nil)
	if err != nil {
		return "", &analysis.BackendError{
			Backend: "gemini",
			Message: fmt.Sprintf("generate content failed for model %q", b.model),
			Cause:   err,
		}
	}

	text, err := result.Text()
	if err != nil {
		return "", &analysis.BackendError{
			Backend: "gemini",
			Message: "response carried no text",
			Cause:   err,
		}
	}
	return text, nil
}

// Name implements analysis.TextGenerator.
func (b *Backend) Name() string { return "gemini" }
