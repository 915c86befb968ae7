package gemini

import (
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

// modelsEndpoint is the Gemini API model-listing endpoint.
const modelsEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

// ModelInfo describes an available Gemini model.
type ModelInfo struct {
	// Name is the full model resource name (e.g. "models/gemini-2.5-flash").
	Name string `json:"name"`

	// DisplayName is the human-readable model name.
	DisplayName string `json:"displayName"`

	// Description summarizes the model.
	Description string `json:"description"`

	// SupportedMethods lists supported generation methods
	// (e.g. "generateContent").
	SupportedMethods []string `json:"supportedGenerationMethods"`
}

// SupportsGeneration reports whether the model supports generateContent,
// which is the only method the analysis client uses.
func (m ModelInfo) SupportsGeneration() bool {
	for _, method := range m.SupportedMethods {
		if method == "generateContent" {
			return true
		}
	}
	return false
}

// ListModels returns the models available to the configured API key.
// An empty apiKey falls back to GOOGLE_API_KEY.
func ListModels(ctx context.Context, apiKey string) ([]ModelInfo, error) {
	if apiKey == "" {
		apiKey = os.Getenv(APIKeyEnv)
	}
	if apiKey == "" {
		return nil, &analysis.AuthError{
			Backend: "gemini",
			Message: fmt.Sprintf("%s not set (export it or add it to .env)", APIKeyEnv),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, modelsEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", apiKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &analysis.BackendError{
			Backend: "gemini",
			Message: "model listing request failed",
			Cause:   err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &analysis.BackendError{
			Backend: "gemini",
			Message: "failed to read model listing response",
			Cause:   err,
		}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &analysis.AuthError{Backend: "gemini", Message: string(body)}
	case resp.StatusCode != http.StatusOK:
		return nil, &analysis.BackendError{
			Backend:    "gemini",
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	var listing struct {
		Models []ModelInfo `json:"models"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, &analysis.BackendError{
			Backend: "gemini",
			Message: "failed to decode model listing",
			Cause:   err,
		}
	}

	slog.Debug("gemini models listed", "count", len(listing.Models))
	return listing.Models, nil
}

// BestModel picks the newest generation-capable model whose name contains
// the preference substring ("flash", "pro"), falling back to DefaultModel
// when nothing matches.
func BestModel(models []ModelInfo, preference string) string {
	for _, m := range models {
		if !m.SupportsGeneration() {
			continue
		}
		if strings.Contains(m.Name, preference) {
			return strings.TrimPrefix(m.Name, "models/")
		}
	}
	return DefaultModel
}
