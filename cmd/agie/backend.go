package main

import (
	"context"
	"fmt"

	"agie-hq/agie/pkg/analysis"
	"agie-hq/agie/pkg/analysis/anthropic"
	"agie-hq/agie/pkg/analysis/gemini"
	"agie-hq/agie/pkg/analysis/stub"
	"agie-hq/agie/pkg/config"
)

// newBackend constructs the configured TextGenerator. Backends read
// their API keys from the environment.
func newBackend(ctx context.Context, cfg *config.Config) (analysis.TextGenerator, error) {
	switch cfg.Analysis.Provider {
	case "gemini":
		return gemini.New(ctx, gemini.Options{Model: cfg.Analysis.Model})
	case "anthropic":
		return anthropic.New(anthropic.Options{
			Model:   cfg.Analysis.Model,
			Timeout: cfg.Analysis.Timeout,
		})
	case "stub":
		return stub.New(), nil
	default:
		return nil, fmt.Errorf("unknown analysis provider %q", cfg.Analysis.Provider)
	}
}
