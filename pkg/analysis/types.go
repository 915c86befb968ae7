package analysis

import "context"

// GovernanceAnalysis is the structured result of analyzing an AI use case
// against a security-control framework.
//
// Recommendations are positionally aligned with GovernanceGaps:
// Recommendations[i] addresses GovernanceGaps[i].
type GovernanceAnalysis struct {
	// AIRisks lists AI-specific risks (bias, explainability, drift, ...).
	AIRisks []string `json:"ai_risks"`

	// ISODomains lists the ISO 27001 control domains affected (A.5-A.18).
	ISODomains []string `json:"iso_domains"`

	// GovernanceGaps lists specific governance weaknesses.
	GovernanceGaps []string `json:"governance_gaps"`

	// Recommendations lists prioritized remediation actions, aligned by
	// index with GovernanceGaps.
	Recommendations []string `json:"recommendations"`

	// ConfidenceScore is the backend's confidence in the analysis, in
	// [0,1].
	ConfidenceScore float64 `json:"confidence_score"`
}

// Analyzer is the capability the fusion engine requires from its analysis
// collaborator. Concrete implementations must be interchangeable without
// changing the engine.
type Analyzer interface {
	// AnalyzeUseCase analyzes a use-case description, optionally enriched
	// with a flat context mapping, and returns a fully-populated
	// GovernanceAnalysis. It fails with *AnalysisError after exhausting
	// retries.
	AnalyzeUseCase(ctx context.Context, description string, contextInfo map[string]string) (*GovernanceAnalysis, error)
}

// TextGenerator is the transport-level capability a backend provides:
// given a prompt, return the raw response text. Backends do exactly one
// call per Generate; retries belong to the Client.
type TextGenerator interface {
	// Generate sends the prompt and returns the raw response text.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name identifies the backend (e.g. "gemini", "anthropic", "stub")
	// for logging and error attribution.
	Name() string
}
