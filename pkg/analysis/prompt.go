package analysis

import (
	"encoding/json"
	"log/slog"
)

// instructionTemplate is the fixed governance-expert instruction prefix
// sent on every analysis call. The response contract (five JSON fields,
// no markdown) is what the repair/parse step enforces.
const instructionTemplate = `You are an expert in AI governance, information security, and ISO 27001 compliance.

Your task is to analyze AI use cases and identify governance risks, control gaps, and compliance concerns.

Provide your analysis in JSON format with these exact fields:

{
  "ai_risks": ["List of AI-specific risks like bias, explainability, drift, etc."],
  "iso_domains": ["ISO 27001 domains affected: A.5-A.18"],
  "governance_gaps": ["Specific governance weaknesses"],
  "recommendations": ["Prioritized actions to address risks"],
  "confidence_score": 0.85
}

Focus on:
1. AI-specific risks (bias, fairness, explainability, model drift, third-party AI risk)
2. ISO 27001 control domains (A.5 through A.18)
3. Data protection and privacy concerns
4. Accountability and audit trail requirements
5. Third-party and vendor management

Be concise but specific. Provide actionable recommendations.

Respond ONLY with valid JSON. No preamble, no markdown formatting, no explanations outside JSON.

---

AI Use Case to Analyze:

`

// BuildPrompt assembles the full prompt: instruction template, use-case
// description, and, when contextInfo is non-empty, its serialized form.
// Context keys are opaque; unknown keys pass straight through into the
// prompt and nowhere else.
func BuildPrompt(description string, contextInfo map[string]string) string {
	prompt := instructionTemplate + description

	if len(contextInfo) > 0 {
		// Map keys marshal in sorted order, keeping prompts reproducible.
		serialized, err := json.MarshalIndent(contextInfo, "", "  ")
		if err == nil {
			prompt += "\n\nAdditional Context:\n" + string(serialized)
		}
	}

	slog.Debug("analysis prompt built", "length", len(prompt), "context_keys", len(contextInfo))
	return prompt
}
