package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// requiredFields are the five fields every backend response must carry.
var requiredFields = []string{
	"ai_risks",
	"iso_domains",
	"governance_gaps",
	"recommendations",
	"confidence_score",
}

// stripCodeFence removes a wrapping markdown code fence from text, if
// present. The opening fence may carry a language tag ("```json"). Text
// without a fence is returned trimmed and otherwise untouched.
func stripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[3:]
		// Drop the language tag on the opening fence line.
		if idx := strings.IndexByte(cleaned, '\n'); idx >= 0 {
			firstLine := strings.TrimSpace(cleaned[:idx])
			if firstLine != "" && !strings.ContainsAny(firstLine, "{}[]") {
				cleaned = cleaned[idx+1:]
			}
		}
	}
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSuffix(cleaned, "```")

	return strings.TrimSpace(cleaned)
}

// parseResponse repairs and decodes raw backend text into a
// GovernanceAnalysis. It returns a *ParseError when the repaired text is
// not valid JSON or any required field is absent.
func parseResponse(backend, raw string) (*GovernanceAnalysis, error) {
	cleaned := stripCodeFence(raw)

	// Decode generically first so missing fields can be reported by name
	// rather than silently zeroed.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, &ParseError{Backend: backend, RawResponse: raw, Cause: err}
	}

	var missing []string
	for _, f := range requiredFields {
		if _, ok := fields[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, &ParseError{Backend: backend, RawResponse: raw, Missing: missing}
	}

	var result GovernanceAnalysis
	var intermediate struct {
		AIRisks         []string        `json:"ai_risks"`
		ISODomains      []string        `json:"iso_domains"`
		GovernanceGaps  []string        `json:"governance_gaps"`
		Recommendations []string        `json:"recommendations"`
		ConfidenceScore json.RawMessage `json:"confidence_score"`
	}
	if err := json.Unmarshal([]byte(cleaned), &intermediate); err != nil {
		return nil, &ParseError{Backend: backend, RawResponse: raw, Cause: err}
	}

	confidence, err := coerceFloat(intermediate.ConfidenceScore)
	if err != nil {
		return nil, &ParseError{Backend: backend, RawResponse: raw, Cause: err}
	}

	result = GovernanceAnalysis{
		AIRisks:         intermediate.AIRisks,
		ISODomains:      intermediate.ISODomains,
		GovernanceGaps:  intermediate.GovernanceGaps,
		Recommendations: intermediate.Recommendations,
		ConfidenceScore: confidence,
	}
	return &result, nil
}

// coerceFloat accepts a JSON number or a numeric string for
// confidence_score. Anything else makes the analysis invalid.
func coerceFloat(raw json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &f); err == nil {
			return f, nil
		}
	}

	return 0, fmt.Errorf("confidence_score %s is not coercible to float", string(raw))
}
