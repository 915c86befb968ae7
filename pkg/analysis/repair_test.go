package analysis

import (
	"errors"
	"testing"
)

const wellFormedResponse = `{
  "ai_risks": ["Model bias in lending decisions", "Lack of explainability"],
  "iso_domains": ["A.5", "A.8", "A.18"],
  "governance_gaps": ["No model risk policy", "No human review"],
  "recommendations": ["Adopt a model risk policy", "Add human-in-the-loop review"],
  "confidence_score": 0.85
}`

// ============================================================================
// Code-fence repair
// ============================================================================

func TestParseResponse_FenceRoundTrip(t *testing.T) {
	// A fenced response with a language tag must parse identically to the
	// unwrapped JSON.
	wrapped := "```json\n" + wellFormedResponse + "\n```"

	plain, err := parseResponse("test", wellFormedResponse)
	if err != nil {
		t.Fatalf("Plain response failed to parse: %v", err)
	}
	fenced, err := parseResponse("test", wrapped)
	if err != nil {
		t.Fatalf("Fenced response failed to parse: %v", err)
	}

	if plain.ConfidenceScore != fenced.ConfidenceScore ||
		len(plain.AIRisks) != len(fenced.AIRisks) ||
		len(plain.GovernanceGaps) != len(fenced.GovernanceGaps) {
		t.Errorf("Fenced parse differs from plain parse:\nplain:  %+v\nfenced: %+v", plain, fenced)
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"json tag", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\": 1}\n```\n  ", `{"a": 1}`},
		{"fence glued to payload", "```{\"a\": 1}```", `{"a": 1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripCodeFence(tc.in); got != tc.want {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// ============================================================================
// Required-field validation
// ============================================================================

func TestParseResponse_MissingFields(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		missing string
	}{
		{
			name:    "no confidence_score",
			payload: `{"ai_risks": [], "iso_domains": [], "governance_gaps": [], "recommendations": []}`,
			missing: "confidence_score",
		},
		{
			name:    "no governance_gaps",
			payload: `{"ai_risks": [], "iso_domains": [], "recommendations": [], "confidence_score": 0.5}`,
			missing: "governance_gaps",
		},
		{
			name:    "empty object",
			payload: `{}`,
			missing: "ai_risks",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseResponse("test", tc.payload)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected ParseError, got %T: %v", err, err)
			}
			found := false
			for _, m := range perr.Missing {
				if m == tc.missing {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected %q in missing fields, got %v", tc.missing, perr.Missing)
			}
		})
	}
}

func TestParseResponse_InvalidJSON(t *testing.T) {
	_, err := parseResponse("test", "I'm sorry, I can't help with that.")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected ParseError, got %T: %v", err, err)
	}
}

func TestParseResponse_ConfidenceCoercion(t *testing.T) {
	// A numeric string is coercible; a word is not.
	quoted := `{"ai_risks": [], "iso_domains": [], "governance_gaps": [], "recommendations": [], "confidence_score": "0.7"}`
	result, err := parseResponse("test", quoted)
	if err != nil {
		t.Fatalf("Expected quoted numeric confidence to parse, got %v", err)
	}
	if result.ConfidenceScore != 0.7 {
		t.Errorf("Expected confidence 0.7, got %v", result.ConfidenceScore)
	}

	word := `{"ai_risks": [], "iso_domains": [], "governance_gaps": [], "recommendations": [], "confidence_score": "high"}`
	if _, err := parseResponse("test", word); err == nil {
		t.Error("Expected non-numeric confidence to be rejected")
	}
}
