package cli

import (
	"fmt"
	"strings"
	"testing"
)

func TestStepReporter(t *testing.T) {
	var b strings.Builder
	r := NewStepReporter(&b, 3)

	r.Step("Validating risk register")
	r.Done("12 risks loaded")
	r.Step("Analysing use case")
	r.Fail(fmt.Errorf("backend unavailable"))

	out := b.String()
	for _, want := range []string{
		"[1/3] Validating risk register...",
		"✓ 12 risks loaded",
		"[2/3] Analysing use case...",
		"✗ backend unavailable",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatter(t *testing.T) {
	var b strings.Builder
	if err := NewFormatter(FormatJSON).FormatTo(&b, map[string]int{"total_risks": 4}); err != nil {
		t.Fatalf("FormatTo failed: %v", err)
	}
	if !strings.Contains(b.String(), `"total_risks": 4`) {
		t.Errorf("Unexpected JSON output %q", b.String())
	}

	b.Reset()
	if err := NewFormatter(FormatText).FormatTo(&b, "ok"); err != nil {
		t.Fatalf("FormatTo failed: %v", err)
	}
	if b.String() != "ok\n" {
		t.Errorf("Unexpected text output %q", b.String())
	}
}
