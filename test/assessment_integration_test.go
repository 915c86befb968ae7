// Package test contains end-to-end tests exercising the full
// assessment pipeline against the offline stub backend.
package test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"agie-hq/agie/pkg/analysis"
	"agie-hq/agie/pkg/analysis/stub"
	"agie-hq/agie/pkg/fusion"
	"agie-hq/agie/pkg/register"
	"agie-hq/agie/pkg/report"
)

// noopLimiter avoids real sleeps in tests.
type noopLimiter struct{}

func (noopLimiter) Acquire() {}

const testRegister = `risk_id,risk_description,likelihood,impact,category,mitigation
R-001,Unauthorized data access,4,5,security,Zero-trust rollout
R-002,Vendor outage,3,4,operational,Failover plan
R-003,Minor tooling gap,2,2,operational,
`

func TestFullAssessmentPipeline(t *testing.T) {
	dir := t.TempDir()
	registerPath := filepath.Join(dir, "risks.csv")
	if err := os.WriteFile(registerPath, []byte(testRegister), 0o644); err != nil {
		t.Fatalf("Failed to write register: %v", err)
	}

	client := analysis.NewClient(
		&stub.Backend{Fenced: true},
		noopLimiter{},
		analysis.Options{Sleep: func(time.Duration) {}},
	)
	engine := fusion.NewEngine(register.NewParser(nil), client)

	assessment, err := engine.Assess(
		context.Background(),
		registerPath,
		"AI chatbot for customer support",
		map[string]string{"industry": "retail"},
	)
	if err != nil {
		t.Fatalf("Assess failed: %v", err)
	}

	// Stub selects the chatbot template for this use case.
	if assessment.Statistics.AIAnalysisConfidence != 0.88 {
		t.Errorf("Expected chatbot template confidence 0.88, got %v",
			assessment.Statistics.AIAnalysisConfidence)
	}
	if assessment.Statistics.TotalOrganizationalRisks != 3 {
		t.Errorf("Expected 3 register rows, got %d", assessment.Statistics.TotalOrganizationalRisks)
	}
	// R-001 scores 20; the only row at or above the high-risk threshold.
	if assessment.Statistics.HighRiskItems != 1 {
		t.Errorf("Expected 1 high risk item, got %d", assessment.Statistics.HighRiskItems)
	}
	// 1 register row + 3 gaps + 2 AI risks.
	if len(assessment.HighPriorityItems) != 6 {
		t.Errorf("Expected 6 high priority items, got %d", len(assessment.HighPriorityItems))
	}
	if assessment.Statistics.OverallRiskScore <= 0 || assessment.Statistics.OverallRiskScore > 10 {
		t.Errorf("Overall risk score %v outside (0, 10]", assessment.Statistics.OverallRiskScore)
	}

	reportPath := filepath.Join(dir, "report.md")
	if _, err := report.NewMarkdownGenerator().Generate(assessment, reportPath); err != nil {
		t.Fatalf("Report generation failed: %v", err)
	}
	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "R-001") {
		t.Error("Report missing high-risk register row")
	}
	if !strings.Contains(content, "AI-GAP-001") {
		t.Error("Report missing governance gap item")
	}
}

func TestFullPipeline_InvalidRegisterFailsEarly(t *testing.T) {
	dir := t.TempDir()
	registerPath := filepath.Join(dir, "bad.csv")
	content := "risk_id,risk_description,likelihood,impact\nR-001,Broken row,9,2\n"
	if err := os.WriteFile(registerPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write register: %v", err)
	}

	client := analysis.NewClient(stub.New(), noopLimiter{}, analysis.Options{Sleep: func(time.Duration) {}})
	engine := fusion.NewEngine(register.NewParser(nil), client)

	_, err := engine.Assess(context.Background(), registerPath, "anything", nil)
	if err == nil {
		t.Fatal("Expected failure for out-of-range likelihood")
	}
	if !strings.Contains(err.Error(), "register") {
		t.Errorf("Expected register stage failure, got %v", err)
	}
}
