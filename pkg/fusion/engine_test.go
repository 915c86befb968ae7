package fusion

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"agie-hq/agie/pkg/analysis"
	"agie-hq/agie/pkg/register"
)

// fakeAnalyzer returns a fixed analysis or error.
type fakeAnalyzer struct {
	result *analysis.GovernanceAnalysis
	err    error
}

func (f *fakeAnalyzer) AnalyzeUseCase(_ context.Context, _ string, _ map[string]string) (*analysis.GovernanceAnalysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func writeRegister(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "register.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write register: %v", err)
	}
	return path
}

const workedRegister = `risk_id,risk_description,likelihood,impact,category,mitigation
R1,Data breach via legacy system,5,4,security,Network segmentation
R2,Minor process deviation,2,2,operational,
`

func workedAnalysis() *analysis.GovernanceAnalysis {
	return &analysis.GovernanceAnalysis{
		AIRisks:         []string{"Model bias"},
		ISODomains:      []string{"A.12 - Operations Security"},
		GovernanceGaps:  []string{"No validation procedure"},
		Recommendations: []string{"Document validation"},
		ConfidenceScore: 0.8,
	}
}

// ============================================================================
// End-to-End Worked Example
// ============================================================================

func TestAssess_WorkedExample(t *testing.T) {
	path := writeRegister(t, workedRegister)
	engine := NewEngine(register.NewParser(nil), &fakeAnalyzer{result: workedAnalysis()})

	got, err := engine.Assess(context.Background(), path, "chatbot", nil)
	if err != nil {
		t.Fatalf("Assess failed: %v", err)
	}

	// R1 scores 5x4=20, R2 scores 2x2=4, mean 12.0.
	if got.Statistics.AverageRiskScore != 12.0 {
		t.Errorf("Expected average risk score 12.0, got %v", got.Statistics.AverageRiskScore)
	}
	// ((12/25)*0.6 + (1-0.8)*0.4) * 10 = (0.288 + 0.08) * 10 = 3.68
	if math.Abs(got.Statistics.OverallRiskScore-3.68) > 1e-9 {
		t.Errorf("Expected overall risk score 3.68, got %v", got.Statistics.OverallRiskScore)
	}
	if got.Statistics.HighRiskItems != 1 {
		t.Errorf("Expected 1 high risk item, got %d", got.Statistics.HighRiskItems)
	}
	if got.Statistics.RiskCategories["security"] != 1 || got.Statistics.RiskCategories["operational"] != 1 {
		t.Errorf("Unexpected risk categories %v", got.Statistics.RiskCategories)
	}

	// One register item (R1), one gap, one AI risk.
	if len(got.HighPriorityItems) != 3 {
		t.Fatalf("Expected 3 high priority items, got %d", len(got.HighPriorityItems))
	}
	first := got.HighPriorityItems[0]
	if first.Source != SourceRegister || first.RiskID != "R1" || first.Action != "Network segmentation" {
		t.Errorf("Unexpected first item %+v", first)
	}
	if first.RiskScore == nil || *first.RiskScore != 20 {
		t.Errorf("Expected first item risk score 20, got %v", first.RiskScore)
	}

	if got.ID == "" {
		t.Error("Expected assessment ID to be set")
	}
	if got.GeneratedAt.IsZero() {
		t.Error("Expected generation timestamp to be set")
	}
}

// ============================================================================
// High-Priority Item Composition
// ============================================================================

func TestBuildPriorityItems_FixedGroupOrder(t *testing.T) {
	// Two rows scoring >=15, five gaps, four AI risks.
	content := "risk_id,risk_description,likelihood,impact\n" +
		"R1,First critical,5,4\n" +
		"R2,Mid risk,3,3\n" +
		"R3,Second critical,4,4\n"
	path := writeRegister(t, content)

	result := &analysis.GovernanceAnalysis{
		AIRisks:         []string{"risk a", "risk b", "risk c", "risk d"},
		ISODomains:      []string{"A.5"},
		GovernanceGaps:  []string{"gap 1", "gap 2", "gap 3", "gap 4", "gap 5"},
		Recommendations: []string{"rec 1", "rec 2"},
		ConfidenceScore: 0.9,
	}
	engine := NewEngine(register.NewParser(nil), &fakeAnalyzer{result: result})

	got, err := engine.Assess(context.Background(), path, "generic", nil)
	if err != nil {
		t.Fatalf("Assess failed: %v", err)
	}

	items := got.HighPriorityItems
	if len(items) != 7 {
		t.Fatalf("Expected 2+3+2=7 items, got %d", len(items))
	}

	wantSources := []string{
		SourceRegister, SourceRegister,
		SourceGovernanceAnalysis, SourceGovernanceAnalysis, SourceGovernanceAnalysis,
		SourceAIRiskAnalysis, SourceAIRiskAnalysis,
	}
	for i, want := range wantSources {
		if items[i].Source != want {
			t.Errorf("Item %d: expected source %q, got %q", i, want, items[i].Source)
		}
	}

	// Register items keep file order and get the mitigation fallback.
	if items[0].RiskID != "R1" || items[1].RiskID != "R3" {
		t.Errorf("Unexpected register item order: %q, %q", items[0].RiskID, items[1].RiskID)
	}
	if items[0].Action != "No mitigation documented" {
		t.Errorf("Expected mitigation fallback, got %q", items[0].Action)
	}

	// Gap items carry synthetic ids; recommendations align by index with
	// a fallback past the end.
	if items[2].RiskID != "AI-GAP-001" || items[4].RiskID != "AI-GAP-003" {
		t.Errorf("Unexpected gap ids: %q, %q", items[2].RiskID, items[4].RiskID)
	}
	if items[2].Action != "rec 1" || items[3].Action != "rec 2" {
		t.Errorf("Expected aligned recommendations, got %q, %q", items[2].Action, items[3].Action)
	}
	if items[4].Action != "Review required" {
		t.Errorf("Expected review fallback, got %q", items[4].Action)
	}
	if items[2].Priority != PriorityHigh || items[2].RiskScore != nil {
		t.Errorf("Unexpected gap item %+v", items[2])
	}

	// AI risk items are MEDIUM with a fixed action.
	if items[5].RiskID != "AI-RISK-001" || items[6].RiskID != "AI-RISK-002" {
		t.Errorf("Unexpected AI risk ids: %q, %q", items[5].RiskID, items[6].RiskID)
	}
	if items[5].Priority != PriorityMedium || items[5].Action != "Implement AI risk controls" {
		t.Errorf("Unexpected AI risk item %+v", items[5])
	}
}

// ============================================================================
// Error Wrapping
// ============================================================================

func TestAssess_RegisterFailureWrapped(t *testing.T) {
	path := writeRegister(t, "risk_id,likelihood,impact\nR1,3,3\n")
	engine := NewEngine(register.NewParser(nil), &fakeAnalyzer{result: workedAnalysis()})

	_, err := engine.Assess(context.Background(), path, "generic", nil)

	var ferr *FusionError
	if !errors.As(err, &ferr) {
		t.Fatalf("Expected FusionError, got %T: %v", err, err)
	}
	if ferr.Stage != StageRegister {
		t.Errorf("Expected register stage, got %q", ferr.Stage)
	}
	var verr *register.ValidationError
	if !errors.As(err, &verr) {
		t.Error("Expected ValidationError to survive wrapping")
	}
}

func TestAssess_AnalysisFailureWrapped(t *testing.T) {
	path := writeRegister(t, workedRegister)
	cause := &analysis.AnalysisError{Backend: "stub", Attempts: 3, Cause: fmt.Errorf("boom")}
	engine := NewEngine(register.NewParser(nil), &fakeAnalyzer{err: cause})

	_, err := engine.Assess(context.Background(), path, "generic", nil)

	var ferr *FusionError
	if !errors.As(err, &ferr) {
		t.Fatalf("Expected FusionError, got %T: %v", err, err)
	}
	if ferr.Stage != StageAnalysis {
		t.Errorf("Expected analysis stage, got %q", ferr.Stage)
	}
	var aerr *analysis.AnalysisError
	if !errors.As(err, &aerr) {
		t.Error("Expected AnalysisError to survive wrapping")
	}
}

func TestAssess_OutOfRangeConfidenceRejected(t *testing.T) {
	path := writeRegister(t, workedRegister)

	for _, confidence := range []float64{-0.1, 1.5} {
		result := workedAnalysis()
		result.ConfidenceScore = confidence
		engine := NewEngine(register.NewParser(nil), &fakeAnalyzer{result: result})

		_, err := engine.Assess(context.Background(), path, "generic", nil)
		var ferr *FusionError
		if !errors.As(err, &ferr) {
			t.Fatalf("Confidence %v: expected FusionError, got %T", confidence, err)
		}
		if ferr.Stage != StageStatistics {
			t.Errorf("Confidence %v: expected statistics stage, got %q", confidence, ferr.Stage)
		}
	}
}

// ============================================================================
// Score Monotonicity
// ============================================================================

func TestOverallRiskScore_Monotonicity(t *testing.T) {
	table := &register.Table{
		Columns: []string{"risk_id", "risk_description", "likelihood", "impact", "risk_score"},
		Records: []register.Record{
			{RiskID: "R1", Description: "a", Likelihood: 3, Impact: 4, RiskScore: 12},
		},
	}

	score := func(conf float64) float64 {
		result := workedAnalysis()
		result.ConfidenceScore = conf
		stats, err := computeStatistics(table, result)
		if err != nil {
			t.Fatalf("computeStatistics failed: %v", err)
		}
		return stats.OverallRiskScore
	}

	// Lower confidence never lowers the computed risk.
	prev := score(1.0)
	for _, conf := range []float64{0.8, 0.5, 0.2, 0.0} {
		cur := score(conf)
		if cur < prev {
			t.Errorf("Score decreased from %v to %v as confidence dropped to %v", prev, cur, conf)
		}
		prev = cur
	}
}
