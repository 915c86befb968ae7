package fusion

import (
	"time"

	"agie-hq/agie/pkg/analysis"
	"agie-hq/agie/pkg/register"
)

// Priority levels assigned to high-priority items.
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
)

// Sources a high-priority item can originate from.
const (
	// SourceRegister marks items lifted from the organizational risk
	// register.
	SourceRegister = "register"

	// SourceGovernanceAnalysis marks items derived from governance gaps.
	SourceGovernanceAnalysis = "governance_analysis"

	// SourceAIRiskAnalysis marks items derived from identified AI risks.
	SourceAIRiskAnalysis = "ai_risk_analysis"
)

// Placeholder actions used when the source carries no concrete action.
const (
	noMitigationAction   = "No mitigation documented"
	reviewRequiredAction = "Review required"
	aiRiskControlsAction = "Implement AI risk controls"
)

// PriorityItem is one entry of the high-priority item list.
//
// RiskScore is nil for qualitative items (governance gaps, AI risks);
// only register-sourced items carry a quantified score.
type PriorityItem struct {
	Source      string `json:"source"`
	Priority    string `json:"priority"`
	RiskID      string `json:"risk_id"`
	Description string `json:"description"`
	RiskScore   *int   `json:"risk_score"`
	Action      string `json:"action"`
}

// SummaryStatistics are the derived aggregates of a fused assessment.
// They are recomputed on every run and never mutated afterward.
type SummaryStatistics struct {
	// TotalOrganizationalRisks is the number of register rows.
	TotalOrganizationalRisks int `json:"total_organizational_risks"`

	// TotalAIRisks is the number of AI risks the analysis identified.
	TotalAIRisks int `json:"total_ai_risks"`

	// TotalGovernanceGaps is the number of governance gaps identified.
	TotalGovernanceGaps int `json:"total_governance_gaps"`

	// ISODomainsAffected is the number of control domains referenced.
	ISODomainsAffected int `json:"iso_domains_affected"`

	// HighRiskItems is the number of register rows at or above the
	// high-risk threshold.
	HighRiskItems int `json:"high_risk_items"`

	// AverageRiskScore is the mean of the register's risk_score column.
	AverageRiskScore float64 `json:"average_risk_score"`

	// OverallRiskScore blends register severity with analysis
	// confidence on a 0-10 scale. See computeStatistics for the exact
	// formula.
	OverallRiskScore float64 `json:"overall_risk_score"`

	// AIAnalysisConfidence echoes the analysis confidence score.
	AIAnalysisConfidence float64 `json:"ai_analysis_confidence"`

	// RiskCategories is a frequency table of the register's optional
	// category column. Empty when the column is absent.
	RiskCategories map[string]int `json:"risk_categories"`
}

// ComprehensiveRiskAssessment is the fused output of a run. It is
// constructed once by the Engine and immutable thereafter.
type ComprehensiveRiskAssessment struct {
	// ID uniquely identifies this assessment run.
	ID string `json:"assessment_id"`

	// GeneratedAt is the assessment timestamp.
	GeneratedAt time.Time `json:"generated_at"`

	// UseCase is the analyzed use-case description.
	UseCase string `json:"use_case"`

	// Register is the validated, normalized risk table.
	Register *register.Table `json:"organizational_risks"`

	// Analysis is the structured governance analysis.
	Analysis *analysis.GovernanceAnalysis `json:"ai_governance_analysis"`

	// Statistics are the derived aggregates.
	Statistics SummaryStatistics `json:"summary_statistics"`

	// HighPriorityItems lists items needing attention, in fixed group
	// order: high-risk register rows, then governance gaps, then AI
	// risks. This is a regulatory review order, not a severity sort.
	HighPriorityItems []PriorityItem `json:"high_priority_items"`
}
