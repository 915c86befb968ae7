package fusion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"agie-hq/agie/pkg/analysis"
	"agie-hq/agie/pkg/register"
)

// Limits on how many analysis findings are promoted to the
// high-priority item list.
const (
	maxPriorityGaps    = 3
	maxPriorityAIRisks = 2
)

// Engine fuses register validation and governance analysis into a
// comprehensive assessment.
type Engine struct {
	parser   *register.Parser
	analyzer analysis.Analyzer
	now      func() time.Time
}

// NewEngine creates a fusion engine over the given parser and analyzer.
func NewEngine(parser *register.Parser, analyzer analysis.Analyzer) *Engine {
	return &Engine{
		parser:   parser,
		analyzer: analyzer,
		now:      time.Now,
	}
}

// Assess runs a full assessment: parse the register at registerPath,
// analyze the use case, derive statistics and high-priority items, and
// assemble the result.
//
// Failures are wrapped in a *FusionError whose Stage records which step
// failed. The wrapped register.ValidationError or
// analysis.AnalysisError remains reachable through errors.As.
func (e *Engine) Assess(ctx context.Context, registerPath, useCase string, contextInfo map[string]string) (*ComprehensiveRiskAssessment, error) {
	slog.Info("starting risk assessment", "register", registerPath, "use_case_length", len(useCase))

	table, err := e.parser.Parse(registerPath)
	if err != nil {
		return nil, &FusionError{Stage: StageRegister, Cause: err}
	}
	slog.Info("register validated", "rows", table.Len())

	result, err := e.analyzer.AnalyzeUseCase(ctx, useCase, contextInfo)
	if err != nil {
		return nil, &FusionError{Stage: StageAnalysis, Cause: err}
	}

	stats, err := computeStatistics(table, result)
	if err != nil {
		return nil, &FusionError{Stage: StageStatistics, Cause: err}
	}

	assessment := &ComprehensiveRiskAssessment{
		ID:                uuid.NewString(),
		GeneratedAt:       e.now().UTC(),
		UseCase:           useCase,
		Register:          table,
		Analysis:          result,
		Statistics:        stats,
		HighPriorityItems: buildPriorityItems(table, result),
	}

	slog.Info("assessment complete",
		"assessment_id", assessment.ID,
		"overall_risk_score", stats.OverallRiskScore,
		"high_priority_items", len(assessment.HighPriorityItems),
	)
	return assessment, nil
}

// computeStatistics derives the summary aggregates.
//
// The overall risk score blends the register's average score
// (normalized by the 25-point maximum, weighted 0.6) with inverted
// analysis confidence (weighted 0.4), scaled to 0-10. The constants are
// fixed policy values. Lower confidence raises the score; an unreliable
// analysis is itself a risk signal.
func computeStatistics(table *register.Table, result *analysis.GovernanceAnalysis) (SummaryStatistics, error) {
	confidence := result.ConfidenceScore
	if confidence < 0 || confidence > 1 {
		return SummaryStatistics{}, fmt.Errorf("confidence score %v outside [0, 1]", confidence)
	}

	summary := register.Summarize(table)

	overall := ((summary.AverageRiskScore/25)*0.6 + (1-confidence)*0.4) * 10

	categories := make(map[string]int)
	for _, r := range table.Records {
		if r.Category != "" {
			categories[r.Category]++
		}
	}

	return SummaryStatistics{
		TotalOrganizationalRisks: summary.TotalRisks,
		TotalAIRisks:             len(result.AIRisks),
		TotalGovernanceGaps:      len(result.GovernanceGaps),
		ISODomainsAffected:       len(result.ISODomains),
		HighRiskItems:            summary.HighRiskCount,
		AverageRiskScore:         summary.AverageRiskScore,
		OverallRiskScore:         overall,
		AIAnalysisConfidence:     confidence,
		RiskCategories:           categories,
	}, nil
}

// buildPriorityItems assembles the high-priority list in fixed group
// order: every high-risk register row, then the first three governance
// gaps, then the first two AI risks. Within each group the source order
// is preserved.
func buildPriorityItems(table *register.Table, result *analysis.GovernanceAnalysis) []PriorityItem {
	var items []PriorityItem

	for _, r := range table.HighRiskRecords() {
		action := r.Mitigation
		if action == "" {
			action = noMitigationAction
		}
		score := r.RiskScore
		items = append(items, PriorityItem{
			Source:      SourceRegister,
			Priority:    PriorityHigh,
			RiskID:      r.RiskID,
			Description: r.Description,
			RiskScore:   &score,
			Action:      action,
		})
	}

	for i, gap := range result.GovernanceGaps {
		if i >= maxPriorityGaps {
			break
		}
		// Recommendations align positionally with gaps; fall back when
		// the analysis returned fewer recommendations than gaps.
		action := reviewRequiredAction
		if i < len(result.Recommendations) {
			action = result.Recommendations[i]
		}
		items = append(items, PriorityItem{
			Source:      SourceGovernanceAnalysis,
			Priority:    PriorityHigh,
			RiskID:      fmt.Sprintf("AI-GAP-%03d", i+1),
			Description: gap,
			Action:      action,
		})
	}

	for i, risk := range result.AIRisks {
		if i >= maxPriorityAIRisks {
			break
		}
		items = append(items, PriorityItem{
			Source:      SourceAIRiskAnalysis,
			Priority:    PriorityMedium,
			RiskID:      fmt.Sprintf("AI-RISK-%03d", i+1),
			Description: risk,
			Action:      aiRiskControlsAction,
		})
	}

	return items
}
