package register

import "log/slog"

// Summary holds aggregate statistics for a parsed register.
type Summary struct {
	// TotalRisks is the number of data rows.
	TotalRisks int `json:"total_risks"`

	// AverageLikelihood is the arithmetic mean of the likelihood column.
	AverageLikelihood float64 `json:"average_likelihood"`

	// AverageImpact is the arithmetic mean of the impact column.
	AverageImpact float64 `json:"average_impact"`

	// AverageRiskScore is the arithmetic mean of the derived risk_score
	// column.
	AverageRiskScore float64 `json:"average_risk_score"`

	// HighRiskCount is the number of rows at or above HighRiskThreshold.
	HighRiskCount int `json:"high_risk_count"`

	// Columns lists the table's column names, risk_score included.
	Columns []string `json:"columns"`
}

// Summarize computes aggregate statistics for a table. It is a pure
// function of its input with no side effects beyond logging.
func Summarize(t *Table) Summary {
	s := Summary{
		TotalRisks: t.Len(),
		Columns:    t.Columns,
	}

	if t.Len() == 0 {
		return s
	}

	var likelihood, impact, score int
	for _, r := range t.Records {
		likelihood += r.Likelihood
		impact += r.Impact
		score += r.RiskScore
		if r.RiskScore >= HighRiskThreshold {
			s.HighRiskCount++
		}
	}

	n := float64(t.Len())
	s.AverageLikelihood = float64(likelihood) / n
	s.AverageImpact = float64(impact) / n
	s.AverageRiskScore = float64(score) / n

	slog.Debug("register summary computed",
		"total_risks", s.TotalRisks,
		"average_risk_score", s.AverageRiskScore,
		"high_risk_count", s.HighRiskCount,
	)
	return s
}
