package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"agie-hq/agie/pkg/fusion"
)

// previewLimit caps how many priority items the terminal summary shows.
const previewLimit = 3

// WriteSummary renders a short terminal summary of the assessment: the
// headline statistics and a preview of the top priority actions. The
// full detail lives in the Markdown report.
func WriteSummary(w io.Writer, a *fusion.ComprehensiveRiskAssessment) error {
	s := a.Statistics

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Analysis Summary")
	fmt.Fprintln(tw, "----------------")
	fmt.Fprintf(tw, "Overall Risk Score\t%.1f/10\n", s.OverallRiskScore)
	fmt.Fprintf(tw, "Organisational Risks\t%d\n", s.TotalOrganizationalRisks)
	fmt.Fprintf(tw, "AI-Specific Risks\t%d\n", s.TotalAIRisks)
	fmt.Fprintf(tw, "Governance Gaps\t%d\n", s.TotalGovernanceGaps)
	fmt.Fprintf(tw, "ISO 27001 Domains\t%d\n", s.ISODomainsAffected)
	fmt.Fprintf(tw, "High-Priority Items\t%d\n", len(a.HighPriorityItems))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(a.HighPriorityItems) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top Priority Actions:")
	for i, item := range a.HighPriorityItems {
		if i >= previewLimit {
			break
		}
		fmt.Fprintf(w, "  %d. [%s] %s: %s\n",
			i+1, item.Priority, item.RiskID, truncate(item.Description, 60))
	}
	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
