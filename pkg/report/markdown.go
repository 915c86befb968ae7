package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"agie-hq/agie/pkg/fusion"
)

// DefaultOutputPath is the report location used when none is given.
const DefaultOutputPath = "agie_report.md"

// MarkdownGenerator renders assessments as Markdown reports.
type MarkdownGenerator struct{}

// NewMarkdownGenerator creates a Markdown report generator.
func NewMarkdownGenerator() *MarkdownGenerator {
	return &MarkdownGenerator{}
}

// Generate writes the assessment report to outputPath, creating parent
// directories as needed. An empty outputPath selects DefaultOutputPath.
// It returns the path written.
func (g *MarkdownGenerator) Generate(a *fusion.ComprehensiveRiskAssessment, outputPath string) (string, error) {
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	content := g.Render(a)
	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	slog.Info("report written", "path", outputPath, "bytes", len(content))
	return outputPath, nil
}

// Render produces the report body without touching the filesystem.
func (g *MarkdownGenerator) Render(a *fusion.ComprehensiveRiskAssessment) string {
	var b strings.Builder

	b.WriteString("# AI Governance Risk Assessment\n\n")
	fmt.Fprintf(&b, "- **Assessment ID:** %s\n", a.ID)
	fmt.Fprintf(&b, "- **Generated:** %s\n", a.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- **Use Case:** %s\n\n", a.UseCase)

	writeSummarySection(&b, a.Statistics)
	writeISODomainsSection(&b, a.Analysis.ISODomains)
	writePrioritySection(&b, a.HighPriorityItems)
	writeGapsSection(&b, a.Analysis.GovernanceGaps, a.Analysis.Recommendations)
	writeAIRisksSection(&b, a.Analysis.AIRisks)
	writeRegisterSection(&b, a)

	b.WriteString("---\n\n")
	b.WriteString("*Generated by AGIE, the AI Governance Intelligence Engine.*\n")
	return b.String()
}

func writeSummarySection(b *strings.Builder, s fusion.SummaryStatistics) {
	b.WriteString("## Executive Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Overall Risk Score | %.1f / 10 |\n", s.OverallRiskScore)
	fmt.Fprintf(b, "| Organisational Risks | %d |\n", s.TotalOrganizationalRisks)
	fmt.Fprintf(b, "| AI-Specific Risks | %d |\n", s.TotalAIRisks)
	fmt.Fprintf(b, "| Governance Gaps | %d |\n", s.TotalGovernanceGaps)
	fmt.Fprintf(b, "| ISO 27001 Domains Affected | %d |\n", s.ISODomainsAffected)
	fmt.Fprintf(b, "| High-Risk Register Items | %d |\n", s.HighRiskItems)
	fmt.Fprintf(b, "| Average Risk Score | %.2f |\n", s.AverageRiskScore)
	fmt.Fprintf(b, "| Analysis Confidence | %.0f%% |\n\n", s.AIAnalysisConfidence*100)

	if len(s.RiskCategories) > 0 {
		b.WriteString("### Risk Categories\n\n")
		for _, category := range sortedKeys(s.RiskCategories) {
			fmt.Fprintf(b, "- %s: %d\n", category, s.RiskCategories[category])
		}
		b.WriteString("\n")
	}
}

func writeISODomainsSection(b *strings.Builder, domains []string) {
	if len(domains) == 0 {
		return
	}
	b.WriteString("## Affected ISO 27001 Control Domains\n\n")
	for _, d := range domains {
		fmt.Fprintf(b, "- %s\n", d)
	}
	b.WriteString("\n")
}

func writePrioritySection(b *strings.Builder, items []fusion.PriorityItem) {
	b.WriteString("## High-Priority Items\n\n")
	if len(items) == 0 {
		b.WriteString("No high-priority items identified.\n\n")
		return
	}

	b.WriteString("| Priority | ID | Source | Description | Score | Recommended Action |\n")
	b.WriteString("|----------|----|--------|-------------|-------|--------------------|\n")
	for _, item := range items {
		score := "-"
		if item.RiskScore != nil {
			score = fmt.Sprintf("%d", *item.RiskScore)
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
			item.Priority,
			item.RiskID,
			item.Source,
			escapeCell(item.Description),
			score,
			escapeCell(item.Action),
		)
	}
	b.WriteString("\n")
}

func writeGapsSection(b *strings.Builder, gaps, recommendations []string) {
	if len(gaps) == 0 {
		return
	}
	b.WriteString("## Governance Gaps and Recommendations\n\n")
	for i, gap := range gaps {
		fmt.Fprintf(b, "%d. **Gap:** %s\n", i+1, gap)
		if i < len(recommendations) {
			fmt.Fprintf(b, "   **Recommendation:** %s\n", recommendations[i])
		}
	}
	// Recommendations beyond the gap list still matter to the reader.
	if len(recommendations) > len(gaps) {
		b.WriteString("\n### Additional Recommendations\n\n")
		for _, rec := range recommendations[len(gaps):] {
			fmt.Fprintf(b, "- %s\n", rec)
		}
	}
	b.WriteString("\n")
}

func writeAIRisksSection(b *strings.Builder, risks []string) {
	if len(risks) == 0 {
		return
	}
	b.WriteString("## Identified AI Risks\n\n")
	for _, r := range risks {
		fmt.Fprintf(b, "- %s\n", r)
	}
	b.WriteString("\n")
}

func writeRegisterSection(b *strings.Builder, a *fusion.ComprehensiveRiskAssessment) {
	b.WriteString("## Organisational Risk Register\n\n")
	b.WriteString("| ID | Description | Likelihood | Impact | Score | Status |\n")
	b.WriteString("|----|-------------|------------|--------|-------|--------|\n")
	for _, r := range a.Register.Records {
		status := r.Status
		if status == "" {
			status = "-"
		}
		fmt.Fprintf(b, "| %s | %s | %d | %d | %d | %s |\n",
			r.RiskID, escapeCell(r.Description), r.Likelihood, r.Impact, r.RiskScore, status)
	}
	b.WriteString("\n")
}

// escapeCell keeps free text from breaking the Markdown table.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
