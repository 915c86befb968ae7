package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"agie-hq/agie/pkg/analysis"
	"agie-hq/agie/pkg/fusion"
	"agie-hq/agie/pkg/register"
)

func sampleAssessment() *fusion.ComprehensiveRiskAssessment {
	score := 20
	return &fusion.ComprehensiveRiskAssessment{
		ID:          "test-assessment-id",
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		UseCase:     "AI chatbot for customer support",
		Register: &register.Table{
			Columns: []string{"risk_id", "risk_description", "likelihood", "impact", "risk_score"},
			Records: []register.Record{
				{RiskID: "R1", Description: "Data breach", Likelihood: 5, Impact: 4, RiskScore: 20, Category: "security"},
				{RiskID: "R2", Description: "Process gap", Likelihood: 2, Impact: 2, RiskScore: 4, Status: "open"},
			},
		},
		Analysis: &analysis.GovernanceAnalysis{
			AIRisks:         []string{"Hallucination risk"},
			ISODomains:      []string{"A.12 - Operations Security"},
			GovernanceGaps:  []string{"No validation procedure"},
			Recommendations: []string{"Document validation", "Extra recommendation"},
			ConfidenceScore: 0.85,
		},
		Statistics: fusion.SummaryStatistics{
			TotalOrganizationalRisks: 2,
			TotalAIRisks:             1,
			TotalGovernanceGaps:      1,
			ISODomainsAffected:       1,
			HighRiskItems:            1,
			AverageRiskScore:         12.0,
			OverallRiskScore:         3.48,
			AIAnalysisConfidence:     0.85,
			RiskCategories:           map[string]int{"security": 1},
		},
		HighPriorityItems: []fusion.PriorityItem{
			{Source: fusion.SourceRegister, Priority: fusion.PriorityHigh, RiskID: "R1",
				Description: "Data breach", RiskScore: &score, Action: "Segment network"},
			{Source: fusion.SourceGovernanceAnalysis, Priority: fusion.PriorityHigh, RiskID: "AI-GAP-001",
				Description: "No validation procedure", Action: "Document validation"},
		},
	}
}

func TestRender_ContainsAllSections(t *testing.T) {
	content := NewMarkdownGenerator().Render(sampleAssessment())

	sections := []string{
		"# AI Governance Risk Assessment",
		"test-assessment-id",
		"2026-03-01 12:00:00 UTC",
		"## Executive Summary",
		"| Overall Risk Score | 3.5 / 10 |",
		"| Analysis Confidence | 85% |",
		"### Risk Categories",
		"## Affected ISO 27001 Control Domains",
		"## High-Priority Items",
		"| HIGH | R1 | register | Data breach | 20 | Segment network |",
		"| HIGH | AI-GAP-001 | governance_analysis | No validation procedure | - | Document validation |",
		"## Governance Gaps and Recommendations",
		"### Additional Recommendations",
		"## Identified AI Risks",
		"## Organisational Risk Register",
		"| R2 | Process gap | 2 | 2 | 4 | open |",
	}
	for _, want := range sections {
		if !strings.Contains(content, want) {
			t.Errorf("Report missing %q", want)
		}
	}
}

func TestRender_EscapesTableCells(t *testing.T) {
	a := sampleAssessment()
	a.Register.Records[0].Description = "Pipe | and\nnewline"

	content := NewMarkdownGenerator().Render(a)
	if !strings.Contains(content, `Pipe \| and newline`) {
		t.Error("Expected pipes escaped and newlines flattened in table cells")
	}
}

func TestGenerate_WritesFileAndCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "out.md")

	got, err := NewMarkdownGenerator().Generate(sampleAssessment(), path)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != path {
		t.Errorf("Expected path %q, got %q", path, got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	if !strings.Contains(string(data), "# AI Governance Risk Assessment") {
		t.Error("Written report missing title")
	}
}

func TestWriteSummary(t *testing.T) {
	var b strings.Builder
	if err := WriteSummary(&b, sampleAssessment()); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	out := b.String()
	for _, want := range []string{
		"Analysis Summary",
		"3.5/10",
		"Top Priority Actions:",
		"1. [HIGH] R1: Data breach",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary missing %q", want)
		}
	}
}
