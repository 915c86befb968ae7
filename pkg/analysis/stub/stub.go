// Package stub implements a deterministic offline analysis backend.
//
// The stub returns canned governance analyses selected by use-case
// keywords, serialized as the same JSON document a live backend would
// produce, so the full repair/parse path is exercised. It makes no
// network calls and needs no credentials, which makes it the backend of
// choice for tests and for running without API access.
package stub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"agie-hq/agie/pkg/analysis"
)

// Backend is the offline TextGenerator.
type Backend struct {
	// Fenced wraps responses in a markdown code fence, imitating the
	// formatting quirk live backends exhibit. Tests use it to exercise
	// response repair end to end.
	Fenced bool
}

// New creates a stub backend.
func New() *Backend {
	slog.Warn("stub analysis backend selected (offline, canned responses)")
	return &Backend{}
}

// Generate implements analysis.TextGenerator. The prompt's use-case text
// selects a template; output is deterministic for a given prompt.
func (b *Backend) Generate(_ context.Context, prompt string) (string, error) {
	template := selectTemplate(strings.ToLower(prompt))

	payload, err := json.MarshalIndent(template, "", "  ")
	if err != nil {
		return "", err
	}

	if b.Fenced {
		return "```json\n" + string(payload) + "\n```", nil
	}
	return string(payload), nil
}

// Name implements analysis.TextGenerator.
func (b *Backend) Name() string { return "stub" }

func selectTemplate(text string) *analysis.GovernanceAnalysis {
	anyOf := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	}

	switch {
	case anyOf("chatbot", "customer support", "chat", "support"):
		return chatbotTemplate()
	case anyOf("loan", "credit", "approval", "lending", "scoring"):
		return creditScoringTemplate()
	case anyOf("hiring", "recruitment", "resume", "candidate"):
		return hiringTemplate()
	case anyOf("fraud", "detection", "transaction", "monitoring"):
		return fraudDetectionTemplate()
	default:
		return genericTemplate()
	}
}

func chatbotTemplate() *analysis.GovernanceAnalysis {
	return &analysis.GovernanceAnalysis{
		AIRisks: []string{
			"Model hallucinations may provide incorrect information to customers",
			"Lack of explainability in decision-making for escalations",
			"Potential for bias in sentiment analysis affecting customer treatment",
			"Third-party AI model dependencies introduce supply chain risk",
			"Model drift over time may degrade response quality without monitoring",
		},
		ISODomains: []string{
			"A.5 - Information Security Policies",
			"A.8 - Asset Management (customer data handling)",
			"A.12 - Operations Security (logging, monitoring)",
			"A.13 - Communications Security",
			"A.15 - Supplier Relationships (third-party AI models)",
			"A.18 - Compliance (data protection, GDPR)",
		},
		GovernanceGaps: []string{
			"No documented AI model validation or testing procedure",
			"Insufficient logging of AI decisions for audit trail",
			"Lack of human oversight for high-risk customer interactions",
			"No process for handling AI-generated misinformation",
			"Missing data retention and privacy controls for conversation logs",
		},
		Recommendations: []string{
			"Implement real-time model monitoring with alerting for hallucinations",
			"Establish human-in-the-loop review for sensitive customer issues",
			"Create comprehensive AI decision logging (inputs, outputs, confidence scores)",
			"Document model validation procedures aligned with ISO 27001 A.12.1",
			"Implement data minimization and retention policies for conversation logs",
			"Conduct regular bias testing with diverse customer scenarios",
		},
		ConfidenceScore: 0.88,
	}
}

func creditScoringTemplate() *analysis.GovernanceAnalysis {
	return &analysis.GovernanceAnalysis{
		AIRisks: []string{
			"Algorithmic bias may lead to discriminatory lending decisions",
			"Lack of model explainability violates fair lending regulations",
			"Training data may reflect historical bias in lending practices",
			"Model drift could cause inconsistent credit decisions over time",
			"Third-party data sources may introduce unvalidated risk factors",
		},
		ISODomains: []string{
			"A.5 - Information Security Policies",
			"A.8 - Asset Management (sensitive financial data)",
			"A.9 - Access Control (model access, data access)",
			"A.12 - Operations Security (model monitoring)",
			"A.18 - Compliance (fair lending laws, FCRA, ECOA)",
		},
		GovernanceGaps: []string{
			"No documented fairness testing or bias mitigation strategy",
			"Insufficient explainability mechanisms (SHAP, LIME, etc.)",
			"Lack of adverse action notice generation with AI explanations",
			"No documented model retraining and drift monitoring procedures",
			"Missing audit trail for model decisions and appeals process",
		},
		Recommendations: []string{
			"Implement comprehensive bias testing across protected classes",
			"Deploy explainable AI framework (SHAP/LIME) for all credit decisions",
			"Establish model governance committee with legal, compliance, and data science",
			"Create automated fairness monitoring with regulatory thresholds",
			"Document model card with training data sources, limitations, and performance metrics",
			"Implement human review process for borderline cases and appeals",
		},
		ConfidenceScore: 0.92,
	}
}

func hiringTemplate() *analysis.GovernanceAnalysis {
	return &analysis.GovernanceAnalysis{
		AIRisks: []string{
			"Resume screening AI may perpetuate historical hiring bias",
			"Lack of transparency in candidate ranking algorithms",
			"Training data may reflect past discriminatory practices",
			"Model may inadvertently filter protected class candidates",
			"Limited explainability for rejected candidates",
		},
		ISODomains: []string{
			"A.5 - Information Security Policies",
			"A.7 - Human Resource Security",
			"A.8 - Asset Management (candidate PII)",
			"A.12 - Operations Security",
			"A.18 - Compliance (employment law, EEOC guidelines)",
		},
		GovernanceGaps: []string{
			"No documented AI fairness testing for protected classes",
			"Insufficient explainability for candidate rejections",
			"Lack of human oversight in final hiring decisions",
			"Missing documentation of training data sources and bias mitigation",
			"No process for candidates to challenge AI-driven decisions",
		},
		Recommendations: []string{
			"Conduct disparate impact testing across gender, race, age demographics",
			"Implement explainable AI for candidate ranking decisions",
			"Require human review for all final hiring decisions",
			"Document model limitations and post-deployment monitoring plan",
			"Create candidate notification process about AI usage in screening",
			"Establish regular bias audits with third-party validation",
		},
		ConfidenceScore: 0.85,
	}
}

func fraudDetectionTemplate() *analysis.GovernanceAnalysis {
	return &analysis.GovernanceAnalysis{
		AIRisks: []string{
			"High false positive rate may impact legitimate customer transactions",
			"Model drift as fraudsters adapt to detection patterns",
			"Adversarial attacks could evade fraud detection",
			"Lack of explainability for flagged transactions affects customer trust",
			"Real-time processing requirements may compromise security checks",
		},
		ISODomains: []string{
			"A.8 - Asset Management (transaction data)",
			"A.12 - Operations Security (real-time monitoring)",
			"A.13 - Communications Security",
			"A.16 - Incident Management",
			"A.17 - Business Continuity",
			"A.18 - Compliance (PCI-DSS, financial regulations)",
		},
		GovernanceGaps: []string{
			"No documented false positive/negative monitoring",
			"Insufficient model retraining procedures as fraud patterns evolve",
			"Lack of adversarial testing against evasion techniques",
			"Missing customer communication process for false positives",
			"No documented escalation procedures for high-risk detections",
		},
		Recommendations: []string{
			"Implement continuous model monitoring with adaptive retraining",
			"Establish clear thresholds and human review for high-value transactions",
			"Conduct regular adversarial testing and red team exercises",
			"Create customer-friendly explanation mechanisms for fraud flags",
			"Document incident response procedures for fraud detection failures",
			"Implement A/B testing framework for model improvements",
		},
		ConfidenceScore: 0.90,
	}
}

func genericTemplate() *analysis.GovernanceAnalysis {
	return &analysis.GovernanceAnalysis{
		AIRisks: []string{
			"Potential for model bias affecting decision outcomes",
			"Lack of explainability may hinder accountability",
			"Model performance may degrade over time without monitoring",
			"Data quality issues could compromise model reliability",
			"Third-party dependencies introduce supply chain risks",
		},
		ISODomains: []string{
			"A.5 - Information Security Policies",
			"A.8 - Asset Management",
			"A.12 - Operations Security",
			"A.14 - System Acquisition and Development",
			"A.18 - Compliance",
		},
		GovernanceGaps: []string{
			"No documented AI model validation procedures",
			"Insufficient logging and monitoring of AI decisions",
			"Lack of defined roles and responsibilities for AI governance",
			"Missing incident response procedures for AI failures",
			"No documented model risk management framework",
		},
		Recommendations: []string{
			"Establish AI governance framework with clear ownership",
			"Implement comprehensive logging of model inputs and outputs",
			"Create model performance monitoring dashboard",
			"Document model limitations and approved use cases",
			"Develop incident response procedures for AI-related issues",
			"Conduct regular model validation and bias testing",
		},
		ConfidenceScore: 0.75,
	}
}
