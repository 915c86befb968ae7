// AGIE is the AI Governance Intelligence Engine.
//
// It assesses AI use cases against an organizational risk register and
// ISO 27001 control domains, producing:
//   - A validated, normalized view of the CSV risk register
//   - An LLM-backed governance analysis of the use case
//   - A fused comprehensive assessment with summary statistics and a
//     prioritized action list
//   - A Markdown report for stakeholders
//
// Usage:
//
//	# Analyse a use case against a risk register
//	agie analyse -r data/risks.csv -u "Deploy AI chatbot for customer support"
//
//	# With additional context and a custom report path
//	agie analyse -r data/risks.csv -u "AI for loan approvals" \
//	    -c "industry: financial services, data: PII" -o reports/loans.md
//
//	# Validate a risk register without running an analysis
//	agie validate data/risks.csv
//
//	# List available Gemini models
//	agie models
//
//	# Show version information
//	agie version
package main

func main() {
	Execute()
}
