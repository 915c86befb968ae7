// Package fusion combines a validated risk register with an AI
// governance analysis into a single comprehensive assessment.
//
// # Overview
//
// The Engine is the orchestrator of a run. It parses the register,
// obtains the governance analysis, derives summary statistics and an
// ordered high-priority item list, and assembles an immutable
// ComprehensiveRiskAssessment. Failures from either collaborator are
// wrapped in a FusionError carrying the stage that failed, so callers
// can tell bad input data from a backend outage.
//
// Execution is strictly sequential. The register parse and the analysis
// call are independent but kept in order for clear error attribution.
package fusion
