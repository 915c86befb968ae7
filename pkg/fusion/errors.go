package fusion

import "fmt"

// Stages at which an assessment run can fail.
const (
	// StageRegister covers register parsing and validation failures.
	StageRegister = "register"

	// StageAnalysis covers governance analysis failures.
	StageAnalysis = "analysis"

	// StageStatistics covers arithmetic precondition violations while
	// fusing, such as an out-of-range confidence score.
	StageStatistics = "statistics"
)

// FusionError wraps a failure from one stage of an assessment run. The
// wrapped cause is preserved, so errors.As still reaches the underlying
// ValidationError or AnalysisError.
type FusionError struct {
	// Stage identifies where the run failed (StageRegister,
	// StageAnalysis, or StageStatistics).
	Stage string

	// Cause is the underlying failure.
	Cause error
}

// Error implements the error interface.
func (e *FusionError) Error() string {
	return fmt.Sprintf("fusion failed at %s stage: %v", e.Stage, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *FusionError) Unwrap() error {
	return e.Cause
}
