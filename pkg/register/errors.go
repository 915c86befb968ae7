package register

import "fmt"

// ValidationError represents a structurally or semantically invalid risk
// register. It is always fatal to the current run and is never retried:
// retrying without fixing the input cannot help.
type ValidationError struct {
	// Path is the register file path being parsed.
	Path string

	// Column is the offending column, if the failure is column-specific.
	Column string

	// Message describes what is invalid.
	Message string

	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("risk register %q invalid: column %q: %s", e.Path, e.Column, e.Message)
	}
	return fmt.Sprintf("risk register %q invalid: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}
