package analysis

import (
	"fmt"
	"strings"
)

// AnalysisError represents an analysis that failed all retry attempts.
// It wraps the last failure, which may be a backend transport error or a
// *ParseError from a malformed response.
type AnalysisError struct {
	// Backend is the name of the backend that was called.
	Backend string

	// Attempts is the number of attempts made before giving up.
	Attempts int

	// Cause is the failure from the final attempt.
	Cause error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis via %q failed after %d attempts: %v", e.Backend, e.Attempts, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// ParseError represents a backend response that could not be turned into
// a GovernanceAnalysis: invalid JSON after repair, or required fields
// absent.
type ParseError struct {
	// Backend is the name of the backend that produced the response.
	Backend string

	// RawResponse is the response text that failed to parse.
	RawResponse string

	// Missing lists required fields absent from the response (if the
	// JSON itself was valid).
	Missing []string

	// Cause is the underlying decode error (if any).
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("backend %q response missing required fields: %s",
			e.Backend, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("backend %q response is not valid JSON: %v", e.Backend, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// BackendError represents a transport-level failure from a backend
// (HTTP status errors, SDK failures). It carries the status code when
// one is available.
type BackendError struct {
	// Backend is the name of the backend.
	Backend string

	// StatusCode is the HTTP status code (0 if not applicable).
	StatusCode int

	// Message is the error message from the backend.
	Message string

	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("backend %q error (status %d): %s", e.Backend, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend %q error: %s", e.Backend, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *BackendError) Unwrap() error {
	return e.Cause
}

// AuthError represents an authentication failure: the backend rejected
// the API key (HTTP 401 or 403), or no key was configured at all.
// Retrying with the same credentials cannot help, but the CLI uses this
// type to print credential guidance.
type AuthError struct {
	// Backend is the name of the backend that rejected authentication.
	Backend string

	// Message is the error message from the backend.
	Message string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("backend %q authentication failed: %s", e.Backend, e.Message)
}
