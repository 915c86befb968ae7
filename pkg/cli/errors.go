package cli

import (
	"errors"
	"fmt"

	"agie-hq/agie/pkg/analysis"
	"agie-hq/agie/pkg/fusion"
	"agie-hq/agie/pkg/register"
)

// ConfigError represents an error in configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// Hint returns a short actionable hint for a failed run, based on the
// kind of error, or an empty string when no specific guidance applies.
// The error kind survives fusion wrapping, so the hint reflects the
// root cause rather than the stage.
func Hint(err error) string {
	var verr *register.ValidationError
	if errors.As(err, &verr) {
		return "Fix the risk register CSV and retry. Run 'agie validate <file>' to check it."
	}

	var autherr *analysis.AuthError
	if errors.As(err, &autherr) {
		return "Check your API key (GOOGLE_API_KEY or ANTHROPIC_API_KEY) in the environment or .env file."
	}

	var aerr *analysis.AnalysisError
	if errors.As(err, &aerr) {
		return "The analysis backend failed after retries. Check API credentials, quota, and connectivity."
	}

	var ferr *fusion.FusionError
	if errors.As(err, &ferr) && ferr.Stage == fusion.StageStatistics {
		return "The analysis returned inconsistent data. Retry, or switch backends with --provider."
	}

	return ""
}
