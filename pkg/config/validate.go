package config

import (
	"fmt"
	"strings"
)

// Providers accepted by analysis.provider.
var validProviders = []string{"gemini", "anthropic", "stub"}

// FieldError represents a validation error for a specific configuration
// field.
type FieldError struct {
	// Field is the dotted path to the configuration field
	// (e.g., "analysis.provider").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a
// configuration. It implements the error interface and provides access
// to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a
// ValidationError if any validation rules fail. All validation errors
// are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateAnalysis(&cfg.Analysis)...)
	errs = append(errs, validateRateLimit(&cfg.RateLimit)...)
	errs = append(errs, validateLogging(&cfg.Logging)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateAnalysis(cfg *AnalysisConfig) []FieldError {
	var errs []FieldError

	valid := false
	for _, p := range validProviders {
		if cfg.Provider == p {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, FieldError{
			Field:   "analysis.provider",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validProviders, ", "), cfg.Provider),
		})
	}

	if cfg.MaxRetries < 1 {
		errs = append(errs, FieldError{
			Field:   "analysis.max_retries",
			Message: fmt.Sprintf("must be at least 1, got %d", cfg.MaxRetries),
		})
	}
	if cfg.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "analysis.timeout",
			Message: "must not be negative",
		})
	}

	return errs
}

func validateRateLimit(cfg *RateLimitConfig) []FieldError {
	var errs []FieldError

	if cfg.MaxRequests < 1 {
		errs = append(errs, FieldError{
			Field:   "rate_limit.max_requests",
			Message: fmt.Sprintf("must be at least 1, got %d", cfg.MaxRequests),
		})
	}
	if cfg.TimeWindow <= 0 {
		errs = append(errs, FieldError{
			Field:   "rate_limit.time_window",
			Message: "must be positive",
		})
	}

	return errs
}

func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError

	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error, got %q", cfg.Level),
		})
	}

	switch cfg.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be json or text, got %q", cfg.Format),
		})
	}

	return errs
}
