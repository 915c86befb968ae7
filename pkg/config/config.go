package config

import "time"

// Config is the root configuration structure for AGIE. It contains
// configuration sections for the analysis backend, rate limiting,
// report output, and logging.
type Config struct {
	// Analysis contains configuration for the governance analysis
	// backend including provider selection, model, and retry policy.
	Analysis AnalysisConfig `yaml:"analysis"`

	// RateLimit contains configuration for the outbound request
	// throttle.
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	// Report contains configuration for report generation.
	Report ReportConfig `yaml:"report"`

	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// AnalysisConfig contains configuration for the analysis backend.
type AnalysisConfig struct {
	// Provider selects the analysis backend.
	// Options: "gemini", "anthropic", "stub"
	// Default: "gemini"
	Provider string `yaml:"provider"`

	// Model is the model identifier. Empty selects the provider's
	// default model.
	Model string `yaml:"model"`

	// MaxRetries is the number of attempts per analysis call before
	// giving up.
	// Default: 3
	MaxRetries int `yaml:"max_retries"`

	// Timeout bounds each outbound request. Analysis calls routinely
	// take tens of seconds.
	// Default: 120s
	Timeout time.Duration `yaml:"timeout"`
}

// RateLimitConfig contains configuration for the token-bucket throttle
// applied to outbound analysis calls.
type RateLimitConfig struct {
	// MaxRequests is the bucket capacity: the number of calls allowed
	// per TimeWindow.
	// Default: 15
	MaxRequests int `yaml:"max_requests"`

	// TimeWindow is the refill window.
	// Default: 60s
	TimeWindow time.Duration `yaml:"time_window"`
}

// ReportConfig contains configuration for report generation.
type ReportConfig struct {
	// OutputPath is the default path for the Markdown report when the
	// command line does not override it.
	// Default: "agie_report.md"
	OutputPath string `yaml:"output_path"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "warn" (analysis runs are interactive; logs stay quiet
	// unless asked for)
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text"
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}
