package config

import "time"

// Default values for configuration fields.
const (
	// Analysis defaults
	DefaultAnalysisProvider   = "gemini"
	DefaultAnalysisMaxRetries = 3
	DefaultAnalysisTimeout    = 120 * time.Second

	// Rate limit defaults
	DefaultRateLimitMaxRequests = 15
	DefaultRateLimitTimeWindow  = 60 * time.Second

	// Report defaults
	DefaultReportOutputPath = "agie_report.md"

	// Logging defaults
	DefaultLoggingLevel  = "warn"
	DefaultLoggingFormat = "text"
)

// ApplyDefaults fills in default values for any zero-valued fields in
// the configuration. Explicitly set values are never overwritten.
func ApplyDefaults(cfg *Config) {
	if cfg.Analysis.Provider == "" {
		cfg.Analysis.Provider = DefaultAnalysisProvider
	}
	if cfg.Analysis.MaxRetries == 0 {
		cfg.Analysis.MaxRetries = DefaultAnalysisMaxRetries
	}
	if cfg.Analysis.Timeout == 0 {
		cfg.Analysis.Timeout = DefaultAnalysisTimeout
	}

	if cfg.RateLimit.MaxRequests == 0 {
		cfg.RateLimit.MaxRequests = DefaultRateLimitMaxRequests
	}
	if cfg.RateLimit.TimeWindow == 0 {
		cfg.RateLimit.TimeWindow = DefaultRateLimitTimeWindow
	}

	if cfg.Report.OutputPath == "" {
		cfg.Report.OutputPath = DefaultReportOutputPath
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLoggingFormat
	}
}

// DefaultConfig returns a configuration populated entirely with
// defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
