package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate_DefaultsAreValid(t *testing.T) {
	if err := Validate(DefaultConfig()); err != nil {
		t.Errorf("Default configuration failed validation: %v", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "unknown provider",
			mutate: func(c *Config) { c.Analysis.Provider = "openai" },
			field:  "analysis.provider",
		},
		{
			name:   "zero retries",
			mutate: func(c *Config) { c.Analysis.MaxRetries = -1 },
			field:  "analysis.max_retries",
		},
		{
			name:   "negative timeout",
			mutate: func(c *Config) { c.Analysis.Timeout = -time.Second },
			field:  "analysis.timeout",
		},
		{
			name:   "zero rate limit capacity",
			mutate: func(c *Config) { c.RateLimit.MaxRequests = -5 },
			field:  "rate_limit.max_requests",
		},
		{
			name:   "negative time window",
			mutate: func(c *Config) { c.RateLimit.TimeWindow = -time.Minute },
			field:  "rate_limit.time_window",
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "trace" },
			field:  "logging.level",
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Logging.Format = "console" },
			field:  "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Expected error to name %q, got %v", tt.field, err)
			}
		})
	}
}

func TestValidate_CollectsMultipleErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analysis.Provider = "nope"
	cfg.Logging.Level = "nope"

	err := Validate(cfg)
	verr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("Expected ValidationError, got %T", err)
	}
	if len(verr.Errors) != 2 {
		t.Errorf("Expected 2 field errors, got %d", len(verr.Errors))
	}
}
