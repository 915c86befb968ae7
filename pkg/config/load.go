package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified
// path. It applies default values, validates the configuration, and
// returns any errors. An empty path skips the file and yields the
// defaults. The configuration is not modified by environment variables;
// use LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies environment variable overrides. Environment variables follow
// the naming convention AGIE_SECTION_FIELD (e.g., AGIE_ANALYSIS_MODEL)
// and always take precedence over file-based configuration.
//
// The loading sequence is:
//  1. Load YAML from file (if path is non-empty)
//  2. Apply default values
//  3. Apply environment variable overrides
//  4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables use the format
// AGIE_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("AGIE_ANALYSIS_PROVIDER"); val != "" {
		cfg.Analysis.Provider = val
	}
	if val := os.Getenv("AGIE_ANALYSIS_MODEL"); val != "" {
		cfg.Analysis.Model = val
	}
	if val := os.Getenv("AGIE_ANALYSIS_MAX_RETRIES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Analysis.MaxRetries = i
		}
	}
	if val := os.Getenv("AGIE_ANALYSIS_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Analysis.Timeout = d
		}
	}

	if val := os.Getenv("AGIE_RATE_LIMIT_MAX_REQUESTS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.RateLimit.MaxRequests = i
		}
	}
	if val := os.Getenv("AGIE_RATE_LIMIT_TIME_WINDOW"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.RateLimit.TimeWindow = d
		}
	}

	if val := os.Getenv("AGIE_REPORT_OUTPUT_PATH"); val != "" {
		cfg.Report.OutputPath = val
	}

	if val := os.Getenv("AGIE_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("AGIE_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
	if val := os.Getenv("AGIE_LOGGING_ADD_SOURCE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Logging.AddSource = b
		}
	}
}
