// Package config provides configuration management for AGIE.
//
// This package handles loading, validating, and managing configuration
// from YAML files with environment variable overrides. It provides a
// type-safe configuration system with validation and sensible defaults.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("agie.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("agie.yaml")
//
// An empty path yields the defaults, so a configuration file is never
// required.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention AGIE_SECTION_FIELD.
// For example:
//
//   - AGIE_ANALYSIS_PROVIDER overrides analysis.provider
//   - AGIE_ANALYSIS_MODEL overrides analysis.model
//   - AGIE_LOGGING_LEVEL overrides logging.level
//
// Environment variables always take precedence over file-based
// configuration. Backend API keys (GOOGLE_API_KEY, ANTHROPIC_API_KEY)
// are read by the backends themselves and never stored in this package.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later
// overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Singleton Pattern
//
// For application-wide configuration access, use the singleton pattern:
//
//	// At application startup
//	if err := config.Initialize("agie.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Anywhere in the application
//	cfg := config.GetConfig()
//
// For testing, prefer dependency injection with explicit Config
// instances rather than the global singleton.
package config
