package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"agie-hq/agie/pkg/cli"
	"agie-hq/agie/pkg/config"
	"agie-hq/agie/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "agie",
	Short: "AGIE - AI Governance Intelligence Engine",
	Long: `AGIE analyses AI governance risks against ISO 27001 standards.

It combines an organizational risk register (CSV) with an LLM-backed
governance analysis of an AI use case, producing a comprehensive
assessment with summary statistics, prioritized actions, and a
Markdown report.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; explicit environment always wins.
		_ = godotenv.Load()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return logging.Setup(cfg.Logging)
	},
}

// loadConfig loads the effective configuration, honoring --config and
// --verbose. A missing default config file is not an error.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
	}

	cfg, err := config.LoadConfigWithEnvOverrides(path)
	if err != nil {
		return nil, cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	config.SetConfig(cfg)
	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
