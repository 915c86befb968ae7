package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"agie-hq/agie/pkg/analysis/gemini"
	"agie-hq/agie/pkg/cli"
)

var modelsFlags struct {
	all bool
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available Gemini models",
	Long: `List the Gemini models available to the configured API key.

By default only models supporting content generation are shown; use
--all to include embedding and other non-generation models.

Requires GOOGLE_API_KEY in the environment or .env file.`,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)

	modelsCmd.Flags().BoolVar(&modelsFlags.all, "all", false, "include models without generation support")
}

func runModels(cmd *cobra.Command, args []string) error {
	ctx := cli.SetupSignalHandler()

	models, err := gemini.ListModels(ctx, "")
	if err != nil {
		return hintedError("models", err)
	}

	out := cmd.OutOrStdout()
	shown := 0
	for _, m := range models {
		if !modelsFlags.all && !m.SupportsGeneration() {
			continue
		}
		name := strings.TrimPrefix(m.Name, "models/")
		fmt.Fprintf(out, "%-40s %s\n", name, m.DisplayName)
		shown++
	}
	fmt.Fprintf(out, "\n%d models available (default: %s)\n", shown, gemini.DefaultModel)
	return nil
}
