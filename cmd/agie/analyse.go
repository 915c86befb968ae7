package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"agie-hq/agie/pkg/analysis"
	"agie-hq/agie/pkg/cli"
	"agie-hq/agie/pkg/config"
	"agie-hq/agie/pkg/fusion"
	"agie-hq/agie/pkg/ratelimit"
	"agie-hq/agie/pkg/register"
	"agie-hq/agie/pkg/report"
)

var analyseFlags struct {
	riskRegister string
	useCase      string
	output       string
	context      string
	provider     string
}

var analyseCmd = &cobra.Command{
	Use:   "analyse",
	Short: "Analyse AI governance risks and generate a report",
	Long: `Analyse an AI use case against an organizational risk register.

The command validates the risk register, asks the configured analysis
backend to assess the use case against ISO 27001 control domains, fuses
both into a comprehensive assessment, and writes a Markdown report.

Examples:
  # Basic analysis
  agie analyse -r data/risks.csv -u "Deploy AI chatbot for customer support"

  # With context and a custom report path
  agie analyse -r data/risks.csv -u "AI for loan approvals" \
      -c "industry: financial services, data: PII" -o reports/loans.md

  # Offline, using the deterministic stub backend
  agie analyse -r data/risks.csv -u "Fraud detection" --provider stub`,
	RunE: runAnalyse,
}

func init() {
	rootCmd.AddCommand(analyseCmd)

	analyseCmd.Flags().StringVarP(&analyseFlags.riskRegister, "risk-register", "r", "", "path to CSV risk register file")
	analyseCmd.Flags().StringVarP(&analyseFlags.useCase, "use-case", "u", "", "description of AI use case to analyse")
	analyseCmd.Flags().StringVarP(&analyseFlags.output, "output", "o", "", "output report file path (default: agie_report.md)")
	analyseCmd.Flags().StringVarP(&analyseFlags.context, "context", "c", "", `additional context (e.g., "industry: financial services")`)
	analyseCmd.Flags().StringVar(&analyseFlags.provider, "provider", "", "analysis backend: gemini, anthropic, stub (overrides config)")

	analyseCmd.MarkFlagRequired("risk-register")
	analyseCmd.MarkFlagRequired("use-case")
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()
	if analyseFlags.provider != "" {
		cfg.Analysis.Provider = analyseFlags.provider
	}
	output := analyseFlags.output
	if output == "" {
		output = cfg.Report.OutputPath
	}
	contextInfo := parseContext(analyseFlags.context)

	ctx := cli.SetupSignalHandler()
	steps := cli.NewStepReporter(cmd.OutOrStdout(), 3)

	steps.Step("Initialising analyser")
	backend, err := newBackend(ctx, cfg)
	if err != nil {
		steps.Fail(err)
		return hintedError("analyse", err)
	}
	limiter := ratelimit.New(cfg.RateLimit.MaxRequests, cfg.RateLimit.TimeWindow)
	client := analysis.NewClient(backend, limiter, analysis.Options{
		MaxRetries: cfg.Analysis.MaxRetries,
		Metrics:    analysis.NewMetrics(prometheus.DefaultRegisterer),
	})
	engine := fusion.NewEngine(register.NewParser(nil), client)
	steps.Done(fmt.Sprintf("%s backend ready", backend.Name()))

	steps.Step("Analysing risks (this may take 15-30 seconds)")
	assessment, err := engine.Assess(ctx, analyseFlags.riskRegister, analyseFlags.useCase, contextInfo)
	if err != nil {
		steps.Fail(err)
		return hintedError("analyse", err)
	}
	steps.Done("analysis complete")

	fmt.Fprintln(cmd.OutOrStdout())
	if err := report.WriteSummary(cmd.OutOrStdout(), assessment); err != nil {
		return cli.NewCommandError("analyse", err)
	}
	fmt.Fprintln(cmd.OutOrStdout())

	steps.Step(fmt.Sprintf("Generating report: %s", output))
	path, err := report.NewMarkdownGenerator().Generate(assessment, output)
	if err != nil {
		steps.Fail(err)
		return cli.NewCommandError("analyse", err)
	}
	steps.Done(fmt.Sprintf("report saved: %s", path))

	fmt.Fprintf(cmd.OutOrStdout(),
		"\n✓ Analysis complete. Risk score %.1f/10, %d high-priority items.\n",
		assessment.Statistics.OverallRiskScore, len(assessment.HighPriorityItems))
	return nil
}

// parseContext turns "key: value, key: value" into a map. Pairs without
// a colon are ignored.
func parseContext(s string) map[string]string {
	if s == "" {
		return nil
	}
	ctx := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		key, value, found := strings.Cut(pair, ":")
		if !found {
			continue
		}
		ctx[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if len(ctx) == 0 {
		return nil
	}
	return ctx
}

// hintedError wraps err in a CommandError, appending an actionable hint
// to stderr when one applies.
func hintedError(command string, err error) error {
	if hint := cli.Hint(err); hint != "" {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
	}
	return cli.NewCommandError(command, err)
}
