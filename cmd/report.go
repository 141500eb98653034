package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/scorekit/internal/config"
	"github.com/dotcommander/scorekit/internal/report"
)

var (
	reportTemplateRef string
	reportAnswersFile string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the full report for an answer set",
	Long: `The report command scores an answer set and renders the complete report:
the overall band with its intro copy, per-pillar scores with recommendations,
the answers grouped by pillar, and the template's next steps.

Use --format json for the raw report structure, or --format markdown for a
shareable document.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReport(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportTemplateRef, "template", "ai-readiness", "Template id or path to a template file")
	reportCmd.Flags().StringVar(&reportAnswersFile, "answers", "", "Path to a JSON file of answers keyed by question id")
	reportCmd.MarkFlagRequired("answers")
	rootCmd.AddCommand(reportCmd)
}

func runReport() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	t, err := resolveTemplate(registry, reportTemplateRef)
	if err != nil {
		return err
	}

	answers, err := readAnswers(reportAnswersFile)
	if err != nil {
		return err
	}

	view := report.Build(t, answers)

	formatter, closer, err := newFormatter(cfg)
	if err != nil {
		return err
	}
	defer closer()

	if err := formatter.FormatReport(&view); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
