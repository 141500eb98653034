package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dotcommander/scorekit/internal/config"
	"github.com/dotcommander/scorekit/internal/scoring"
)

var (
	scoreTemplateRef string
	scoreAnswersFile string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answer set against a template",
	Long: `The score command computes pillar averages, the overall percentage, and the
matching band for a set of answers.

Answers are a JSON object keyed by question id. Only numeric answers to
diagnostic questions contribute to the score; an unanswered diagnostic
question counts as the lowest option value.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreTemplateRef, "template", "ai-readiness", "Template id or path to a template file")
	scoreCmd.Flags().StringVar(&scoreAnswersFile, "answers", "", "Path to a JSON file of answers keyed by question id")
	scoreCmd.MarkFlagRequired("answers")
	rootCmd.AddCommand(scoreCmd)
}

func runScore() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	t, err := resolveTemplate(registry, scoreTemplateRef)
	if err != nil {
		return err
	}

	answers, err := readAnswers(scoreAnswersFile)
	if err != nil {
		return err
	}

	result := scoring.Calculate(t, scoring.DiagnosticAnswers(answers))

	if cfg.Format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if cfg.Quiet {
		fmt.Printf("%d%% %s\n", result.Percentage, result.Band)
		return nil
	}

	fmt.Printf("%s\n\n", t.Name)
	fmt.Printf("Overall: %d%% (%s)\n", result.Percentage, result.Band)
	fmt.Printf("Points:  %.0f of %.0f\n\n", result.Total, result.Max)

	pillarIDs := make([]string, 0, len(result.PillarScores))
	for id := range result.PillarScores {
		pillarIDs = append(pillarIDs, id)
	}
	sort.Strings(pillarIDs)
	for _, id := range pillarIDs {
		name := id
		for _, p := range t.Pillars {
			if p.ID == id {
				name = p.Name
				break
			}
		}
		fmt.Printf("  %-24s %.1f / 5\n", name, result.PillarScores[id])
	}
	return nil
}

func readAnswers(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading answers file: %w", err)
	}
	var answers map[string]any
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("error parsing answers file: %w", err)
	}
	return answers, nil
}
