package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/scorekit/internal/report"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))  // gray
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// ConsoleFormatter formats output for terminal display.
type ConsoleFormatter struct {
	w       io.Writer
	quiet   bool
	verbose bool
}

// NewConsoleFormatter creates a ConsoleFormatter writing to w.
func NewConsoleFormatter(w io.Writer, quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{w: w, quiet: quiet, verbose: verbose}
}

// FormatValidation prints per-file findings and a closing summary.
func (f *ConsoleFormatter) FormatValidation(summary *ValidationSummary) error {
	if f.quiet {
		return nil
	}

	for _, result := range summary.Results {
		hasFindings := len(result.Errors) > 0 || len(result.Warnings) > 0 || len(result.Schema) > 0
		if !hasFindings && !f.verbose {
			continue
		}

		status := okStyle.Render("✓")
		if len(result.Errors) > 0 {
			status = errorStyle.Render("✗")
		}
		fmt.Fprintf(f.w, "%s %s\n", status, result.File)

		for _, issue := range result.Errors {
			fmt.Fprintf(f.w, "  %s %s: %s\n", errorStyle.Render("error"), issue.Path, issue.Message)
		}
		for _, issue := range result.Warnings {
			fmt.Fprintf(f.w, "  %s %s: %s\n", warningStyle.Render("warning"), issue.Path, issue.Message)
		}
		for _, issue := range result.Schema {
			fmt.Fprintf(f.w, "  %s %s: %s\n", dimStyle.Render("schema"), issue.Path, issue.Message)
		}
	}

	errs, warns := summary.TotalErrors(), summary.TotalWarnings()
	conclusion := okStyle.Render("all templates valid")
	if errs > 0 {
		conclusion = errorStyle.Render("validation failed")
	}
	fmt.Fprintf(f.w, "%d file(s) checked, %d error(s), %d warning(s) — %s\n",
		len(summary.Results), errs, warns, conclusion)

	return nil
}

// FormatReport prints the full assessment report.
func (f *ConsoleFormatter) FormatReport(view *report.View) error {
	if f.quiet {
		fmt.Fprintf(f.w, "%d%% %s\n", view.Result.Percentage, view.Result.Band)
		return nil
	}

	fmt.Fprintln(f.w, headerStyle.Render(view.TemplateName))
	if view.BandIntro != nil {
		fmt.Fprintln(f.w, headerStyle.Render(view.BandIntro.Headline))
		fmt.Fprintln(f.w, view.BandIntro.Intro)
	}
	fmt.Fprintf(f.w, "\nOverall: %d%% — %s (%.0f of %.0f points)\n\n",
		view.Result.Percentage, view.Result.Band, view.Result.Total, view.Result.Max)

	for _, pillar := range view.Pillars {
		fmt.Fprintf(f.w, "%s  %s %s\n",
			scoreBar(pillar.Score), headerStyle.Render(pillar.Name),
			dimStyle.Render(fmt.Sprintf("%.1f / 5 — %s", pillar.Score, pillar.Band)))
		if pillar.Recommendation != nil {
			fmt.Fprintf(f.w, "      %s\n", pillar.Recommendation.Headline)
			for _, action := range pillar.Recommendation.Actions {
				fmt.Fprintf(f.w, "      → %s\n", action)
			}
		}
	}

	if len(view.Answers) > 0 {
		fmt.Fprintln(f.w, "\n"+headerStyle.Render("How we calculated your scores"))
		for _, pillar := range view.Pillars {
			group, ok := view.Answers[pillar.PillarID]
			if !ok {
				continue
			}
			fmt.Fprintln(f.w, headerStyle.Render(group.PillarName))
			for _, answer := range group.Answers {
				fmt.Fprintf(f.w, "  %s\n    %s\n", answer.QuestionText, dimStyle.Render(answer.DisplayAnswer))
			}
		}
	}

	for _, step := range view.NextSteps {
		fmt.Fprintf(f.w, "\n%s\n  %s\n", headerStyle.Render(step.Title), step.Description)
	}
	if view.CTA != nil {
		fmt.Fprintf(f.w, "\n%s\n%s\n", headerStyle.Render(view.CTA.Headline), view.CTA.Body)
	}

	return nil
}

// scoreBar renders a 1-5 score as a five-segment bar.
func scoreBar(score float64) string {
	filled := int(score + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return okStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", 5-filled))
}
