package output

import (
	"fmt"
	"io"

	"github.com/dotcommander/scorekit/internal/report"
)

// MarkdownFormatter formats output as markdown, suitable for writing report
// files or pasting into docs.
type MarkdownFormatter struct {
	w io.Writer
}

// NewMarkdownFormatter creates a MarkdownFormatter writing to w.
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{w: w}
}

// FormatValidation writes the validation summary as markdown.
func (f *MarkdownFormatter) FormatValidation(summary *ValidationSummary) error {
	fmt.Fprintln(f.w, "# Template Validation Report")
	fmt.Fprintf(f.w, "\n%d file(s) checked, %d error(s), %d warning(s)\n",
		len(summary.Results), summary.TotalErrors(), summary.TotalWarnings())

	for _, result := range summary.Results {
		status := "✅"
		if len(result.Errors) > 0 {
			status = "❌"
		}
		fmt.Fprintf(f.w, "\n## %s %s\n\n", status, result.File)

		for _, issue := range result.Errors {
			fmt.Fprintf(f.w, "- **error** `%s`: %s\n", issue.Path, issue.Message)
		}
		for _, issue := range result.Warnings {
			fmt.Fprintf(f.w, "- **warning** `%s`: %s\n", issue.Path, issue.Message)
		}
		for _, issue := range result.Schema {
			fmt.Fprintf(f.w, "- schema `%s`: %s\n", issue.Path, issue.Message)
		}
		if len(result.Errors) == 0 && len(result.Warnings) == 0 && len(result.Schema) == 0 {
			fmt.Fprintln(f.w, "No issues found.")
		}
	}

	return nil
}

// FormatReport writes the report view as markdown.
func (f *MarkdownFormatter) FormatReport(view *report.View) error {
	fmt.Fprintf(f.w, "# %s\n", view.TemplateName)
	if view.BandIntro != nil {
		fmt.Fprintf(f.w, "\n## %s\n\n%s\n", view.BandIntro.Headline, view.BandIntro.Intro)
	}
	fmt.Fprintf(f.w, "\n**Overall: %d%% — %s** (%.0f of %.0f points)\n",
		view.Result.Percentage, view.Result.Band, view.Result.Total, view.Result.Max)

	fmt.Fprintln(f.w, "\n| Pillar | Score | Band |")
	fmt.Fprintln(f.w, "|--------|-------|------|")
	for _, pillar := range view.Pillars {
		fmt.Fprintf(f.w, "| %s | %.1f / 5 | %s |\n", pillar.Name, pillar.Score, pillar.Band)
	}

	for _, pillar := range view.Pillars {
		if pillar.Recommendation == nil {
			continue
		}
		fmt.Fprintf(f.w, "\n### %s: %s\n\n%s\n", pillar.Name, pillar.Recommendation.Headline, pillar.Recommendation.Body)
		for _, action := range pillar.Recommendation.Actions {
			fmt.Fprintf(f.w, "\n- %s\n", action)
		}
	}

	if len(view.Answers) > 0 {
		fmt.Fprintln(f.w, "\n## How we calculated your scores")
		for _, pillar := range view.Pillars {
			group, ok := view.Answers[pillar.PillarID]
			if !ok {
				continue
			}
			fmt.Fprintf(f.w, "\n### %s\n\n", group.PillarName)
			for _, answer := range group.Answers {
				fmt.Fprintf(f.w, "- %s — *%s*\n", answer.QuestionText, answer.DisplayAnswer)
			}
		}
	}

	if len(view.NextSteps) > 0 {
		fmt.Fprintln(f.w, "\n## Next steps")
		for _, step := range view.NextSteps {
			fmt.Fprintf(f.w, "\n1. **%s** — %s\n", step.Title, step.Description)
		}
	}

	return nil
}
