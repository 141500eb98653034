// Package output renders validation results and score reports in the
// formats the CLI supports.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/dotcommander/scorekit/internal/report"
	"github.com/dotcommander/scorekit/internal/validate"
)

// FileValidation is the validation outcome for one template file.
type FileValidation struct {
	File     string           `json:"file"`
	Valid    bool             `json:"valid"`
	Errors   []validate.Issue `json:"errors"`
	Warnings []validate.Issue `json:"warnings"`
	Schema   []validate.Issue `json:"schema,omitempty"` // advisory CUE schema findings
}

// ValidationSummary aggregates validation outcomes across files.
type ValidationSummary struct {
	Results   []FileValidation `json:"results"`
	StartTime time.Time        `json:"-"`
}

// TotalErrors counts errors across all files.
func (s *ValidationSummary) TotalErrors() int {
	total := 0
	for _, r := range s.Results {
		total += len(r.Errors)
	}
	return total
}

// TotalWarnings counts warnings across all files.
func (s *ValidationSummary) TotalWarnings() int {
	total := 0
	for _, r := range s.Results {
		total += len(r.Warnings)
	}
	return total
}

// Formatter renders validation summaries and report views.
type Formatter interface {
	FormatValidation(summary *ValidationSummary) error
	FormatReport(view *report.View) error
}

// NewFormatter creates the formatter for the requested format.
func NewFormatter(format string, w io.Writer, quiet, verbose bool) (Formatter, error) {
	switch format {
	case "console":
		return NewConsoleFormatter(w, quiet, verbose), nil
	case "json":
		return NewJSONFormatter(w), nil
	case "markdown":
		return NewMarkdownFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
