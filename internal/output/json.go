package output

import (
	"encoding/json"
	"io"

	"github.com/dotcommander/scorekit/internal/report"
)

// JSONFormatter formats output as indented JSON.
type JSONFormatter struct {
	w io.Writer
}

// NewJSONFormatter creates a JSONFormatter writing to w.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

type jsonValidationReport struct {
	TotalFiles    int              `json:"totalFiles"`
	TotalErrors   int              `json:"totalErrors"`
	TotalWarnings int              `json:"totalWarnings"`
	Results       []FileValidation `json:"results"`
}

// FormatValidation writes the validation summary as JSON.
func (f *JSONFormatter) FormatValidation(summary *ValidationSummary) error {
	payload := jsonValidationReport{
		TotalFiles:    len(summary.Results),
		TotalErrors:   summary.TotalErrors(),
		TotalWarnings: summary.TotalWarnings(),
		Results:       summary.Results,
	}
	return f.encode(payload)
}

// FormatReport writes the report view as JSON.
func (f *JSONFormatter) FormatReport(view *report.View) error {
	return f.encode(view)
}

func (f *JSONFormatter) encode(v any) error {
	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
