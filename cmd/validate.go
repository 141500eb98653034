package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/scorekit/internal/config"
	"github.com/dotcommander/scorekit/internal/cue"
	"github.com/dotcommander/scorekit/internal/discovery"
	"github.com/dotcommander/scorekit/internal/output"
	"github.com/dotcommander/scorekit/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate template files",
	Long: `The validate command checks template files for structural and referential
problems.

Two layers run on every file:
- Schema validation (CUE): shape, required fields, value ranges
- Semantic validation: duplicate ids, unknown pillar references, option rules

Missing-question pillars are reported as warnings; everything else that fails
is an error. The command exits non-zero when any file has errors.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(files []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	summary := &output.ValidationSummary{StartTime: time.Now()}
	schema := cue.NewValidator()

	for _, file := range files {
		result := validateFile(schema, file)
		summary.Results = append(summary.Results, result)
	}

	formatter, closer, err := newFormatter(cfg)
	if err != nil {
		return err
	}
	defer closer()

	if err := formatter.FormatValidation(summary); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if summary.TotalErrors() > 0 {
		exitFunc(1)
	}
	return nil
}

func validateFile(schema *cue.Validator, file string) output.FileValidation {
	fv := output.FileValidation{File: file}

	data, err := os.ReadFile(file)
	if err != nil {
		fv.Errors = append(fv.Errors, validate.Issue{Path: "", Message: err.Error()})
		return fv
	}

	var candidate any
	if discovery.IsYAML(file) {
		err = yaml.Unmarshal(data, &candidate)
	} else {
		err = json.Unmarshal(data, &candidate)
	}
	if err != nil {
		fv.Errors = append(fv.Errors, validate.Issue{Path: "", Message: "invalid syntax: " + err.Error()})
		return fv
	}

	// Schema layer is advisory; the semantic validator below decides validity.
	if m, ok := candidate.(map[string]any); ok {
		if schemaErrs, err := schema.ValidateTemplate(m); err == nil {
			for _, e := range schemaErrs {
				fv.Schema = append(fv.Schema, validate.Issue{Path: e.Path, Message: e.Message})
			}
		}
	}

	result := validate.Template(candidate)
	fv.Valid = result.Valid
	fv.Errors = append(fv.Errors, result.Errors...)
	fv.Warnings = append(fv.Warnings, result.Warnings...)
	return fv
}
