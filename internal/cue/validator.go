// Package cue validates decoded templates against an embedded CUE schema.
// It is an advisory layer in front of the Go validator: schema findings are
// surfaced to template authors, while the Go validator remains the source of
// truth for whether a template is usable.
package cue

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError is a single schema finding.
type ValidationError struct {
	Path    string
	Message string
}

// Validator handles CUE schema validation.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a Validator with all embedded schemas loaded.
// Schema files that fail to compile are skipped; validation methods then
// report no findings for them rather than failing the caller.
func NewValidator() *Validator {
	v := &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
	v.loadSchemas()
	return v
}

func (v *Validator) loadSchemas() {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			continue
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if inst.Err() != nil {
			continue
		}

		name := entry.Name()[:len(entry.Name())-len(".cue")]
		v.schemas[name] = inst
	}
}

// ValidateTemplate checks a decoded template candidate against the #Template
// definition. A nil slice means the schema had no findings (or was not
// loaded, in which case the Go validator still runs).
func (v *Validator) ValidateTemplate(data map[string]any) ([]ValidationError, error) {
	schema, ok := v.schemas["template"]
	if !ok {
		return nil, nil
	}

	dataValue := v.ctx.Encode(data)
	if err := dataValue.Err(); err != nil {
		return nil, fmt.Errorf("encode template data: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Template"))
	if !def.Exists() {
		return nil, nil
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractErrors(err), nil
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrors(err), nil
	}

	return nil, nil
}

// extractErrors flattens a CUE error into per-path findings.
func extractErrors(err error) []ValidationError {
	var out []ValidationError
	for _, e := range cueerrors.Errors(err) {
		path := strings.Join(e.Path(), ".")
		format, args := e.Msg()
		out = append(out, ValidationError{
			Path:    path,
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(out) == 0 {
		out = append(out, ValidationError{Message: fmt.Sprintf("schema validation failed: %v", err)})
	}
	return out
}
