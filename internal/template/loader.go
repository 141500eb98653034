// Package template loads, validates, and registers assessment templates, and
// provides the pure query helpers the scoring and report layers use.
package template

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/scorekit/internal/types"
	"github.com/dotcommander/scorekit/internal/validate"
)

// ErrParse indicates the serialized template could not be decoded at all.
// Validation never runs for such input.
var ErrParse = errors.New("invalid JSON")

// ErrParseYAML is the YAML counterpart of ErrParse.
var ErrParseYAML = errors.New("invalid YAML")

// ValidationError is returned when a decoded template fails validation.
// It aggregates every issue the validator found.
type ValidationError struct {
	Result validate.Result
}

func (e *ValidationError) Error() string {
	return "invalid template: " + e.Result.ErrorMessages()
}

// Parse decodes a JSON-serialized template, validates it, and returns the
// finalized template with defaults applied. The input is never mutated;
// defaulting happens on the decoded copy.
func Parse(data []byte) (*types.Template, error) {
	var candidate any
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, ErrParse
	}

	if result := validate.Template(candidate); !result.Valid {
		return nil, &ValidationError{Result: result}
	}

	var t types.Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, ErrParse
	}

	t = applyDefaults(t)
	return &t, nil
}

// ParseYAML decodes a YAML-authored template through the same validation and
// defaulting pipeline as Parse.
func ParseYAML(data []byte) (*types.Template, error) {
	var candidate any
	if err := yaml.Unmarshal(data, &candidate); err != nil {
		return nil, ErrParseYAML
	}

	if result := validate.Template(normalizeYAML(candidate)); !result.Valid {
		return nil, &ValidationError{Result: result}
	}

	var t types.Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, ErrParseYAML
	}

	t = applyDefaults(t)
	return &t, nil
}

// applyDefaults returns a copy of the template with absent optional sections
// filled in. It never mutates shared state: the default bands are a fresh
// slice per call.
func applyDefaults(t types.Template) types.Template {
	if len(t.Bands) == 0 {
		t.Bands = types.DefaultBands()
	}
	return t
}

// normalizeYAML converts the map[any]any trees older YAML decoders produce
// into the map[string]any shape the validator expects. yaml.v3 already
// decodes string-keyed mappings to map[string]any; this keeps non-string keys
// from slipping through as a different type.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				continue
			}
			out[key] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return v
	}
}
