package template

import (
	"embed"
	"fmt"
)

//go:embed templates/*.json
var builtinFS embed.FS

// RegisterBuiltins parses and registers the templates shipped with the
// binary into the registry.
func RegisterBuiltins(r *Registry) error {
	entries, err := builtinFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("read embedded templates: %w", err)
	}

	for _, entry := range entries {
		data, err := builtinFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		t, err := Parse(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", entry.Name(), err)
		}
		if err := r.Register(t); err != nil {
			return fmt.Errorf("register %s: %w", entry.Name(), err)
		}
	}

	return nil
}
