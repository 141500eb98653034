package template

import (
	"fmt"
	"os"

	"github.com/dotcommander/scorekit/internal/discovery"
)

// LoadDir discovers template files under dir, parses each, and registers
// them into the registry. It returns the number of templates registered.
// The first unparseable or invalid file aborts the load.
func LoadDir(r *Registry, dir string) (int, error) {
	files, err := discovery.Templates(dir)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return loaded, fmt.Errorf("read %s: %w", file, err)
		}

		parse := Parse
		if discovery.IsYAML(file) {
			parse = ParseYAML
		}
		t, err := parse(data)
		if err != nil {
			return loaded, fmt.Errorf("parse %s: %w", file, err)
		}

		if err := r.Register(t); err != nil {
			return loaded, fmt.Errorf("register %s: %w", file, err)
		}
		loaded++
	}

	return loaded, nil
}
