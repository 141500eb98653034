// Package discovery locates template definition files under a directory
// tree using glob patterns.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// templatePatterns are the file patterns treated as template definitions.
// Order matters only for readability; results are deduplicated and sorted.
var templatePatterns = []string{
	"**/*.json",
	"**/*.yaml",
	"**/*.yml",
}

// Templates returns the template definition files under root, sorted.
func Templates(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("templates directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates directory: %s is not a directory", root)
	}

	seen := make(map[string]bool)
	var files []string

	for _, pattern := range templatePatterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, nil
}

// IsYAML reports whether the path looks like a YAML-authored template.
func IsYAML(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}
