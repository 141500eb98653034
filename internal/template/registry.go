package template

import (
	"sync"

	"github.com/dotcommander/scorekit/internal/types"
	"github.com/dotcommander/scorekit/internal/validate"
)

// Registry is an in-memory lookup of templates keyed by id. Registration
// re-validates defensively because a Template value may have been hand-built
// rather than produced by Parse. Instances are safe for concurrent use,
// though registration is expected to happen at startup or in test setup.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]*types.Template
}

// NewRegistry returns an empty registry. Tests should create their own
// instance instead of sharing Default.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]*types.Template)}
}

// Register validates the template and inserts it, overwriting any prior
// registration with the same id.
func (r *Registry) Register(t *types.Template) error {
	if result := validate.Value(t); !result.Valid {
		return &ValidationError{Result: result}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[t.ID] = t
	return nil
}

// Get looks up a template by id. Absence is an expected outcome, reported
// through the second return value rather than an error.
func (r *Registry) Get(id string) (*types.Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[id]
	return t, ok
}

// List returns a snapshot of the registered templates. Order is unspecified.
func (r *Registry) List() []*types.Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*types.Template, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t)
	}
	return out
}

// Clear empties the registry. Intended for test isolation, not runtime use.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates = make(map[string]*types.Template)
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// Default is the process-wide registry used by the CLI and serve paths.
var Default = NewRegistry()

// Register registers a template into the Default registry.
func Register(t *types.Template) error { return Default.Register(t) }

// Get looks up a template in the Default registry.
func Get(id string) (*types.Template, bool) { return Default.Get(id) }

// List snapshots the Default registry.
func List() []*types.Template { return Default.List() }

// Clear empties the Default registry.
func Clear() { Default.Clear() }
