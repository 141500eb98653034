package template

import (
	"errors"
	"testing"

	"github.com/dotcommander/scorekit/internal/types"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	tmpl := mustParse(t, validTemplateJSON)

	if err := r.Register(tmpl); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, ok := r.Get("fit-check")
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if got.Name != "Fit Check" {
		t.Errorf("Get() Name = %q, want %q", got.Name, "Fit Check")
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) ok = true, want false")
	}
}

func TestRegistryRejectsInvalid(t *testing.T) {
	r := NewRegistry()

	err := r.Register(&types.Template{ID: "bare"})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Register() error = %v, want *ValidationError", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after failed registration, want 0", r.Len())
	}
}

func TestRegistryOverwritesSameID(t *testing.T) {
	r := NewRegistry()
	first := mustParse(t, validTemplateJSON)
	second := mustParse(t, validTemplateJSON)
	second.Name = "Fit Check v2"

	if err := r.Register(first); err != nil {
		t.Fatalf("Register(first) error = %v", err)
	}
	if err := r.Register(second); err != nil {
		t.Fatalf("Register(second) error = %v", err)
	}

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	got, _ := r.Get("fit-check")
	if got.Name != "Fit Check v2" {
		t.Errorf("Get() Name = %q, want overwrite to win", got.Name)
	}
}

func TestRegistryListAndClear(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(mustParse(t, validTemplateJSON)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if got := r.List(); len(got) != 1 {
		t.Errorf("List() = %d templates, want 1", len(got))
	}

	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", r.Len())
	}
	if got := r.List(); len(got) != 0 {
		t.Errorf("List() = %d templates after Clear, want 0", len(got))
	}
}

func TestRegistryInstancesAreIsolated(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	if err := a.Register(mustParse(t, validTemplateJSON)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, ok := b.Get("fit-check"); ok {
		t.Error("registration leaked across registry instances")
	}
}
