package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dotcommander/scorekit/internal/config"
	"github.com/dotcommander/scorekit/internal/template"
)

const testTemplateJSON = `{
	"id": "fit-check",
	"version": "1.0.0",
	"name": "Fit Check",
	"description": "A small readiness assessment",
	"estimatedMinutes": 5,
	"pillars": [{"id": "leadership", "name": "Leadership", "order": 1}],
	"questions": [{
		"id": "q1", "text": "Is there a plan?", "category": "diagnostic",
		"questionType": "maturity", "inputType": "radio", "pillarId": "leadership",
		"options": [{"value": 1, "label": "No"}, {"value": 5, "label": "Yes"}]
	}],
	"recommendations": [{"pillarId": "leadership", "scoreRange": [0, 101], "headline": "Start small"}],
	"copy": {"landing": {"headline": "Check your fit"}, "report": {}}
}`

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"validate":  false,
		"score":     false,
		"report":    false,
		"templates": false,
		"serve":     false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestBuildRegistryIncludesBuiltins(t *testing.T) {
	registry, err := buildRegistry(&config.Config{})
	if err != nil {
		t.Fatalf("buildRegistry() error = %v", err)
	}
	if _, ok := registry.Get("ai-readiness"); !ok {
		t.Error("built-in template missing from registry")
	}
}

func TestBuildRegistryLoadsDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "fit.json"), []byte(testTemplateJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	registry, err := buildRegistry(&config.Config{TemplatesDir: dir})
	if err != nil {
		t.Fatalf("buildRegistry() error = %v", err)
	}
	if _, ok := registry.Get("fit-check"); !ok {
		t.Error("directory template missing from registry")
	}
}

func TestResolveTemplate(t *testing.T) {
	registry := template.NewRegistry()
	tmpl, err := template.Parse([]byte(testTemplateJSON))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if err := registry.Register(tmpl); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	file := filepath.Join(t.TempDir(), "other.json")
	fromFile := []byte(testTemplateJSON)
	if err := os.WriteFile(file, fromFile, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("registry id", func(t *testing.T) {
		got, err := resolveTemplate(registry, "fit-check")
		if err != nil {
			t.Fatalf("resolveTemplate() error = %v", err)
		}
		if got.ID != "fit-check" {
			t.Errorf("ID = %q", got.ID)
		}
	})

	t.Run("file path", func(t *testing.T) {
		got, err := resolveTemplate(registry, file)
		if err != nil {
			t.Fatalf("resolveTemplate() error = %v", err)
		}
		if got.ID != "fit-check" {
			t.Errorf("ID = %q", got.ID)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := resolveTemplate(registry, "nope"); err == nil {
			t.Error("resolveTemplate() error = nil, want unknown template")
		}
	})
}

func TestReadAnswers(t *testing.T) {
	file := filepath.Join(t.TempDir(), "answers.json")
	if err := os.WriteFile(file, []byte(`{"q1": 5, "ctx-role": "Founder / CEO"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	answers, err := readAnswers(file)
	if err != nil {
		t.Fatalf("readAnswers() error = %v", err)
	}
	if answers["q1"] != float64(5) || answers["ctx-role"] != "Founder / CEO" {
		t.Errorf("answers = %+v", answers)
	}

	if _, err := readAnswers(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("readAnswers() error = nil for missing file")
	}
}
