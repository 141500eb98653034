package template

import (
	"errors"
	"strings"
	"testing"

	"github.com/dotcommander/scorekit/internal/types"
)

const validTemplateJSON = `{
	"id": "fit-check",
	"version": "1.0.0",
	"name": "Fit Check",
	"description": "A small readiness assessment",
	"estimatedMinutes": 5,
	"pillars": [
		{"id": "leadership", "name": "Leadership", "order": 1},
		{"id": "data", "name": "Data", "order": 2}
	],
	"questions": [
		{
			"id": "q1", "text": "Is there a plan?", "category": "diagnostic",
			"questionType": "maturity", "inputType": "radio", "pillarId": "leadership",
			"options": [{"value": 1, "label": "No"}, {"value": 3, "label": "Partially"}, {"value": 5, "label": "Yes"}]
		},
		{
			"id": "q2", "text": "Is data centralized?", "category": "diagnostic",
			"questionType": "maturity", "inputType": "radio", "pillarId": "data",
			"options": [{"value": 1, "label": "No"}, {"value": 5, "label": "Yes"}]
		},
		{
			"id": "ctx-role", "text": "Your role?", "category": "context",
			"questionType": "demographics", "inputType": "text"
		}
	],
	"recommendations": [
		{"pillarId": "leadership", "scoreRange": [0, 40], "headline": "Start small"},
		{"pillarId": "leadership", "scoreRange": [40, 101], "headline": "Scale up"},
		{"pillarId": "data", "scoreRange": [0, 101], "headline": "Centralize first"}
	],
	"copy": {
		"landing": {"headline": "Check your fit"},
		"report": {
			"bandIntros": {
				"Starting": {"headline": "Early days", "intro": "You are at the start."}
			}
		}
	}
}`

const validTemplateYAML = `
id: fit-check-yaml
version: 1.0.0
name: Fit Check (YAML)
description: A small readiness assessment
estimatedMinutes: 5
pillars:
  - id: leadership
    name: Leadership
    order: 1
questions:
  - id: q1
    text: Is there a plan?
    category: diagnostic
    questionType: maturity
    inputType: radio
    pillarId: leadership
    options:
      - value: 1
        label: "No"
      - value: 5
        label: "Yes"
recommendations:
  - pillarId: leadership
    scoreRange: [0, 101]
    headline: Start small
copy:
  landing:
    headline: Check your fit
  report:
    bandIntros: {}
`

func mustParse(t *testing.T, data string) *types.Template {
	t.Helper()
	tmpl, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return tmpl
}

func TestParseValid(t *testing.T) {
	tmpl := mustParse(t, validTemplateJSON)

	if tmpl.ID != "fit-check" {
		t.Errorf("ID = %q, want %q", tmpl.ID, "fit-check")
	}
	if len(tmpl.Pillars) != 2 || len(tmpl.Questions) != 3 {
		t.Errorf("got %d pillars and %d questions, want 2 and 3", len(tmpl.Pillars), len(tmpl.Questions))
	}
	if tmpl.Questions[0].Options[1].Value == nil || *tmpl.Questions[0].Options[1].Value != 3 {
		t.Errorf("q1 option values not decoded: %+v", tmpl.Questions[0].Options)
	}
	if intro, ok := tmpl.Copy.Report.BandIntros["Starting"]; !ok || intro.Headline != "Early days" {
		t.Errorf("band intros not decoded: %+v", tmpl.Copy.Report.BandIntros)
	}
}

func TestParseAppliesDefaultBands(t *testing.T) {
	tmpl := mustParse(t, validTemplateJSON)

	if len(tmpl.Bands) != 4 {
		t.Fatalf("bands = %d, want 4 defaults", len(tmpl.Bands))
	}
	if tmpl.Bands[3].Name != "Leader" || tmpl.Bands[3].MaxScore != 100 {
		t.Errorf("top default band = %+v", tmpl.Bands[3])
	}
}

func TestParseKeepsDeclaredBands(t *testing.T) {
	data := strings.Replace(validTemplateJSON, `"recommendations":`,
		`"bands": [
			{"id": "low", "name": "Low", "minScore": 0, "maxScore": 50},
			{"id": "high", "name": "High", "minScore": 50, "maxScore": 100}
		],
		"recommendations":`, 1)

	tmpl := mustParse(t, data)
	if len(tmpl.Bands) != 2 || tmpl.Bands[0].Name != "Low" {
		t.Errorf("declared bands overwritten: %+v", tmpl.Bands)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"id": "broken"`))
	if !errors.Is(err, ErrParse) {
		t.Errorf("Parse() error = %v, want ErrParse", err)
	}
}

func TestParseInvalidTemplate(t *testing.T) {
	_, err := Parse([]byte(`{"id": "incomplete"}`))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Parse() error = %v, want *ValidationError", err)
	}
	if verr.Result.Valid || len(verr.Result.Errors) == 0 {
		t.Errorf("ValidationError carries no issues: %+v", verr.Result)
	}
	if !strings.HasPrefix(verr.Error(), "invalid template: ") {
		t.Errorf("Error() = %q, want invalid template prefix", verr.Error())
	}
}

func TestParseYAML(t *testing.T) {
	tmpl, err := ParseYAML([]byte(validTemplateYAML))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}

	if tmpl.ID != "fit-check-yaml" {
		t.Errorf("ID = %q, want %q", tmpl.ID, "fit-check-yaml")
	}
	if len(tmpl.Bands) != 4 {
		t.Errorf("bands = %d, want 4 defaults", len(tmpl.Bands))
	}
	if len(tmpl.Questions) != 1 || tmpl.Questions[0].Options[1].Value == nil {
		t.Errorf("questions not decoded from YAML: %+v", tmpl.Questions)
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	_, err := ParseYAML([]byte("id: [unclosed"))
	if !errors.Is(err, ErrParseYAML) {
		t.Errorf("ParseYAML() error = %v, want ErrParseYAML", err)
	}
}
