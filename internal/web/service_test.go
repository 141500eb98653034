package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dotcommander/scorekit/internal/store"
	"github.com/dotcommander/scorekit/internal/template"
	"github.com/dotcommander/scorekit/internal/types"
)

const testTemplateJSON = `{
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
			"options": [{"value": 1, "label": "No"}, {"value": 5, "label": "Yes"}]
		},
		{
			"id": "q2", "text": "Is data centralized?", "category": "diagnostic",
			"questionType": "maturity", "inputType": "radio", "pillarId": "data",
			"options": [{"value": 1, "label": "No"}, {"value": 5, "label": "Yes"}]
		}
	],
	"recommendations": [
		{"pillarId": "leadership", "scoreRange": [0, 101], "headline": "Start small"},
		{"pillarId": "data", "scoreRange": [0, 101], "headline": "Centralize first"}
	],
	"copy": {
		"landing": {"headline": "Check your fit"},
		"report": {"bandIntros": {"Leader": {"headline": "Out in front", "intro": "You lead the field."}}}
	}
}`

func newTestService(t *testing.T) (*Service, *httptest.Server) {
	t.Helper()

	registry := template.NewRegistry()
	tmpl, err := template.Parse([]byte(testTemplateJSON))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if err := registry.Register(tmpl); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	s := New(registry, store.NewMemoryStore(), nil, "localhost", 0)
	server := httptest.NewServer(s.Handler())
	t.Cleanup(server.Close)
	return s, server
}

func TestPing(t *testing.T) {
	_, server := newTestService(t)

	resp, err := http.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("GET / error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestListTemplates(t *testing.T) {
	_, server := newTestService(t)

	resp, err := http.Get(server.URL + "/templates")
	if err != nil {
		t.Fatalf("GET /templates error = %v", err)
	}
	defer resp.Body.Close()

	var got []templateSummary
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].ID != "fit-check" || got[0].EstimatedMinutes != 5 {
		t.Errorf("templates = %+v", got)
	}
}

func TestScoreEndpoint(t *testing.T) {
	_, server := newTestService(t)

	body := `{"templateId": "fit-check", "answers": {"q1": 5, "q2": 5}}`
	resp, err := http.Post(server.URL+"/score", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /score error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result types.ScoringResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Percentage != 100 || result.Band != "Leader" {
		t.Errorf("result = %+v", result)
	}
}

func TestScoreEndpointErrors(t *testing.T) {
	_, server := newTestService(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "missing template id", body: `{"answers": {}}`, wantStatus: http.StatusBadRequest},
		{name: "unknown template", body: `{"templateId": "missing", "answers": {}}`, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(server.URL+"/score", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("POST /score error = %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestReportLifecycle(t *testing.T) {
	_, server := newTestService(t)

	body := `{
		"templateId": "fit-check",
		"answers": {"q1": 5, "q2": 1},
		"lead": {"email": "pat@example.com", "name": "Pat"}
	}`
	resp, err := http.Post(server.URL+"/report", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /report error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var created createReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Token == "" {
		t.Fatal("empty report token")
	}

	getResp, err := http.Get(server.URL + "/report/" + created.Token)
	if err != nil {
		t.Fatalf("GET /report error = %v", err)
	}
	defer getResp.Body.Close()

	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", getResp.StatusCode)
	}

	var got reportResponse
	if err := json.NewDecoder(getResp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Record.Lead.Email != "pat@example.com" {
		t.Errorf("lead = %+v", got.Record.Lead)
	}
	if got.Report.Result.Percentage != 60 {
		t.Errorf("percentage = %d, want 60", got.Report.Result.Percentage)
	}
	if len(got.Report.Pillars) != 2 {
		t.Errorf("pillars = %d, want 2", len(got.Report.Pillars))
	}
}

func TestGetReportNotFound(t *testing.T) {
	_, server := newTestService(t)

	resp, err := http.Get(server.URL + "/report/no-such-token")
	if err != nil {
		t.Fatalf("GET /report error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
