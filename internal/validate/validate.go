// Package validate checks assessment templates for structural and referential
// integrity. Validation is a pure, read-only pass: it never mutates the
// candidate and never panics on malformed input. Fatal problems are collected
// as errors, advisory ones as warnings.
package validate

import (
	"encoding/json"
	"fmt"
)

// Issue is a single validation finding. Path is a dotted/bracketed locator
// into the candidate, e.g. "questions[2].pillarId".
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Result is the outcome of validating one candidate template.
// Valid is false exactly when Errors is non-empty; warnings never affect it.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// ErrorMessages joins all error paths and messages into one diagnosable
// string, in collection order.
func (r Result) ErrorMessages() string {
	var out string
	for i, e := range r.Errors {
		if i > 0 {
			out += "; "
		}
		out += e.Path + ": " + e.Message
	}
	return out
}

// Template validates a decoded candidate template. The candidate is expected
// to be the result of unmarshalling JSON or YAML into any, i.e. a
// map[string]any at the root.
func Template(candidate any) Result {
	var errs, warns []Issue

	t, ok := candidate.(map[string]any)
	if !ok || t == nil {
		errs = append(errs, Issue{Path: "", Message: "Template must be an object"})
		return Result{Valid: false, Errors: errs, Warnings: warns}
	}

	// Required scalar fields.
	if !isNonEmptyString(t["id"]) {
		errs = append(errs, Issue{Path: "id", Message: "Template id is required and must be a string"})
	}
	if !isNonEmptyString(t["version"]) {
		errs = append(errs, Issue{Path: "version", Message: "Template version is required and must be a string"})
	}
	if !isNonEmptyString(t["name"]) {
		errs = append(errs, Issue{Path: "name", Message: "Template name is required and must be a string"})
	}
	if !isNonEmptyString(t["description"]) {
		errs = append(errs, Issue{Path: "description", Message: "Template description is required"})
	}
	if minutes, ok := asNumber(t["estimatedMinutes"]); !ok || minutes <= 0 {
		errs = append(errs, Issue{Path: "estimatedMinutes", Message: "estimatedMinutes must be a positive number"})
	}

	pillarIDs := validatePillars(t, &errs)
	validateQuestions(t, pillarIDs, &errs, &warns)
	validateRecommendations(t, pillarIDs, &errs)
	validateCopy(t, &errs)

	return Result{Valid: len(errs) == 0, Errors: errs, Warnings: warns}
}

// validatePillars checks the pillars array and returns the set of declared
// pillar ids for referential checks downstream.
func validatePillars(t map[string]any, errs *[]Issue) map[string]bool {
	pillarIDs := make(map[string]bool)

	pillars, ok := t["pillars"].([]any)
	if !ok || len(pillars) == 0 {
		*errs = append(*errs, Issue{Path: "pillars", Message: "Template must have at least one pillar"})
		return pillarIDs
	}

	for i, raw := range pillars {
		pillar, _ := raw.(map[string]any)
		id, _ := pillar["id"].(string)
		switch {
		case id == "":
			*errs = append(*errs, Issue{Path: fmt.Sprintf("pillars[%d].id", i), Message: "Pillar id is required"})
		case pillarIDs[id]:
			*errs = append(*errs, Issue{Path: fmt.Sprintf("pillars[%d].id", i), Message: "Duplicate pillar id: " + id})
		default:
			pillarIDs[id] = true
		}
		if !isNonEmptyString(pillar["name"]) {
			*errs = append(*errs, Issue{Path: fmt.Sprintf("pillars[%d].name", i), Message: "Pillar name is required"})
		}
	}

	return pillarIDs
}

func validateQuestions(t map[string]any, pillarIDs map[string]bool, errs *[]Issue, warns *[]Issue) {
	questions, ok := t["questions"].([]any)
	if !ok || len(questions) == 0 {
		*errs = append(*errs, Issue{Path: "questions", Message: "Template must have at least one question"})
		return
	}

	questionIDs := make(map[string]bool)
	coveredPillars := make(map[string]bool)

	for i, raw := range questions {
		q, _ := raw.(map[string]any)
		id, _ := q["id"].(string)
		switch {
		case id == "":
			*errs = append(*errs, Issue{Path: fmt.Sprintf("questions[%d].id", i), Message: "Question id is required"})
		case questionIDs[id]:
			*errs = append(*errs, Issue{Path: fmt.Sprintf("questions[%d].id", i), Message: "Duplicate question id: " + id})
		default:
			questionIDs[id] = true
		}

		if !isNonEmptyString(q["text"]) {
			*errs = append(*errs, Issue{Path: fmt.Sprintf("questions[%d].text", i), Message: "Question text is required"})
		}
		if !isNonEmptyString(q["category"]) {
			*errs = append(*errs, Issue{Path: fmt.Sprintf("questions[%d].category", i), Message: "Question category is required"})
		}

		// Diagnostic questions must reference a declared pillar and carry
		// at least one option.
		if q["category"] == "diagnostic" {
			pillarID, _ := q["pillarId"].(string)
			switch {
			case pillarID == "":
				*errs = append(*errs, Issue{Path: fmt.Sprintf("questions[%d].pillarId", i), Message: "Diagnostic questions must have a pillarId"})
			case !pillarIDs[pillarID]:
				*errs = append(*errs, Issue{Path: fmt.Sprintf("questions[%d].pillarId", i), Message: "Unknown pillar: " + pillarID})
			default:
				coveredPillars[pillarID] = true
			}

			if options, ok := q["options"].([]any); !ok || len(options) == 0 {
				*errs = append(*errs, Issue{Path: fmt.Sprintf("questions[%d].options", i), Message: "Diagnostic questions must have options"})
			}
		}
	}

	// A pillar with no diagnostic questions is suspect but not fatal.
	for id := range pillarIDs {
		if !coveredPillars[id] {
			*warns = append(*warns, Issue{Path: "questions", Message: fmt.Sprintf("Pillar %q has no questions", id)})
		}
	}
}

func validateRecommendations(t map[string]any, pillarIDs map[string]bool, errs *[]Issue) {
	recs, ok := t["recommendations"].([]any)
	if !ok {
		*errs = append(*errs, Issue{Path: "recommendations", Message: "recommendations must be an array"})
		return
	}

	for i, raw := range recs {
		rec, _ := raw.(map[string]any)
		pillarID, _ := rec["pillarId"].(string)
		switch {
		case pillarID == "":
			*errs = append(*errs, Issue{Path: fmt.Sprintf("recommendations[%d].pillarId", i), Message: "Recommendation pillarId is required"})
		case !pillarIDs[pillarID]:
			*errs = append(*errs, Issue{Path: fmt.Sprintf("recommendations[%d].pillarId", i), Message: "Unknown pillar: " + pillarID})
		}

		if scoreRange, ok := rec["scoreRange"].([]any); !ok || len(scoreRange) != 2 {
			*errs = append(*errs, Issue{Path: fmt.Sprintf("recommendations[%d].scoreRange", i), Message: "scoreRange must be [min, max]"})
		}

		if !isNonEmptyString(rec["headline"]) {
			*errs = append(*errs, Issue{Path: fmt.Sprintf("recommendations[%d].headline", i), Message: "Recommendation headline is required"})
		}
	}
}

func validateCopy(t map[string]any, errs *[]Issue) {
	copySection, ok := t["copy"].(map[string]any)
	if !ok {
		*errs = append(*errs, Issue{Path: "copy", Message: "Template copy is required"})
		return
	}
	if _, ok := copySection["landing"].(map[string]any); !ok {
		*errs = append(*errs, Issue{Path: "copy.landing", Message: "Landing copy is required"})
	}
	if _, ok := copySection["report"].(map[string]any); !ok {
		*errs = append(*errs, Issue{Path: "copy.report", Message: "Report copy is required"})
	}
}

// Value validates an already-typed value (e.g. a hand-built types.Template)
// by round-tripping it through JSON into the untyped form the rule set runs
// over. This keeps one source of truth for the rules regardless of how the
// template was constructed.
func Value(v any) Result {
	raw, err := json.Marshal(v)
	if err != nil {
		return Result{Valid: false, Errors: []Issue{{Path: "", Message: "Template must be an object"}}}
	}
	var candidate any
	if err := json.Unmarshal(raw, &candidate); err != nil {
		return Result{Valid: false, Errors: []Issue{{Path: "", Message: "Template must be an object"}}}
	}
	return Template(candidate)
}

func isNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

// asNumber accepts the numeric kinds produced by the JSON and YAML decoders.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
