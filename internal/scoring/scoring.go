// Package scoring computes assessment scores from raw answers. Only
// diagnostic questions contribute; context questions are report material.
package scoring

import (
	"math"

	"github.com/dotcommander/scorekit/internal/template"
	"github.com/dotcommander/scorekit/internal/types"
)

// lowestValue is what an unanswered or unusable diagnostic answer scores as.
// Missing answers are counted at the floor, not excluded, so an incomplete
// response can never score higher than a complete one.
const lowestValue = 1

// maxValuePerQuestion is the top of the diagnostic option scale.
const maxValuePerQuestion = 5

type pillarTotal struct {
	sum   float64
	count int
}

// Calculate scores a respondent's answers against the template. Missing
// answers default to the lowest value; band assignment routes through the
// template's bands so inline thresholds and authored bands cannot diverge.
func Calculate(t *types.Template, answers map[string]float64) types.ScoringResult {
	var total float64
	var scored int
	pillarTotals := make(map[string]*pillarTotal)

	for _, q := range t.Questions {
		if !q.IsDiagnostic() || q.PillarID == "" {
			continue
		}

		value, ok := answers[q.ID]
		if !ok {
			value = lowestValue
		}

		total += value
		scored++

		pt := pillarTotals[q.PillarID]
		if pt == nil {
			pt = &pillarTotal{}
			pillarTotals[q.PillarID] = pt
		}
		pt.sum += value
		pt.count++
	}

	pillarScores := make(map[string]float64, len(pillarTotals))
	for pillarID, pt := range pillarTotals {
		// Average on the 1-5 scale, rounded to one decimal place.
		pillarScores[pillarID] = math.Round(pt.sum/float64(pt.count)*10) / 10
	}

	max := float64(scored * maxValuePerQuestion)
	percentage := 0
	if max > 0 {
		percentage = int(math.Round(total / max * 100))
	}

	return types.ScoringResult{
		Total:        total,
		Max:          max,
		Percentage:   percentage,
		PillarScores: pillarScores,
		Band:         template.BandForScore(t, float64(percentage)).Name,
	}
}

// DiagnosticAnswers extracts the numeric answers from a raw answer map as
// decoded from JSON. Non-numeric values are dropped, which Calculate then
// treats the same as unanswered.
func DiagnosticAnswers(raw map[string]any) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for id, v := range raw {
		switch n := v.(type) {
		case float64:
			out[id] = n
		case int:
			out[id] = float64(n)
		case int64:
			out[id] = float64(n)
		}
	}
	return out
}
