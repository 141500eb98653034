package template

import "github.com/dotcommander/scorekit/internal/types"

// DiagnosticQuestions returns the template's scored questions in declared
// order.
func DiagnosticQuestions(t *types.Template) []types.Question {
	var out []types.Question
	for _, q := range t.Questions {
		if q.IsDiagnostic() {
			out = append(out, q)
		}
	}
	return out
}

// ContextQuestions returns the template's unscored questions in declared
// order.
func ContextQuestions(t *types.Template) []types.Question {
	var out []types.Question
	for _, q := range t.Questions {
		if q.IsContext() {
			out = append(out, q)
		}
	}
	return out
}

// QuestionsForPillar returns the diagnostic questions belonging to one
// pillar.
func QuestionsForPillar(t *types.Template, pillarID string) []types.Question {
	var out []types.Question
	for _, q := range DiagnosticQuestions(t) {
		if q.PillarID == pillarID {
			out = append(out, q)
		}
	}
	return out
}

// RecommendationFor returns the first recommendation for the pillar whose
// [min, max) score range contains score. The second return value is false
// when no recommendation matches.
func RecommendationFor(t *types.Template, pillarID string, score float64) (types.Recommendation, bool) {
	for _, rec := range t.Recommendations {
		if rec.PillarID == pillarID && score >= rec.ScoreRange[0] && score < rec.ScoreRange[1] {
			return rec, true
		}
	}
	return types.Recommendation{}, false
}

// BandForScore resolves the band containing score against the template's
// bands, falling back to the default set when the template declares none.
// The top band's upper bound is inclusive at 100; a score that matches no
// band at all resolves to the first band as a last resort.
func BandForScore(t *types.Template, score float64) types.Band {
	bands := t.Bands
	if len(bands) == 0 {
		bands = types.DefaultBands()
	}

	for _, b := range bands {
		if score >= b.MinScore && score < b.MaxScore {
			return b
		}
	}

	if score == 100 {
		return bands[len(bands)-1]
	}

	return bands[0]
}
