package report

import (
	"sort"

	"github.com/dotcommander/scorekit/internal/scoring"
	"github.com/dotcommander/scorekit/internal/template"
	"github.com/dotcommander/scorekit/internal/types"
)

// PillarSummary is one pillar's line in the rendered report.
type PillarSummary struct {
	PillarID       string                `json:"pillarId"`
	Name           string                `json:"name"`
	Score          float64               `json:"score"` // 1-5 average
	Band           string                `json:"band"`
	Recommendation *types.Recommendation `json:"recommendation,omitempty"`
}

// View is the complete report view model consumed by the output formatters
// and the HTTP report endpoint.
type View struct {
	TemplateID   string                          `json:"templateId"`
	TemplateName string                          `json:"templateName"`
	Result       types.ScoringResult             `json:"result"`
	BandIntro    *types.BandIntro                `json:"bandIntro,omitempty"`
	Pillars      []PillarSummary                 `json:"pillars"`
	Answers      map[string]types.PillarAnswers  `json:"answers"`
	NextSteps    []types.NextStep                `json:"nextSteps,omitempty"`
	CTA          *types.ReportCTA                `json:"cta,omitempty"`
}

// Build scores the raw answers and assembles the full report view: overall
// result, band intro copy, per-pillar summaries with recommendations, and
// the pillar-grouped answer projection.
func Build(t *types.Template, rawAnswers map[string]any) View {
	result := scoring.Calculate(t, scoring.DiagnosticAnswers(rawAnswers))

	view := View{
		TemplateID:   t.ID,
		TemplateName: t.Name,
		Result:       result,
		Answers:      MapAnswersToPillars(t, rawAnswers),
		NextSteps:    t.Copy.Report.NextSteps,
		CTA:          t.Copy.Report.CTA,
	}

	if intro, ok := t.Copy.Report.BandIntros[result.Band]; ok {
		view.BandIntro = &intro
	}

	// Pillars in declared display order, with their recommendation looked
	// up by the pillar's percentage-equivalent score.
	pillars := make([]types.Pillar, len(t.Pillars))
	copy(pillars, t.Pillars)
	sort.SliceStable(pillars, func(i, j int) bool { return pillars[i].Order < pillars[j].Order })

	for _, pillar := range pillars {
		score, scored := result.PillarScores[pillar.ID]
		if !scored {
			continue
		}

		percent := score / 5 * 100
		summary := PillarSummary{
			PillarID: pillar.ID,
			Name:     pillar.Name,
			Score:    score,
			Band:     template.BandForScore(t, percent).Name,
		}
		if rec, ok := template.RecommendationFor(t, pillar.ID, percent); ok {
			summary.Recommendation = &rec
		}
		view.Pillars = append(view.Pillars, summary)
	}

	return view
}
