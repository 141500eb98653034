// Package report projects a respondent's raw answers into the
// human-readable, pillar-grouped structure the report surfaces render.
package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dotcommander/scorekit/internal/types"
)

// MapAnswersToPillars groups answers by pillar in template-declared order,
// rendering each raw value into a display string per the question's input
// type. Unanswered questions and questions without a pillar are skipped; an
// answer that formats to the empty string is treated as unanswered. Pillars
// that end up with no answers are dropped from the result.
func MapAnswersToPillars(t *types.Template, answers map[string]any) map[string]types.PillarAnswers {
	pillarMap := make(map[string]*types.PillarAnswers, len(t.Pillars))
	for _, pillar := range t.Pillars {
		pillarMap[pillar.ID] = &types.PillarAnswers{
			PillarID:   pillar.ID,
			PillarName: pillar.Name,
		}
	}

	// Order index per question so output ordering never depends on answer
	// map iteration order.
	questionOrder := make(map[string]int, len(t.Questions))
	for i, q := range t.Questions {
		if q.Order != nil {
			questionOrder[q.ID] = *q.Order
		} else {
			questionOrder[q.ID] = i
		}
	}

	for _, question := range t.Questions {
		rawValue, answered := answers[question.ID]
		if !answered {
			continue
		}
		if question.PillarID == "" {
			continue // not tied to a pillar
		}

		// Answered questions may reference a pillar the template never
		// declared; group them anyway rather than dropping the answer.
		pillar, ok := pillarMap[question.PillarID]
		if !ok {
			pillar = &types.PillarAnswers{
				PillarID:   question.PillarID,
				PillarName: question.PillarID,
			}
			pillarMap[question.PillarID] = pillar
		}

		displayAnswer := formatDisplayAnswer(question, rawValue)
		if displayAnswer == "" {
			continue // empty display means "treat as unanswered"
		}

		pillar.Answers = append(pillar.Answers, types.MappedAnswer{
			QuestionID:    question.ID,
			QuestionText:  question.Text,
			PillarID:      question.PillarID,
			PillarName:    pillar.PillarName,
			DisplayAnswer: displayAnswer,
		})
	}

	result := make(map[string]types.PillarAnswers)
	for pillarID, pillar := range pillarMap {
		if len(pillar.Answers) == 0 {
			continue
		}
		sort.SliceStable(pillar.Answers, func(i, j int) bool {
			return questionOrder[pillar.Answers[i].QuestionID] < questionOrder[pillar.Answers[j].QuestionID]
		})
		result[pillarID] = *pillar
	}

	return result
}

// formatDisplayAnswer renders one raw answer value per the question's input
// type. An empty return means the answer should be treated as unanswered.
func formatDisplayAnswer(q types.Question, rawValue any) string {
	switch q.InputType {
	case types.InputRadio, types.InputChoice:
		return formatSingleSelect(q, rawValue)
	case types.InputMultiSelect:
		return formatMultiSelect(q, rawValue)
	case types.InputText:
		if s, ok := rawValue.(string); ok {
			return strings.TrimSpace(s)
		}
		return stringify(rawValue)
	case types.InputNumber, types.InputRange:
		return formatNumeric(rawValue)
	case types.InputSelect:
		if len(q.Options) == 0 {
			return stringify(rawValue)
		}
		id := stringify(rawValue)
		if label, ok := optionLabelByID(q.Options, id); ok {
			return label
		}
		return id
	default:
		if items, ok := rawValue.([]any); ok {
			return joinStringified(items)
		}
		return stringify(rawValue)
	}
}

func formatSingleSelect(q types.Question, rawValue any) string {
	switch rawValue.(type) {
	case float64, int, int64, string:
	default:
		return ""
	}

	if len(q.Options) == 0 {
		return stringify(rawValue)
	}

	if q.InputType == types.InputRadio {
		numeric, ok := toNumber(rawValue)
		if ok {
			for _, opt := range q.Options {
				if opt.IsScored() && *opt.Value == numeric {
					return opt.Label
				}
			}
		}
		return stringify(rawValue)
	}

	// choice: match by option id
	id := stringify(rawValue)
	if label, ok := optionLabelByID(q.Options, id); ok {
		return label
	}
	return id
}

func formatMultiSelect(q types.Question, rawValue any) string {
	ids := toStringSlice(rawValue)
	if len(ids) == 0 {
		return ""
	}
	if len(q.Options) == 0 {
		return strings.Join(ids, ", ")
	}

	var labels []string
	for _, id := range ids {
		if label, ok := optionLabelByID(q.Options, id); ok {
			labels = append(labels, label)
		}
	}
	if len(labels) > 0 {
		return strings.Join(labels, ", ")
	}
	return strings.Join(ids, ", ")
}

func formatNumeric(rawValue any) string {
	switch n := rawValue.(type) {
	case float64, int, int64:
		return stringify(rawValue)
	case string:
		// Non-blank strings pass through as authored, preserving any
		// formatting the respondent typed.
		if trimmed := strings.TrimSpace(n); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func optionLabelByID(options []types.Option, id string) (string, bool) {
	for _, opt := range options {
		if opt.ID == id {
			return opt.Label, true
		}
	}
	return "", false
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// toStringSlice accepts both []string and the []any a JSON decoder produces.
func toStringSlice(v any) []string {
	switch items := v.(type) {
	case []string:
		return items
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, stringify(item))
		}
		return out
	default:
		return nil
	}
}

func joinStringified(items []any) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, stringify(item))
	}
	return strings.Join(parts, ", ")
}

// stringify mirrors loose string conversion: numbers render without a
// trailing ".0", nil renders empty.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
