package types

import (
	"encoding/json"
	"testing"
)

func TestOptionIsScored(t *testing.T) {
	v := 3.0
	tests := []struct {
		name   string
		option Option
		want   bool
	}{
		{
			name:   "scored option",
			option: Option{Value: &v, Label: "Sometimes"},
			want:   true,
		},
		{
			name:   "unscored option",
			option: Option{ID: "slow", Label: "Slow decisions"},
			want:   false,
		},
		{
			name:   "choice option with insight",
			option: Option{ID: "speed", Label: "Speed", Insight: "values velocity"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.option.IsScored(); got != tt.want {
				t.Errorf("IsScored() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuestionCategoryPredicates(t *testing.T) {
	diagnostic := Question{ID: "q1", Category: CategoryDiagnostic}
	context := Question{ID: "ctx-role", Category: CategoryContext}

	if !diagnostic.IsDiagnostic() || diagnostic.IsContext() {
		t.Errorf("diagnostic question predicates wrong: IsDiagnostic=%v IsContext=%v",
			diagnostic.IsDiagnostic(), diagnostic.IsContext())
	}
	if !context.IsContext() || context.IsDiagnostic() {
		t.Errorf("context question predicates wrong: IsDiagnostic=%v IsContext=%v",
			context.IsDiagnostic(), context.IsContext())
	}
}

func TestDefaultBandsCoverFullRange(t *testing.T) {
	bands := DefaultBands()
	if len(bands) != 4 {
		t.Fatalf("DefaultBands() returned %d bands, want 4", len(bands))
	}

	if bands[0].MinScore != 0 {
		t.Errorf("first band MinScore = %v, want 0", bands[0].MinScore)
	}
	if bands[len(bands)-1].MaxScore != 100 {
		t.Errorf("last band MaxScore = %v, want 100", bands[len(bands)-1].MaxScore)
	}

	// Contiguous: each band starts where the previous one ends.
	for i := 1; i < len(bands); i++ {
		if bands[i].MinScore != bands[i-1].MaxScore {
			t.Errorf("band %q MinScore = %v, want %v", bands[i].ID, bands[i].MinScore, bands[i-1].MaxScore)
		}
	}

	wantNames := []string{"Starting", "Emerging", "Progressing", "Leader"}
	for i, name := range wantNames {
		if bands[i].Name != name {
			t.Errorf("band[%d].Name = %q, want %q", i, bands[i].Name, name)
		}
	}
}

func TestDefaultBandsReturnsFreshSlice(t *testing.T) {
	first := DefaultBands()
	first[0].Name = "mutated"

	second := DefaultBands()
	if second[0].Name != "Starting" {
		t.Errorf("DefaultBands() shares state across calls: got %q", second[0].Name)
	}
}

func TestQuestionJSONRoundTrip(t *testing.T) {
	v := 5.0
	q := Question{
		ID:           "q1",
		Text:         "How clear is your roadmap?",
		Category:     CategoryDiagnostic,
		QuestionType: TypeMaturity,
		InputType:    InputRadio,
		PillarID:     "leadership",
		Options:      []Option{{Value: &v, Label: "Fully defined"}},
	}

	data, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got Question
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.ID != q.ID || got.PillarID != q.PillarID || got.Category != q.Category {
		t.Errorf("round trip changed identity fields: got %+v", got)
	}
	if len(got.Options) != 1 || !got.Options[0].IsScored() || *got.Options[0].Value != 5 {
		t.Errorf("round trip lost option value: got %+v", got.Options)
	}
	if got.NumberConfig != nil {
		t.Errorf("NumberConfig should stay nil, got %+v", got.NumberConfig)
	}
}
