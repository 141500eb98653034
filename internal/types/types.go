// Package types defines the assessment template data model shared across the
// scorekit codebase. This package is at the bottom of the dependency graph and
// should not import any other internal packages to avoid circular dependencies.
package types

// QuestionCategory determines whether a question contributes to scoring.
type QuestionCategory string

const (
	CategoryDiagnostic QuestionCategory = "diagnostic"
	CategoryContext    QuestionCategory = "context"
)

// QuestionType classifies what a question is probing for.
type QuestionType string

// Diagnostic question types (scored) - assess current state.
const (
	TypeMaturity    QuestionType = "maturity"    // scenarios from lowest to highest maturity
	TypeFrequency   QuestionType = "frequency"   // never -> always
	TypeCapability  QuestionType = "capability"  // not at all -> very
	TypeSpecificity QuestionType = "specificity" // yes / no / partial / planned
	TypeHistory     QuestionType = "history"     // prior attempts and outcomes
	TypePriority    QuestionType = "priority"    // choose A or B
)

// Context question types (unscored) - capture pain, history, goals, value.
const (
	TypeDemographics QuestionType = "demographics"
	TypePain         QuestionType = "pain"
	TypeTrigger      QuestionType = "trigger"
	TypeCost         QuestionType = "cost"
	TypeAspiration   QuestionType = "aspiration"
	TypeValue        QuestionType = "value"
)

// InputType determines how a question is rendered and how its raw answer is
// interpreted.
type InputType string

const (
	InputRadio       InputType = "radio"        // single select, scored
	InputSelect      InputType = "select"       // dropdown
	InputMultiSelect InputType = "multi-select" // multiple choice
	InputNumber      InputType = "number"       // numeric input
	InputRange       InputType = "range"        // slider with min/max
	InputText        InputType = "text"         // free text
	InputChoice      InputType = "choice"       // A vs B priority questions
)

// Option is a single answer option. The three authoring shapes (scored,
// unscored, choice) share one struct; Value is set only on scored options and
// Insight only on choice options.
type Option struct {
	Value   *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	Label   string   `json:"label" yaml:"label"`
	Insight string   `json:"insight,omitempty" yaml:"insight,omitempty"`
}

// IsScored reports whether the option carries a numeric score value.
func (o Option) IsScored() bool {
	return o.Value != nil
}

// NumberConfig configures number and range inputs.
type NumberConfig struct {
	Min          *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max          *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Step         *float64 `json:"step,omitempty" yaml:"step,omitempty"`
	Unit         string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	UnitPosition string   `json:"unitPosition,omitempty" yaml:"unitPosition,omitempty"` // prefix or suffix
	Placeholder  string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// Question is the tagged union over the diagnostic and context variants.
// Category is the discriminant: diagnostic questions carry a PillarID and
// scored/choice options; context questions may carry unscored options or a
// NumberConfig.
type Question struct {
	ID           string           `json:"id" yaml:"id"`
	Text         string           `json:"text" yaml:"text"`
	HelpText     string           `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Category     QuestionCategory `json:"category" yaml:"category"`
	QuestionType QuestionType     `json:"questionType" yaml:"questionType"`
	InputType    InputType        `json:"inputType" yaml:"inputType"`
	PillarID     string           `json:"pillarId,omitempty" yaml:"pillarId,omitempty"`
	Options      []Option         `json:"options,omitempty" yaml:"options,omitempty"`
	NumberConfig *NumberConfig    `json:"numberConfig,omitempty" yaml:"numberConfig,omitempty"`
	Weight       float64          `json:"weight,omitempty" yaml:"weight,omitempty"` // default 1
	Required     *bool            `json:"required,omitempty" yaml:"required,omitempty"`
	Order        *int             `json:"order,omitempty" yaml:"order,omitempty"`
	ReportKey    string           `json:"reportKey,omitempty" yaml:"reportKey,omitempty"`
}

// IsDiagnostic reports whether the question contributes to scoring.
func (q Question) IsDiagnostic() bool {
	return q.Category == CategoryDiagnostic
}

// IsContext reports whether the question is unscored report context.
func (q Question) IsContext() bool {
	return q.Category == CategoryContext
}

// Pillar is one diagnostic dimension of the assessment.
type Pillar struct {
	ID               string  `json:"id" yaml:"id"`
	Name             string  `json:"name" yaml:"name"`
	Description      string  `json:"description,omitempty" yaml:"description,omitempty"`
	ShortDescription string  `json:"shortDescription,omitempty" yaml:"shortDescription,omitempty"`
	Icon             string  `json:"icon,omitempty" yaml:"icon,omitempty"`
	Order            int     `json:"order" yaml:"order"`
	Weight           float64 `json:"weight,omitempty" yaml:"weight,omitempty"` // default 1
}

// Band is a qualitative tier assigned from a percentage score.
// MinScore is inclusive; MaxScore is exclusive except for the top band,
// where a score of exactly 100 still resolves to the band.
type Band struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	MinScore    float64 `json:"minScore" yaml:"minScore"`
	MaxScore    float64 `json:"maxScore" yaml:"maxScore"`
	Color       string  `json:"color,omitempty" yaml:"color,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// DefaultBands returns the band set applied to templates that do not declare
// their own. A fresh slice is returned on every call so callers can never
// mutate shared state.
func DefaultBands() []Band {
	return []Band{
		{ID: "starting", Name: "Starting", MinScore: 0, MaxScore: 40, Color: "#ef4444"},
		{ID: "emerging", Name: "Emerging", MinScore: 40, MaxScore: 60, Color: "#f59e0b"},
		{ID: "progressing", Name: "Progressing", MinScore: 60, MaxScore: 80, Color: "#3b82f6"},
		{ID: "leader", Name: "Leader", MinScore: 80, MaxScore: 100, Color: "#22c55e"},
	}
}

// Recommendation is per-pillar report advice, partitioned by score range.
// ScoreRange is [min, max) as a percentage.
type Recommendation struct {
	PillarID   string     `json:"pillarId" yaml:"pillarId"`
	ScoreRange [2]float64 `json:"scoreRange" yaml:"scoreRange"`
	Headline   string     `json:"headline" yaml:"headline"`
	Body       string     `json:"bodyTemplate,omitempty" yaml:"bodyTemplate,omitempty"`
	Actions    []string   `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// BandIntro is the report opening copy for one band.
type BandIntro struct {
	Headline string `json:"headline" yaml:"headline"`
	Intro    string `json:"intro" yaml:"intro"`
}

// NextStep is a single suggested follow-up in the report footer.
type NextStep struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// LandingCopy is the template's landing page copy.
type LandingCopy struct {
	Headline    string `json:"headline" yaml:"headline"`
	Subheadline string `json:"subheadline,omitempty" yaml:"subheadline,omitempty"`
	CTAText     string `json:"ctaText,omitempty" yaml:"ctaText,omitempty"`
}

// ReportCTA is the closing call to action in the report.
type ReportCTA struct {
	Headline   string `json:"headline" yaml:"headline"`
	Body       string `json:"body,omitempty" yaml:"body,omitempty"`
	ButtonText string `json:"buttonText,omitempty" yaml:"buttonText,omitempty"`
	URL        string `json:"url,omitempty" yaml:"url,omitempty"`
}

// ReportCopy is the template's report copy: band intros keyed by band name,
// display labels keyed by pillar id, and closing content.
type ReportCopy struct {
	BandIntros   map[string]BandIntro `json:"bandIntros,omitempty" yaml:"bandIntros,omitempty"`
	PillarLabels map[string]string    `json:"pillarLabels,omitempty" yaml:"pillarLabels,omitempty"`
	NextSteps    []NextStep           `json:"nextSteps,omitempty" yaml:"nextSteps,omitempty"`
	CTA          *ReportCTA           `json:"cta,omitempty" yaml:"cta,omitempty"`
}

// Copy aggregates all authored display strings for a template.
type Copy struct {
	Landing LandingCopy `json:"landing" yaml:"landing"`
	Report  ReportCopy  `json:"report" yaml:"report"`
}

// Template is the aggregate root: the complete, versioned definition of one
// assessment.
type Template struct {
	ID               string           `json:"id" yaml:"id"`
	Version          string           `json:"version" yaml:"version"`
	Name             string           `json:"name" yaml:"name"`
	Description      string           `json:"description" yaml:"description"`
	EstimatedMinutes int              `json:"estimatedMinutes" yaml:"estimatedMinutes"`
	Pillars          []Pillar         `json:"pillars" yaml:"pillars"`
	Questions        []Question       `json:"questions" yaml:"questions"`
	Bands            []Band           `json:"bands,omitempty" yaml:"bands,omitempty"`
	Recommendations  []Recommendation `json:"recommendations" yaml:"recommendations"`
	Copy             Copy             `json:"copy" yaml:"copy"`
}

// ScoringResult is the derived outcome of scoring one respondent's answers.
// Computed fresh per scoring request and never mutated after construction.
type ScoringResult struct {
	Total        float64            `json:"total"`
	Max          float64            `json:"max"`
	Percentage   int                `json:"percentage"`
	PillarScores map[string]float64 `json:"pillarScores"` // 1-5 average, 1 decimal
	Band         string             `json:"band"`
}

// MappedAnswer is one human-readable answer line in the report projection.
type MappedAnswer struct {
	QuestionID    string `json:"questionId"`
	QuestionText  string `json:"questionText"`
	PillarID      string `json:"pillarId"`
	PillarName    string `json:"pillarName"`
	DisplayAnswer string `json:"displayAnswer"`
}

// PillarAnswers groups a respondent's answers under one pillar, in
// template-declared question order.
type PillarAnswers struct {
	PillarID   string         `json:"pillarId"`
	PillarName string         `json:"pillarName"`
	Answers    []MappedAnswer `json:"answers"`
}
