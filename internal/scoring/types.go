// Package scoring implements the assessment scoring engine: per-question
// scoring, section aggregation, category/dimension breakdowns, the composite
// recommendation and all derived artifacts (skill gaps, career matches,
// learning path, improvement areas).
//
// The engine is pure: given a definition and a flat answer list it always
// produces the same result, performs no I/O and holds no state between calls.
// Callers may share a single Engine across goroutines.
package scoring

import (
	"encoding/json"
	"strings"
)

// QuestionType is the closed set of supported question kinds. Anything
// outside this set scores as zero contribution rather than failing the run.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	Slider         QuestionType = "slider"
	Boolean        QuestionType = "boolean"
	Scenario       QuestionType = "scenario"
	Text           QuestionType = "text"
	Likert         QuestionType = "likert"
)

// Option is one selectable answer of a multiple-choice question. Value is
// whatever the content store put there (string or number); Score is the
// points awarded when the option is picked. A zero Score falls back to the
// numeric value of Value, matching how content authors encode graded options.
type Option struct {
	ID    string      `json:"id"`
	Text  string      `json:"text"`
	Value interface{} `json:"value"`
	Score float64     `json:"score"`
}

// ScaleOption is a rendered label for one integer step of a likert scale.
type ScaleOption struct {
	Value       int    `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ScaleLabels holds the endpoint labels of a scale.
type ScaleLabels struct {
	Min string `json:"min,omitempty"`
	Max string `json:"max,omitempty"`
}

// Scale is the numeric range of a likert or slider question.
type Scale struct {
	Min          int           `json:"min"`
	Max          int           `json:"max"`
	Labels       *ScaleLabels  `json:"labels,omitempty"`
	ScaleOptions []ScaleOption `json:"scaleOptions,omitempty"`
}

// Question is a single item of an assessment section. Category and
// Subcategory are free-form content tags; dimension aggregation matches them
// against synonym tables, so inconsistent tagging degrades a breakdown but
// never breaks scoring.
type Question struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	Type        QuestionType `json:"type"`
	Category    string       `json:"category"`
	Subcategory string       `json:"subcategory,omitempty"`
	Options     []Option     `json:"options,omitempty"`
	Scale       *Scale       `json:"scale,omitempty"`
	Required    bool         `json:"required"`
	Weight      float64      `json:"weight"`
	OrderIndex  int          `json:"orderIndex"`
}

// Thresholds are the percentage cutoffs for performance tiers.
type Thresholds struct {
	Excellent        float64 `json:"excellent"`
	Good             float64 `json:"good"`
	NeedsImprovement float64 `json:"needsImprovement"`
}

// ScoringConfig is the per-section scoring configuration supplied by the
// content store.
type ScoringConfig struct {
	Algorithm  string      `json:"algorithm,omitempty"`
	Thresholds *Thresholds `json:"thresholds,omitempty"`
}

// Section tags recognized by the composite calculator.
const (
	SectionIntroduction = "introduction"
	SectionPsychometric = "psychometric"
	SectionTechnical    = "technical"
	SectionWiscar       = "wiscar"
	SectionResults      = "results"
)

// Section is a named group of questions sharing a scoring purpose.
type Section struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Weight        int            `json:"weight"`
	OrderIndex    int            `json:"orderIndex"`
	ScoringConfig *ScoringConfig `json:"scoringConfig,omitempty"`
	Questions     []Question     `json:"questions"`
}

// Definition is the immutable assessment template the engine scores against.
type Definition struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Answer is one submitted response. Value's dynamic type depends on the
// referenced question: a number for likert/slider, the option value for
// multiple-choice, a bool for boolean, a string for text.
type Answer struct {
	QuestionID string      `json:"questionId"`
	SectionID  string      `json:"sectionId,omitempty"`
	Value      interface{} `json:"value"`
}

// ScoreResult is a per-question outcome; Score/MaxScore share a unit so the
// ratio is a valid percentage.
type ScoreResult struct {
	Score    float64 `json:"score"`
	MaxScore float64 `json:"maxScore"`
}

// Performance tiers.
const (
	PerformanceExcellent = "excellent"
	PerformanceGood      = "good"
	PerformanceNeedsWork = "needsImprovement"
)

// SectionScore is the aggregate over all answered questions of one section.
type SectionScore struct {
	SectionID   string  `json:"sectionId"`
	Score       float64 `json:"score"`
	MaxScore    float64 `json:"maxScore"`
	Percentage  int     `json:"percentage"`
	Performance string  `json:"performance"`
}

// PsychometricCategories are the diagnostic breakdowns of the psychometric
// section. Growth is a fixed placeholder (no question maps to it).
type PsychometricCategories struct {
	Interest    int `json:"interest"`
	Motivation  int `json:"motivation"`
	Personality int `json:"personality"`
	Cognitive   int `json:"cognitive"`
	Growth      int `json:"growth"`
}

// PsychometricScores is the psychometric section result.
type PsychometricScores struct {
	Overall    int                    `json:"overall"`
	Categories PsychometricCategories `json:"categories"`
}

// TechnicalCategories are the diagnostic breakdowns of the technical section.
type TechnicalCategories struct {
	LogicalReasoning int `json:"logicalReasoning"`
	Numeracy         int `json:"numeracy"`
	DomainKnowledge  int `json:"domainKnowledge"`
	ProblemSolving   int `json:"problemSolving"`
}

// TechnicalScores is the technical section result. CorrectAnswers counts
// multiple-choice questions answered with a positive score.
type TechnicalScores struct {
	Overall        int                 `json:"overall"`
	Categories     TechnicalCategories `json:"categories"`
	CorrectAnswers int                 `json:"correctAnswers"`
	TotalQuestions int                 `json:"totalQuestions"`
}

// WiscarDimensions are the six-factor breakdowns of the WISCAR section.
type WiscarDimensions struct {
	Will      int `json:"will"`
	Interest  int `json:"interest"`
	Skill     int `json:"skill"`
	Cognitive int `json:"cognitive"`
	Ability   int `json:"ability"`
	RealWorld int `json:"realWorld"`
}

// WiscarScores is the WISCAR section result.
type WiscarScores struct {
	Overall    int              `json:"overall"`
	Dimensions WiscarDimensions `json:"dimensions"`
}

// Recommendation verdicts.
const (
	RecommendationYes   = "YES"
	RecommendationMaybe = "MAYBE"
	RecommendationNo    = "NO"
)

// SkillGap names a skill whose measured level falls short of its target.
type SkillGap struct {
	Skill         string `json:"skill"`
	CurrentLevel  int    `json:"currentLevel"`
	RequiredLevel int    `json:"requiredLevel"`
	Priority      string `json:"priority"`
}

// CareerMatch is a role candidate with its derived match score.
type CareerMatch struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	MatchScore   int      `json:"matchScore"`
	Salary       string   `json:"salary"`
	Demand       string   `json:"demand"`
	Requirements []string `json:"requirements"`
}

// LearningStage is one step of the staged learning path.
type LearningStage struct {
	Stage     string   `json:"stage"`
	Duration  string   `json:"duration"`
	Modules   []string `json:"modules"`
	Effort    string   `json:"effort"`
	Completed bool     `json:"completed"`
}

// ImprovementArea carries guidance for a sub-score below its target ceiling.
type ImprovementArea struct {
	Area         string   `json:"area"`
	CurrentScore int      `json:"currentScore"`
	TargetScore  int      `json:"targetScore"`
	Tips         []string `json:"tips"`
	Resources    []string `json:"resources"`
}

// ResultMetadata is attached to a result by the caller; the engine only fills
// AssessmentID so score fields never depend on a clock.
type ResultMetadata struct {
	AssessmentID string `json:"assessmentId"`
	Timestamp    string `json:"timestamp,omitempty"`
}

// Result is the complete composite output handed back for persistence and
// presentation.
type Result struct {
	AssessmentTitle      string             `json:"assessmentTitle"`
	OverallScore         int                `json:"overallScore"`
	ConfidenceScore      int                `json:"confidenceScore"`
	Recommendation       string             `json:"recommendation"`
	RecommendationReason string             `json:"recommendationReason"`
	Psychometric         PsychometricScores `json:"psychometric"`
	Technical            TechnicalScores    `json:"technical"`
	Wiscar               WiscarScores       `json:"wiscar"`
	SectionScores        []SectionScore     `json:"sectionScores"`
	SkillGaps            []SkillGap         `json:"skillGaps"`
	CareerMatches        []CareerMatch      `json:"careerMatches"`
	LearningPath         []LearningStage    `json:"learningPath"`
	ImprovementAreas     []ImprovementArea  `json:"improvementAreas"`
	Metadata             ResultMetadata     `json:"metadata"`
}

// numeric coerces a JSON-decoded answer value to float64.
func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// truthy mirrors the loose boolean coercion of answer payloads.
func truthy(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true")
	default:
		if f, ok := numeric(v); ok {
			return f != 0
		}
	}
	return false
}

// valueEquals compares an answer value against an option value, tolerating
// the string/number mix the content store allows.
func valueEquals(optionValue, answerValue interface{}) bool {
	if optionValue == answerValue {
		return true
	}
	of, ook := numeric(optionValue)
	af, aok := numeric(answerValue)
	if ook && aok {
		return of == af
	}
	os, ook := optionValue.(string)
	as, aok := answerValue.(string)
	return ook && aok && os == as
}
