package scoring

import (
	"math"
)

// RecommendationPolicy maps an overall score to a verdict. Two policies
// shipped over the product's life; both stay selectable so result history
// can be recomputed under either.
type RecommendationPolicy struct {
	Name           string `json:"name" mapstructure:"name"`
	YesThreshold   int    `json:"yesThreshold" mapstructure:"yes_threshold"`
	MaybeThreshold int    `json:"maybeThreshold" mapstructure:"maybe_threshold"`
}

var (
	// PolicyStrict is the current three-tier rule: >=75 YES, >=60 MAYBE.
	PolicyStrict = RecommendationPolicy{Name: "strict", YesThreshold: 75, MaybeThreshold: 60}
	// PolicyLegacy is the earlier two-boundary rule: >=75 YES, >=50 MAYBE.
	PolicyLegacy = RecommendationPolicy{Name: "legacy", YesThreshold: 75, MaybeThreshold: 50}
)

// PolicyByName resolves a configured policy name, defaulting to strict.
func PolicyByName(name string) RecommendationPolicy {
	if name == PolicyLegacy.Name {
		return PolicyLegacy
	}
	return PolicyStrict
}

func (p RecommendationPolicy) Verdict(overall int) string {
	switch {
	case overall >= p.YesThreshold:
		return RecommendationYes
	case overall >= p.MaybeThreshold:
		return RecommendationMaybe
	default:
		return RecommendationNo
	}
}

// recommendationReasons are the fixed per-verdict templates persisted next to
// the verdict.
var recommendationReasons = map[string]string{
	RecommendationYes:   "You show excellent alignment across all assessment dimensions, indicating strong potential for success in this field.",
	RecommendationMaybe: "You have good potential but may need to strengthen certain areas before pursuing this career path.",
	RecommendationNo:    "Based on your current profile, other career paths might be a better fit for your interests and skills.",
}

// Config tunes the engine. Thresholds and catalogues are data, not code, so
// assessment designers can adjust them without a release.
type Config struct {
	Policy RecommendationPolicy
	// MatchIDSubstring keeps the legacy id-substring dimension matching
	// alive for content that predates consistent category tagging.
	MatchIDSubstring bool
	// GrowthScore is the fixed psychometric growth placeholder; no question
	// maps to it by design.
	GrowthScore int

	SkillGapRules    []SkillGapRule
	CareerTemplates  []CareerTemplate
	LearningStages   []LearningStageRule
	ImprovementRules []ImprovementRule
}

// DefaultConfig returns the engine configuration with the standard catalogues.
func DefaultConfig() Config {
	return Config{
		Policy:           PolicyStrict,
		MatchIDSubstring: true,
		GrowthScore:      75,
		SkillGapRules:    defaultSkillGapRules,
		CareerTemplates:  defaultCareerTemplates,
		LearningStages:   defaultLearningStages,
		ImprovementRules: defaultImprovementRules,
	}
}

// Engine is the stateless scoring engine. The zero value is not usable;
// construct with NewEngine.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Policy reports the active recommendation policy.
func (e *Engine) Policy() RecommendationPolicy {
	return e.cfg.Policy
}

// Evaluate scores a full submission against a definition. It is deterministic:
// identical inputs produce identical results regardless of answer order.
func (e *Engine) Evaluate(def Definition, answers []Answer) Result {
	result := Result{
		AssessmentTitle: def.Title,
		Psychometric: PsychometricScores{
			Categories: PsychometricCategories{Growth: e.cfg.GrowthScore},
		},
		Metadata: ResultMetadata{AssessmentID: def.ID},
	}

	for _, section := range def.Sections {
		if section.Type == SectionIntroduction {
			continue
		}

		sectionAnswers := filterSectionAnswers(section, answers)
		score := ScoreSection(section, sectionAnswers)
		result.SectionScores = append(result.SectionScores, score)

		switch section.Type {
		case SectionPsychometric:
			result.Psychometric = e.psychometricScores(section, sectionAnswers, score)
		case SectionTechnical:
			result.Technical = e.technicalScores(section, sectionAnswers, score)
		case SectionWiscar:
			result.Wiscar = e.wiscarScores(section, sectionAnswers, score)
		}
	}

	result.OverallScore = roundInt(float64(result.Psychometric.Overall+result.Technical.Overall+result.Wiscar.Overall) / 3)
	result.Recommendation = e.cfg.Policy.Verdict(result.OverallScore)
	result.RecommendationReason = recommendationReasons[result.Recommendation]
	result.ConfidenceScore = confidenceScore(result.Psychometric.Overall, result.Technical.Overall, result.Wiscar.Overall)

	e.derive(&result)
	return result
}

func filterSectionAnswers(section Section, answers []Answer) []Answer {
	ids := make(map[string]bool, len(section.Questions))
	for _, q := range section.Questions {
		ids[q.ID] = true
	}
	var filtered []Answer
	for _, a := range answers {
		if ids[a.QuestionID] {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func (e *Engine) psychometricScores(section Section, answers []Answer, score SectionScore) PsychometricScores {
	s := PsychometricScores{
		Categories: PsychometricCategories{Growth: e.cfg.GrowthScore},
	}
	if len(answers) == 0 {
		return s
	}
	s.Overall = score.Percentage
	s.Categories.Interest = e.dimension(section, answers, psychometricSynonyms["interest"])
	s.Categories.Motivation = e.dimension(section, answers, psychometricSynonyms["motivation"])
	s.Categories.Personality = e.dimension(section, answers, psychometricSynonyms["personality"])
	s.Categories.Cognitive = e.dimension(section, answers, psychometricSynonyms["cognitive"])
	return s
}

func (e *Engine) technicalScores(section Section, answers []Answer, score SectionScore) TechnicalScores {
	s := TechnicalScores{TotalQuestions: len(section.Questions)}
	if len(answers) == 0 {
		return s
	}
	s.Overall = score.Percentage
	s.Categories.LogicalReasoning = e.dimension(section, answers, technicalSynonyms["logical"])
	s.Categories.Numeracy = e.dimension(section, answers, technicalSynonyms["numerical"])
	s.Categories.DomainKnowledge = e.dimension(section, answers, technicalSynonyms["domain"])
	s.Categories.ProblemSolving = e.dimension(section, answers, technicalSynonyms["problem"])

	questions := make(map[string]Question, len(section.Questions))
	for _, q := range section.Questions {
		questions[q.ID] = q
	}
	for _, a := range answers {
		q, ok := questions[a.QuestionID]
		if !ok || q.Type != MultipleChoice {
			continue
		}
		if r := ScoreQuestion(q, a.Value); r.Score > 0 {
			s.CorrectAnswers++
		}
	}
	return s
}

func (e *Engine) wiscarScores(section Section, answers []Answer, score SectionScore) WiscarScores {
	s := WiscarScores{}
	if len(answers) == 0 {
		return s
	}
	s.Overall = score.Percentage
	s.Dimensions.Will = e.dimension(section, answers, wiscarSynonyms["will"])
	s.Dimensions.Interest = e.dimension(section, answers, wiscarSynonyms["interest"])
	s.Dimensions.Skill = e.dimension(section, answers, wiscarSynonyms["skill"])
	s.Dimensions.Cognitive = e.dimension(section, answers, wiscarSynonyms["cognitive"])
	s.Dimensions.Ability = e.dimension(section, answers, wiscarSynonyms["ability"])
	s.Dimensions.RealWorld = e.dimension(section, answers, wiscarSynonyms["realWorld"])
	return s
}

func (e *Engine) dimension(section Section, answers []Answer, synonyms []string) int {
	return aggregateDimension(section, answers, synonyms, e.cfg.MatchIDSubstring)
}

// confidenceScore blends a step table keyed off the overall score with a
// consistency bonus: the closer the three section scores sit to their mean,
// the higher the confidence. Clamped to [60,95].
func confidenceScore(psychometric, technical, wiscar int) int {
	scores := []float64{float64(psychometric), float64(technical), float64(wiscar)}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := math.Round(sum / float64(len(scores)))

	var variance float64
	for _, s := range scores {
		variance += (s - mean) * (s - mean)
	}
	variance /= float64(len(scores))
	consistency := math.Max(0, 100-math.Sqrt(variance))

	base := 60.0
	switch {
	case mean >= 80:
		base = 95
	case mean >= 70:
		base = 85
	case mean >= 60:
		base = 75
	case mean >= 40:
		base = 65
	}

	adjusted := math.Round((base + consistency) / 2)
	return int(math.Min(95, math.Max(60, adjusted)))
}

func roundInt(f float64) int {
	return int(math.Round(f))
}
