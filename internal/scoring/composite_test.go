package scoring

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureDefinition builds the canonical three-section assessment: one
// psychometric likert, one technical multiple-choice, one WISCAR likert.
func fixtureDefinition() Definition {
	return Definition{
		ID:    "platform-career",
		Title: "Platform Career Assessment",
		Sections: []Section{
			{
				ID:         "introduction",
				Type:       SectionIntroduction,
				OrderIndex: 1,
			},
			{
				ID:         "psychometric",
				Type:       SectionPsychometric,
				OrderIndex: 2,
				Questions:  []Question{likertQuestion("psy_1", "interest")},
			},
			{
				ID:         "technical",
				Type:       SectionTechnical,
				OrderIndex: 3,
				Questions: []Question{
					{
						ID:       "tech_1",
						Type:     MultipleChoice,
						Category: "programming-concepts",
						Options: []Option{
							{ID: "a", Value: "a", Score: 0},
							{ID: "b", Value: "b", Score: 100},
						},
					},
				},
			},
			{
				ID:         "wiscar",
				Type:       SectionWiscar,
				OrderIndex: 4,
				Questions:  []Question{likertQuestion("wis_1", "will")},
			},
		},
	}
}

func fixtureAnswers() []Answer {
	return []Answer{
		{QuestionID: "psy_1", Value: float64(7)},
		{QuestionID: "tech_1", Value: "b"},
		{QuestionID: "wis_1", Value: float64(4)},
	}
}

func TestEvaluate_EndToEnd(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	result := engine.Evaluate(fixtureDefinition(), fixtureAnswers())

	assert.Equal(t, 100, result.Psychometric.Overall)
	assert.Equal(t, 100, result.Technical.Overall)
	assert.Equal(t, 50, result.Wiscar.Overall)
	assert.Equal(t, 83, result.OverallScore) // round((100+100+50)/3)
	assert.Equal(t, RecommendationYes, result.Recommendation)
	assert.NotEmpty(t, result.RecommendationReason)

	assert.Equal(t, 100, result.Psychometric.Categories.Interest)
	assert.Equal(t, 75, result.Psychometric.Categories.Growth)
	assert.Equal(t, 100, result.Technical.Categories.DomainKnowledge)
	assert.Equal(t, 50, result.Wiscar.Dimensions.Will)
	assert.Equal(t, 1, result.Technical.CorrectAnswers)
	assert.Equal(t, 1, result.Technical.TotalQuestions)

	require.Len(t, result.SectionScores, 3)
	assert.Equal(t, "psychometric", result.SectionScores[0].SectionID)
	assert.Equal(t, PerformanceExcellent, result.SectionScores[0].Performance)
}

func TestEvaluate_Idempotent(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	def, answers := fixtureDefinition(), fixtureAnswers()

	first := engine.Evaluate(def, answers)
	second := engine.Evaluate(def, answers)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestEvaluate_DeterministicUnderReordering(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	def := fixtureDefinition()
	baseline := engine.Evaluate(def, fixtureAnswers())

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		answers := fixtureAnswers()
		rng.Shuffle(len(answers), func(a, b int) {
			answers[a], answers[b] = answers[b], answers[a]
		})
		assert.Equal(t, baseline, engine.Evaluate(def, answers))
	}
}

func TestEvaluate_UnansweredSection(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	answers := []Answer{
		{QuestionID: "psy_1", Value: float64(7)},
		{QuestionID: "tech_1", Value: "b"},
		// wiscar left unanswered
	}

	result := engine.Evaluate(fixtureDefinition(), answers)

	assert.Equal(t, 0, result.Wiscar.Overall)
	assert.Equal(t, WiscarDimensions{}, result.Wiscar.Dimensions)

	var wiscarSection *SectionScore
	for i := range result.SectionScores {
		if result.SectionScores[i].SectionID == "wiscar" {
			wiscarSection = &result.SectionScores[i]
		}
	}
	require.NotNil(t, wiscarSection)
	assert.Equal(t, 0, wiscarSection.Percentage)
	assert.Equal(t, PerformanceNeedsWork, wiscarSection.Performance)
}

func TestRecommendationPolicy_Boundaries(t *testing.T) {
	strict := PolicyStrict
	assert.Equal(t, RecommendationYes, strict.Verdict(75))
	assert.Equal(t, RecommendationMaybe, strict.Verdict(74))
	assert.Equal(t, RecommendationMaybe, strict.Verdict(60))
	assert.Equal(t, RecommendationNo, strict.Verdict(59))

	legacy := PolicyLegacy
	assert.Equal(t, RecommendationYes, legacy.Verdict(75))
	assert.Equal(t, RecommendationMaybe, legacy.Verdict(50))
	assert.Equal(t, RecommendationNo, legacy.Verdict(49))
}

func TestPolicyByName(t *testing.T) {
	assert.Equal(t, PolicyLegacy, PolicyByName("legacy"))
	assert.Equal(t, PolicyStrict, PolicyByName("strict"))
	assert.Equal(t, PolicyStrict, PolicyByName(""))
	assert.Equal(t, PolicyStrict, PolicyByName("unknown"))
}

func TestEvaluate_LegacyPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = PolicyLegacy
	engine := NewEngine(cfg)

	def := Definition{
		ID: "t",
		Sections: []Section{
			{ID: "psychometric", Type: SectionPsychometric, Questions: []Question{likertQuestion("p1", "interest")}},
			{ID: "technical", Type: SectionTechnical, Questions: []Question{likertQuestion("t1", "logical")}},
			{ID: "wiscar", Type: SectionWiscar, Questions: []Question{likertQuestion("w1", "will")}},
		},
	}
	// 4 on 1-7 is 50% per section: MAYBE under legacy, NO under strict.
	answers := []Answer{
		{QuestionID: "p1", Value: float64(4)},
		{QuestionID: "t1", Value: float64(4)},
		{QuestionID: "w1", Value: float64(4)},
	}

	result := engine.Evaluate(def, answers)
	assert.Equal(t, 50, result.OverallScore)
	assert.Equal(t, RecommendationMaybe, result.Recommendation)

	strict := NewEngine(DefaultConfig()).Evaluate(def, answers)
	assert.Equal(t, RecommendationNo, strict.Recommendation)
}

func TestConfidenceScore_RewardsConsistency(t *testing.T) {
	consistent := confidenceScore(80, 80, 80)
	scattered := confidenceScore(20, 100, 100)

	assert.Greater(t, consistent, scattered)
	assert.GreaterOrEqual(t, consistent, 60)
	assert.LessOrEqual(t, consistent, 95)
	assert.GreaterOrEqual(t, scattered, 60)
	assert.LessOrEqual(t, scattered, 95)
}

func TestConfidenceScore_Clamped(t *testing.T) {
	assert.GreaterOrEqual(t, confidenceScore(0, 0, 0), 60)
	assert.LessOrEqual(t, confidenceScore(100, 100, 100), 95)
}
