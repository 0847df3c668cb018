package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func likertQuestion(id, category string) Question {
	return Question{
		ID:       id,
		Type:     Likert,
		Category: category,
		Scale:    &Scale{Min: 1, Max: 7},
	}
}

func TestScoreSection_AggregatesAnswers(t *testing.T) {
	section := Section{
		ID:   "psychometric",
		Type: SectionPsychometric,
		Questions: []Question{
			likertQuestion("psy_1", "interest"),
			likertQuestion("psy_2", "motivation"),
		},
	}
	answers := []Answer{
		{QuestionID: "psy_1", Value: float64(7)},
		{QuestionID: "psy_2", Value: float64(4)},
	}

	score := ScoreSection(section, answers)
	assert.Equal(t, 75, score.Percentage)
	assert.Equal(t, PerformanceGood, score.Performance)
}

func TestScoreSection_NoAnswers(t *testing.T) {
	section := Section{
		ID:        "technical",
		Type:      SectionTechnical,
		Questions: []Question{likertQuestion("q1", "logical")},
	}

	score := ScoreSection(section, nil)
	assert.Equal(t, 0, score.Percentage)
	assert.Equal(t, PerformanceNeedsWork, score.Performance)
	assert.Equal(t, float64(0), score.Score)
}

func TestScoreSection_IgnoresForeignAnswers(t *testing.T) {
	section := Section{
		ID:        "technical",
		Type:      SectionTechnical,
		Questions: []Question{likertQuestion("q1", "logical")},
	}
	answers := []Answer{
		{QuestionID: "other_section_q", Value: float64(7)},
	}

	score := ScoreSection(section, answers)
	assert.Equal(t, 0, score.Percentage)
	assert.Equal(t, PerformanceNeedsWork, score.Performance)
}

func TestScoreSection_ConfiguredThresholds(t *testing.T) {
	section := Section{
		ID:   "technical",
		Type: SectionTechnical,
		ScoringConfig: &ScoringConfig{
			Thresholds: &Thresholds{Excellent: 90, Good: 70},
		},
		Questions: []Question{likertQuestion("q1", "logical")},
	}

	// 7 on a 1-7 scale is 100%: excellent under the custom cutoffs.
	score := ScoreSection(section, []Answer{{QuestionID: "q1", Value: float64(7)}})
	assert.Equal(t, 100, score.Percentage)
	assert.Equal(t, PerformanceExcellent, score.Performance)

	// 5 is ~67%: below the custom good cutoff even though the default is 60.
	score = ScoreSection(section, []Answer{{QuestionID: "q1", Value: float64(5)}})
	assert.Equal(t, 67, score.Percentage)
	assert.Equal(t, PerformanceNeedsWork, score.Performance)
}

func TestScoreSection_DefaultThresholds(t *testing.T) {
	section := Section{
		ID:        "psychometric",
		Type:      SectionPsychometric,
		Questions: []Question{likertQuestion("q1", "interest")},
	}

	score := ScoreSection(section, []Answer{{QuestionID: "q1", Value: float64(7)}})
	assert.Equal(t, PerformanceExcellent, score.Performance)

	score = ScoreSection(section, []Answer{{QuestionID: "q1", Value: float64(5)}})
	assert.Equal(t, PerformanceGood, score.Performance)
}
