package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreQuestion_MultipleChoice(t *testing.T) {
	q := Question{
		ID:   "tech_1",
		Type: MultipleChoice,
		Options: []Option{
			{ID: "a", Value: "a", Score: 0},
			{ID: "b", Value: "b", Score: 100},
		},
	}

	r := ScoreQuestion(q, "b")
	assert.Equal(t, ScoreResult{Score: 100, MaxScore: 100}, r)

	r = ScoreQuestion(q, "a")
	assert.Equal(t, ScoreResult{Score: 0, MaxScore: 100}, r)

	// No matching option scores zero but keeps the max.
	r = ScoreQuestion(q, "c")
	assert.Equal(t, ScoreResult{Score: 0, MaxScore: 100}, r)
}

func TestScoreQuestion_MultipleChoiceNumericValues(t *testing.T) {
	// Options without explicit scores fall back to their numeric values.
	q := Question{
		ID:   "tech_2",
		Type: MultipleChoice,
		Options: []Option{
			{ID: "a", Value: float64(25)},
			{ID: "b", Value: float64(50)},
			{ID: "c", Value: float64(100)},
		},
	}

	r := ScoreQuestion(q, float64(50))
	assert.Equal(t, ScoreResult{Score: 50, MaxScore: 100}, r)
}

func TestScoreQuestion_MultipleChoiceNoOptions(t *testing.T) {
	q := Question{ID: "broken", Type: MultipleChoice}
	assert.Equal(t, ScoreResult{Score: 0, MaxScore: 100}, ScoreQuestion(q, "a"))
}

func TestScoreQuestion_LikertRescale(t *testing.T) {
	q := Question{
		ID:    "psy_1",
		Type:  Likert,
		Scale: &Scale{Min: 1, Max: 7},
	}

	cases := []struct {
		answer float64
		score  float64
	}{
		{1, 0},
		{4, 50},
		{7, 100},
	}
	for _, tc := range cases {
		r := ScoreQuestion(q, tc.answer)
		assert.InDelta(t, tc.score, r.Score, 0.001, "answer %v", tc.answer)
		assert.Equal(t, float64(100), r.MaxScore)
	}
}

func TestScoreQuestion_LikertWithoutScale(t *testing.T) {
	// Historical content without a scale assumed 1-5.
	q := Question{ID: "psy_2", Type: Likert}
	r := ScoreQuestion(q, float64(5))
	assert.Equal(t, ScoreResult{Score: 100, MaxScore: 100}, r)
}

func TestScoreQuestion_DegenerateScale(t *testing.T) {
	q := Question{
		ID:    "psy_3",
		Type:  Likert,
		Scale: &Scale{Min: 4, Max: 4},
	}
	assert.Equal(t, ScoreResult{Score: 0, MaxScore: 100}, ScoreQuestion(q, float64(4)))
}

func TestScoreQuestion_Slider(t *testing.T) {
	scaled := Question{ID: "s1", Type: Slider, Scale: &Scale{Min: 0, Max: 10}}
	r := ScoreQuestion(scaled, float64(5))
	assert.InDelta(t, 50, r.Score, 0.001)

	// No scale: raw passthrough.
	raw := Question{ID: "s2", Type: Slider}
	assert.Equal(t, ScoreResult{Score: 42, MaxScore: 100}, ScoreQuestion(raw, float64(42)))
}

func TestScoreQuestion_Boolean(t *testing.T) {
	q := Question{ID: "b1", Type: Boolean}
	assert.Equal(t, ScoreResult{Score: 100, MaxScore: 100}, ScoreQuestion(q, true))
	assert.Equal(t, ScoreResult{Score: 0, MaxScore: 100}, ScoreQuestion(q, false))
}

func TestScoreQuestion_Text(t *testing.T) {
	q := Question{ID: "t1", Type: Text}
	assert.Equal(t, ScoreResult{Score: 75, MaxScore: 100}, ScoreQuestion(q, "some reflection"))
	assert.Equal(t, ScoreResult{Score: 0, MaxScore: 100}, ScoreQuestion(q, "   "))
	assert.Equal(t, ScoreResult{Score: 0, MaxScore: 100}, ScoreQuestion(q, ""))
}

func TestScoreQuestion_UnknownType(t *testing.T) {
	q := Question{ID: "x1", Type: Scenario}
	assert.Equal(t, ScoreResult{Score: 0, MaxScore: 100}, ScoreQuestion(q, "anything"))
}
