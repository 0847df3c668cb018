package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateDimension_CategoryMatch(t *testing.T) {
	section := Section{
		ID:   "wiscar",
		Type: SectionWiscar,
		Questions: []Question{
			likertQuestion("w1", "will"),
			likertQuestion("w2", "interest"),
		},
	}
	answers := []Answer{
		{QuestionID: "w1", Value: float64(7)},
		{QuestionID: "w2", Value: float64(1)},
	}

	assert.Equal(t, 100, aggregateDimension(section, answers, wiscarSynonyms["will"], false))
	assert.Equal(t, 0, aggregateDimension(section, answers, wiscarSynonyms["interest"], false))
}

func TestAggregateDimension_SubcategoryMatch(t *testing.T) {
	q := likertQuestion("q1", "misc")
	q.Subcategory = "drive"
	section := Section{ID: "wiscar", Questions: []Question{q}}
	answers := []Answer{{QuestionID: "q1", Value: float64(4)}}

	assert.Equal(t, 50, aggregateDimension(section, answers, wiscarSynonyms["will"], false))
}

func TestAggregateDimension_IDSubstringShim(t *testing.T) {
	// Legacy content relies on question ids carrying the dimension name.
	section := Section{
		ID:        "wiscar",
		Questions: []Question{likertQuestion("wiscar_will_3", "untagged")},
	}
	answers := []Answer{{QuestionID: "wiscar_will_3", Value: float64(7)}}

	assert.Equal(t, 100, aggregateDimension(section, answers, wiscarSynonyms["will"], true))
	assert.Equal(t, 0, aggregateDimension(section, answers, wiscarSynonyms["will"], false))
}

func TestAggregateDimension_QuestionInMultipleDimensions(t *testing.T) {
	// "logical-thinking" is a synonym of both logical and problem.
	section := Section{
		ID:        "technical",
		Questions: []Question{likertQuestion("t1", "logical-thinking")},
	}
	answers := []Answer{{QuestionID: "t1", Value: float64(7)}}

	assert.Equal(t, 100, aggregateDimension(section, answers, technicalSynonyms["logical"], false))
	assert.Equal(t, 100, aggregateDimension(section, answers, technicalSynonyms["problem"], false))
}

func TestAggregateDimension_NoMatchedQuestions(t *testing.T) {
	section := Section{
		ID:        "technical",
		Questions: []Question{likertQuestion("t1", "unrelated")},
	}
	answers := []Answer{{QuestionID: "t1", Value: float64(7)}}

	assert.Equal(t, 0, aggregateDimension(section, answers, technicalSynonyms["numerical"], false))
}

func TestAggregateDimension_MatchedButUnanswered(t *testing.T) {
	section := Section{
		ID:        "technical",
		Questions: []Question{likertQuestion("t1", "numerical")},
	}

	assert.Equal(t, 0, aggregateDimension(section, nil, technicalSynonyms["numerical"], false))
}
