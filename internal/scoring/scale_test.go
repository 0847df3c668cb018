package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateScaleOptions_DefaultRange(t *testing.T) {
	options := GenerateScaleOptions(1, 7)
	require.Len(t, options, 7)
	assert.Equal(t, "Strongly Disagree", options[0].Label)
	assert.Equal(t, "Neutral", options[3].Label)
	assert.Equal(t, "Strongly Agree", options[6].Label)
	for i, opt := range options {
		assert.Equal(t, i+1, opt.Value)
	}
}

func TestGenerateScaleOptions_OutOfTableValues(t *testing.T) {
	options := GenerateScaleOptions(1, 9)
	require.Len(t, options, 9)
	assert.Equal(t, "Option 8", options[7].Label)
	assert.Equal(t, "Scale option 9", options[8].Description)
}

func TestGenerateScaleOptions_ZeroDefaults(t *testing.T) {
	options := GenerateScaleOptions(0, 0)
	require.Len(t, options, 7)
	assert.Equal(t, 1, options[0].Value)
	assert.Equal(t, 7, options[6].Value)
}

func TestNormalizeQuestion_SliderBecomesLikert(t *testing.T) {
	q := Question{
		ID:    "s1",
		Type:  Slider,
		Scale: &Scale{Min: 1, Max: 7},
	}

	normalized := NormalizeQuestion(q)
	assert.Equal(t, Likert, normalized.Type)
	require.NotNil(t, normalized.Scale)
	assert.Len(t, normalized.Scale.ScaleOptions, 7)
}

func TestNormalizeQuestion_SliderWithoutScaleUntouched(t *testing.T) {
	q := Question{ID: "s2", Type: Slider}
	assert.Equal(t, q, NormalizeQuestion(q))
}

func TestNormalizeQuestion_LikertAlwaysGetsScaleOptions(t *testing.T) {
	q := Question{ID: "l1", Type: Likert}

	normalized := NormalizeQuestion(q)
	require.NotNil(t, normalized.Scale)
	assert.Equal(t, 1, normalized.Scale.Min)
	assert.Equal(t, 7, normalized.Scale.Max)
	require.NotNil(t, normalized.Scale.Labels)
	assert.Equal(t, "Strongly Disagree", normalized.Scale.Labels.Min)
	assert.Len(t, normalized.Scale.ScaleOptions, 7)
}

func TestNormalizeQuestion_OtherTypesUntouched(t *testing.T) {
	q := Question{ID: "m1", Type: MultipleChoice, Options: []Option{{ID: "a", Value: "a"}}}
	assert.Equal(t, q, NormalizeQuestion(q))
}

func TestNormalizeSection(t *testing.T) {
	section := Section{
		ID: "psychometric",
		Questions: []Question{
			{ID: "l1", Type: Likert},
			{ID: "b1", Type: Boolean},
		},
	}

	normalized := NormalizeSection(section)
	require.NotNil(t, normalized.Questions[0].Scale)
	assert.Nil(t, normalized.Questions[1].Scale)
}
