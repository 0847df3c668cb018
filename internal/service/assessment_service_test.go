package service

import (
	"encoding/json"
	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/scoring"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSections(t *testing.T) {
	questions := json.RawMessage(`[
		{"id": "psy_1", "type": "likert", "category": "interest", "scale": {"min": 1, "max": 7}},
		{"id": "psy_2", "type": "multiple-choice", "category": "motivation",
		 "options": [{"id": "a", "value": "a", "score": 100}]}
	]`)
	scoringConfig := json.RawMessage(`{"thresholds": {"excellent": 90, "good": 70}}`)

	rows := []model.AssessmentSection{
		{
			SectionID:     "psychometric",
			Title:         "Psychometric",
			Type:          scoring.SectionPsychometric,
			OrderIndex:    1,
			Questions:     questions,
			ScoringConfig: scoringConfig,
		},
		{
			SectionID:  "introduction",
			Type:       scoring.SectionIntroduction,
			OrderIndex: 0,
		},
	}

	sections, err := decodeSections(rows)
	require.NoError(t, err)
	require.Len(t, sections, 2)

	psy := sections[0]
	assert.Equal(t, "psychometric", psy.ID)
	require.Len(t, psy.Questions, 2)
	assert.Equal(t, scoring.Likert, psy.Questions[0].Type)
	assert.Equal(t, 7, psy.Questions[0].Scale.Max)
	require.NotNil(t, psy.ScoringConfig)
	assert.Equal(t, float64(90), psy.ScoringConfig.Thresholds.Excellent)

	intro := sections[1]
	assert.Empty(t, intro.Questions)
	assert.Nil(t, intro.ScoringConfig)
}

func TestDecodeSections_InvalidQuestions(t *testing.T) {
	rows := []model.AssessmentSection{
		{SectionID: "broken", Type: scoring.SectionTechnical, Questions: json.RawMessage(`{"not": "a list"}`)},
	}

	_, err := decodeSections(rows)
	assert.Error(t, err)
}
