package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultWithScores(overall, technical, logical, domain, numeracy, cognitive, motivation int) *Result {
	r := &Result{OverallScore: overall}
	r.Technical.Overall = technical
	r.Technical.Categories.LogicalReasoning = logical
	r.Technical.Categories.DomainKnowledge = domain
	r.Technical.Categories.Numeracy = numeracy
	r.Psychometric.Overall = technical // only used by the consultant average
	r.Psychometric.Categories.Cognitive = cognitive
	r.Psychometric.Categories.Motivation = motivation
	return r
}

func TestDerive_SkillGaps(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	// Every sub-score above target: no gaps.
	strong := resultWithScores(90, 90, 90, 90, 90, 90, 90)
	engine.derive(strong)
	assert.Empty(t, strong.SkillGaps)

	// Weak technical fundamentals and domain knowledge.
	weak := resultWithScores(50, 55, 80, 40, 70, 75, 70)
	engine.derive(weak)

	skills := make([]string, len(weak.SkillGaps))
	for i, g := range weak.SkillGaps {
		skills[i] = g.Skill
	}
	assert.Contains(t, skills, "Technical Fundamentals")
	assert.Contains(t, skills, "Domain Knowledge")
	assert.NotContains(t, skills, "Problem Solving")

	for _, g := range weak.SkillGaps {
		if g.Skill == "Technical Fundamentals" {
			assert.Equal(t, 55, g.CurrentLevel)
			assert.Equal(t, 70, g.RequiredLevel)
			assert.Equal(t, "high", g.Priority)
		}
	}
}

func TestDerive_CareerMatches(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	r := resultWithScores(85, 85, 85, 85, 85, 85, 85)
	engine.derive(r)

	require.NotEmpty(t, r.CareerMatches)
	byTitle := map[string]CareerMatch{}
	for _, m := range r.CareerMatches {
		byTitle[m.Title] = m
	}

	dev, ok := byTitle["Platform Developer"]
	require.True(t, ok)
	assert.Equal(t, 85, dev.MatchScore)
	assert.Equal(t, "high", dev.Demand)

	// Low scores are raised to the role floor before the minimum check.
	low := resultWithScores(30, 30, 30, 30, 30, 30, 30)
	engine.derive(low)
	byTitle = map[string]CareerMatch{}
	for _, m := range low.CareerMatches {
		byTitle[m.Title] = m
	}
	dev, ok = byTitle["Platform Developer"]
	require.True(t, ok)
	assert.Equal(t, 70, dev.MatchScore)
	assert.Equal(t, "medium", dev.Demand)

	// Technical Consultant has no floor; it disappears below its minimum.
	_, ok = byTitle["Technical Consultant"]
	assert.False(t, ok)
}

func TestDerive_LearningPath(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	stages := func(r *Result) []string {
		engine.derive(r)
		names := make([]string, len(r.LearningPath))
		for i, s := range r.LearningPath {
			names[i] = s.Stage
		}
		return names
	}

	// Foundation is always present.
	assert.Equal(t, []string{"Foundation"}, stages(resultWithScores(10, 10, 0, 0, 0, 0, 0)))

	assert.Equal(t,
		[]string{"Foundation", "Intermediate"},
		stages(resultWithScores(30, 45, 0, 0, 0, 0, 0)))

	assert.Equal(t,
		[]string{"Foundation", "Intermediate", "Advanced", "Certification"},
		stages(resultWithScores(70, 65, 0, 0, 0, 0, 0)))
}

func TestDerive_ImprovementAreas(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	r := resultWithScores(85, 85, 85, 85, 85, 60, 85)
	engine.derive(r)

	require.Len(t, r.ImprovementAreas, 1)
	area := r.ImprovementAreas[0]
	assert.Equal(t, "Cognitive Abilities", area.Area)
	assert.Equal(t, 60, area.CurrentScore)
	assert.Equal(t, 70, area.TargetScore)
	assert.NotEmpty(t, area.Tips)
	assert.NotEmpty(t, area.Resources)
}
