package scoring

import "math"

// Default performance thresholds used when a section carries no scoringConfig.
var defaultThresholds = Thresholds{Excellent: 80, Good: 60}

// ScoreSection aggregates every answered question of a section into a score,
// percentage and performance tier. Answers referencing questions outside the
// section are ignored; a section with no matching answers scores zero with
// the needsImprovement tier.
func ScoreSection(section Section, answers []Answer) SectionScore {
	result := SectionScore{
		SectionID:   section.ID,
		MaxScore:    100,
		Performance: PerformanceNeedsWork,
	}

	questions := make(map[string]Question, len(section.Questions))
	for _, q := range section.Questions {
		questions[q.ID] = q
	}

	var totalScore, totalMax float64
	answered := false
	for _, a := range answers {
		q, ok := questions[a.QuestionID]
		if !ok {
			continue
		}
		answered = true
		r := ScoreQuestion(q, a.Value)
		totalScore += r.Score
		totalMax += r.MaxScore
	}

	if !answered {
		return result
	}

	result.Score = totalScore
	result.MaxScore = totalMax

	var percentage float64
	if totalMax > 0 {
		percentage = totalScore / totalMax * 100
	}
	result.Percentage = int(math.Round(percentage))
	result.Performance = performanceTier(percentage, section.ScoringConfig)
	return result
}

func performanceTier(percentage float64, cfg *ScoringConfig) string {
	thresholds := defaultThresholds
	if cfg != nil && cfg.Thresholds != nil {
		thresholds = *cfg.Thresholds
	}
	switch {
	case percentage >= thresholds.Excellent:
		return PerformanceExcellent
	case percentage >= thresholds.Good:
		return PerformanceGood
	default:
		return PerformanceNeedsWork
	}
}
