package scoring

import "strings"

// ScoreQuestion normalizes a single answer against its question definition
// into a score/maxScore pair. It never fails: unknown types, malformed
// questions and degenerate scales all degrade to a zero contribution so a
// submission always yields a complete result.
func ScoreQuestion(q Question, answerValue interface{}) ScoreResult {
	switch q.Type {
	case MultipleChoice:
		return scoreMultipleChoice(q, answerValue)
	case Likert:
		if q.Scale != nil {
			return scoreScaled(q.Scale, answerValue)
		}
		// Content without an explicit scale historically assumed 1-5.
		v, _ := numeric(answerValue)
		return ScoreResult{Score: v * 20, MaxScore: 100}
	case Slider:
		if q.Scale != nil {
			return scoreScaled(q.Scale, answerValue)
		}
		v, _ := numeric(answerValue)
		return ScoreResult{Score: v, MaxScore: 100}
	case Boolean:
		if truthy(answerValue) {
			return ScoreResult{Score: 100, MaxScore: 100}
		}
		return ScoreResult{Score: 0, MaxScore: 100}
	case Text:
		// Presence proxy, not a correctness judgment.
		if s, ok := answerValue.(string); ok && strings.TrimSpace(s) != "" {
			return ScoreResult{Score: 75, MaxScore: 100}
		}
		return ScoreResult{Score: 0, MaxScore: 100}
	}
	return ScoreResult{Score: 0, MaxScore: 100}
}

func scoreMultipleChoice(q Question, answerValue interface{}) ScoreResult {
	if len(q.Options) == 0 {
		return ScoreResult{Score: 0, MaxScore: 100}
	}

	var score float64
	for _, opt := range q.Options {
		if valueEquals(opt.Value, answerValue) {
			score = optionScore(opt)
			break
		}
	}

	var maxScore float64
	for _, opt := range q.Options {
		if s := optionScore(opt); s > maxScore {
			maxScore = s
		}
	}

	return ScoreResult{Score: score, MaxScore: maxScore}
}

// optionScore prefers the explicit score; a zero score falls back to the
// option value when that value is numeric.
func optionScore(opt Option) float64 {
	if opt.Score != 0 {
		return opt.Score
	}
	if v, ok := numeric(opt.Value); ok {
		return v
	}
	return 0
}

// scoreScaled rescales the raw answer from [min,max] to [0,100]. A
// degenerate scale (max == min) scores zero instead of propagating NaN.
func scoreScaled(scale *Scale, answerValue interface{}) ScoreResult {
	if scale.Max == scale.Min {
		return ScoreResult{Score: 0, MaxScore: 100}
	}
	v, ok := numeric(answerValue)
	if !ok {
		return ScoreResult{Score: 0, MaxScore: 100}
	}
	normalized := (v - float64(scale.Min)) / float64(scale.Max-scale.Min) * 100
	return ScoreResult{Score: normalized, MaxScore: 100}
}
