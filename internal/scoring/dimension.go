package scoring

import (
	"math"
	"strings"
)

// Synonym tables mapping canonical dimension names to the content tags that
// count toward them. The tables are deliberately tolerant of inconsistent
// authoring: a question may contribute to several dimensions.
var (
	technicalSynonyms = map[string][]string{
		"logical":   {"logical-thinking", "logical", "reasoning", "problem-solving"},
		"numerical": {"numerical", "math", "mathematics", "calculation"},
		"domain":    {"programming-concepts", "domain", "knowledge", "awareness"},
		"problem":   {"problem-solving", "problem", "solving", "logical-thinking"},
	}

	psychometricSynonyms = map[string][]string{
		"interest":    {"interest", "learning-style", "motivation"},
		"motivation":  {"motivation", "will", "drive"},
		"personality": {"personality", "traits", "character"},
		"cognitive":   {"cognitive", "thinking", "mental", "logical-thinking"},
	}

	wiscarSynonyms = map[string][]string{
		"will":      {"will", "motivation", "perseverance", "drive"},
		"interest":  {"interest", "curiosity", "engagement"},
		"skill":     {"skill", "ability", "competence", "proficiency"},
		"cognitive": {"cognitive", "thinking", "mental", "intellectual"},
		"ability":   {"ability", "capability", "potential", "aptitude"},
		"realWorld": {"real-world", "practical", "application", "alignment"},
	}
)

// aggregateDimension sums question scores over the subset of a section's
// questions tagged for the given synonym list and returns a rounded 0-100
// percentage. Unanswered or unmatched dimensions yield 0.
//
// matchIDSubstring additionally accepts questions whose id merely contains a
// synonym. That looseness came from inconsistently tagged legacy content; it
// stays behind a flag so it can be phased out without a scoring change.
func aggregateDimension(section Section, answers []Answer, synonyms []string, matchIDSubstring bool) int {
	var matched []Question
	for _, q := range section.Questions {
		if questionMatches(q, synonyms, matchIDSubstring) {
			matched = append(matched, q)
		}
	}
	if len(matched) == 0 {
		return 0
	}

	byQuestion := answerIndex(answers)

	var totalScore, totalMax float64
	for _, q := range matched {
		ans, ok := byQuestion[q.ID]
		if !ok {
			continue
		}
		r := ScoreQuestion(q, ans.Value)
		totalScore += r.Score
		totalMax += r.MaxScore
	}

	if totalMax <= 0 {
		return 0
	}
	return int(math.Round(totalScore / totalMax * 100))
}

func questionMatches(q Question, synonyms []string, matchIDSubstring bool) bool {
	for _, target := range synonyms {
		if q.Category == target || q.Subcategory == target {
			return true
		}
		if matchIDSubstring && strings.Contains(q.ID, target) {
			return true
		}
	}
	return false
}

func answerIndex(answers []Answer) map[string]Answer {
	idx := make(map[string]Answer, len(answers))
	for _, a := range answers {
		// First answer wins so duplicated submissions stay deterministic.
		if _, ok := idx[a.QuestionID]; !ok {
			idx[a.QuestionID] = a
		}
	}
	return idx
}
