package scoring

import "fmt"

// Defaults applied when a likert question arrives without a scale.
const (
	DefaultScaleMin = 1
	DefaultScaleMax = 7
)

// scaleLabels is the fixed 7-point label table; values outside 1-7 get a
// generic "Option {n}" label.
var scaleLabels = map[int]string{
	1: "Strongly Disagree",
	2: "Disagree",
	3: "Somewhat Disagree",
	4: "Neutral",
	5: "Somewhat Agree",
	6: "Agree",
	7: "Strongly Agree",
}

// GenerateScaleOptions synthesizes a value/label list for every integer step
// of [min,max].
func GenerateScaleOptions(min, max int) []ScaleOption {
	if min == 0 {
		min = DefaultScaleMin
	}
	if max == 0 {
		max = DefaultScaleMax
	}
	options := make([]ScaleOption, 0, max-min+1)
	for i := min; i <= max; i++ {
		label, ok := scaleLabels[i]
		description := label
		if !ok {
			label = fmt.Sprintf("Option %d", i)
			description = fmt.Sprintf("Scale option %d", i)
		}
		options = append(options, ScaleOption{Value: i, Label: label, Description: description})
	}
	return options
}

// NormalizeQuestion prepares a question for presentation: sliders with a
// scale become likert questions, and likert questions are guaranteed a full
// scale with endpoint labels and scaleOptions even when the content store
// omitted them.
func NormalizeQuestion(q Question) Question {
	if q.Type == Slider && q.Scale != nil {
		q.Type = Likert
	}

	if q.Type != Likert {
		return q
	}

	min, max := DefaultScaleMin, DefaultScaleMax
	if q.Scale != nil {
		if q.Scale.Min != 0 {
			min = q.Scale.Min
		}
		if q.Scale.Max != 0 {
			max = q.Scale.Max
		}
	}

	q.Scale = &Scale{
		Min:          min,
		Max:          max,
		Labels:       &ScaleLabels{Min: "Strongly Disagree", Max: "Strongly Agree"},
		ScaleOptions: GenerateScaleOptions(min, max),
	}
	return q
}

// NormalizeSection applies NormalizeQuestion to every question of a section.
func NormalizeSection(s Section) Section {
	questions := make([]Question, len(s.Questions))
	for i, q := range s.Questions {
		questions[i] = NormalizeQuestion(q)
	}
	s.Questions = questions
	return s
}
