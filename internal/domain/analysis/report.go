// Package analysis defines the bias analysis result types.
package analysis

// Top-level score categories and resolved labels.
const (
	CategoryLeftWing     = "left_wing"
	CategoryRightWing    = "right_wing"
	CategoryExtremeLeft  = "extreme_left"
	CategoryExtremeRight = "extreme_right"
	CategoryNeutral      = "neutral"

	// LabelMixed is reported when more than one non-extreme category is
	// dominant.
	LabelMixed = "mixed"
	// LabelMixedExtreme is reported by the lenient policy when both
	// extreme categories are dominant.
	LabelMixedExtreme = "mixed extreme"
)

// Categories lists the five score categories in processing order.
var Categories = []string{
	CategoryLeftWing,
	CategoryRightWing,
	CategoryExtremeLeft,
	CategoryExtremeRight,
	CategoryNeutral,
}

// ScoreVector maps each category to a non-negative score. After
// normalization the values sum to 1.0, or stay all-zero when nothing
// matched.
type ScoreVector map[string]float64

// NewScoreVector returns a zero-initialized vector over all categories.
func NewScoreVector() ScoreVector {
	sv := make(ScoreVector, len(Categories))
	for _, c := range Categories {
		sv[c] = 0
	}
	return sv
}

// Max returns the highest score in the vector.
func (sv ScoreVector) Max() float64 {
	var maxScore float64
	for _, s := range sv {
		if s > maxScore {
			maxScore = s
		}
	}
	return maxScore
}

// Sum returns the total of all scores.
func (sv ScoreVector) Sum() float64 {
	var total float64
	for _, s := range sv {
		total += s
	}
	return total
}

// DetectedPhrases maps a category to the phrases matched for it, in
// discovery order. Duplicates are kept; only categories with at least one
// match are present.
type DetectedPhrases map[string][]string

// Report is the result of one analysis. Created fresh per request and
// discarded after the response is sent.
type Report struct {
	text       string
	scores     ScoreVector
	phrases    DetectedPhrases
	label      string
	confidence float64
}

// NewReport creates an analysis report.
func NewReport(
	text string, scores ScoreVector, phrases DetectedPhrases,
	label string, confidence float64,
) Report {
	return Report{
		text:       text,
		scores:     scores,
		phrases:    phrases,
		label:      label,
		confidence: confidence,
	}
}

// Text returns the analyzed input text.
func (r *Report) Text() string { return r.text }

// Scores returns the normalized score vector.
func (r *Report) Scores() ScoreVector { return r.scores }

// Phrases returns the matched phrases per category.
func (r *Report) Phrases() DetectedPhrases { return r.phrases }

// Label returns the overall bias label.
func (r *Report) Label() string { return r.label }

// Confidence returns the confidence in [0, 1].
func (r *Report) Confidence() float64 { return r.confidence }
