// Package analyze scores free text against the bias lexicon and resolves an
// overall label.
package analyze

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/biaslens/internal/domain"
	"github.com/kailas-cloud/biaslens/internal/domain/analysis"
	"github.com/kailas-cloud/biaslens/internal/domain/policy"
	"github.com/kailas-cloud/biaslens/internal/logger"
	"github.com/kailas-cloud/biaslens/internal/usecase/match"
)

// Service is the bias analysis engine. It holds no mutable state: the
// lexicon is read-only and every call allocates its own scores and phrase
// lists, so concurrent Analyze calls need no coordination.
type Service struct {
	lex PhraseSource
	pol policy.Policy
}

// New creates an analysis service.
func New(lex PhraseSource, pol policy.Policy) *Service {
	return &Service{lex: lex, pol: pol}
}

// Policy returns the active scoring policy.
func (s *Service) Policy() policy.Policy { return s.pol }

// Categories returns the top-level category names of the lexicon.
func (s *Service) Categories() []string { return s.lex.Categories() }

// Analyze scores text against all keyword lists and resolves the overall
// bias label. Empty or whitespace-only text fails with
// domain.ErrInvalidInput before any scoring.
func (s *Service) Analyze(ctx context.Context, text string) (analysis.Report, error) {
	if strings.TrimSpace(text) == "" {
		return analysis.Report{}, domain.ErrInvalidInput
	}

	scores, phrases := s.score(ctx, text)
	label, confidence := s.resolve(scores)

	return analysis.NewReport(text, scores, phrases, label, confidence), nil
}

// score accumulates weighted match counts per category and normalizes the
// vector to a distribution. Extreme lists are processed first, then wings
// (economic and social fold into one wing score), then neutral terms; the
// order only affects log readability since normalization happens after all
// categories are accumulated.
func (s *Service) score(
	ctx context.Context, text string,
) (analysis.ScoreVector, analysis.DetectedPhrases) {
	log := logger.FromContext(ctx)
	threshold := s.pol.MatchThreshold()

	scores := analysis.NewScoreVector()
	phrases := make(analysis.DetectedPhrases)

	record := func(category string, weight float64, lists ...[]string) {
		for _, list := range lists {
			found := match.Phrases(text, list, threshold)
			if len(found) == 0 {
				continue
			}
			log.Debug("phrase matches",
				zap.String("category", category),
				zap.Int("count", len(found)),
				zap.Strings("phrases", found),
			)
			scores[category] += float64(len(found)) * weight
			phrases[category] = append(phrases[category], found...)
		}
	}

	record(analysis.CategoryExtremeRight, s.pol.ExtremeWeight(), s.lex.ExtremeRight())
	record(analysis.CategoryExtremeLeft, s.pol.ExtremeWeight(), s.lex.ExtremeLeft())

	leftEco, leftSoc := s.lex.LeftWing()
	record(analysis.CategoryLeftWing, s.pol.WingWeight(), leftEco, leftSoc)

	rightEco, rightSoc := s.lex.RightWing()
	record(analysis.CategoryRightWing, s.pol.WingWeight(), rightEco, rightSoc)

	record(analysis.CategoryNeutral, s.pol.NeutralWeight(), s.lex.NeutralTerms())

	if boost := s.pol.BaselineBoost(); boost > 0 {
		for category, score := range scores {
			if score > 0 {
				scores[category] = score + boost
			}
		}
	}

	if total := scores.Sum(); total > 0 {
		for category := range scores {
			scores[category] /= total
		}
	}

	return scores, phrases
}

// resolve selects the overall label and confidence from a normalized score
// vector.
func (s *Service) resolve(scores analysis.ScoreVector) (string, float64) {
	maxScore := scores.Max()
	if maxScore == 0 {
		return analysis.CategoryNeutral, 0.0
	}

	// Dominant set: categories within the policy's band of the maximum.
	dominanceThreshold := maxScore * s.pol.DominanceRatio()
	dominant := make(map[string]bool, len(scores))
	for category, score := range scores {
		if score >= dominanceThreshold {
			dominant[category] = true
		}
	}

	if s.pol.ExtremePrecedence() {
		if label, confidence, ok := s.resolveExtremes(scores, dominant, maxScore); ok {
			return label, confidence
		}
	}

	if s.pol.SuppressNeutral() {
		return s.resolveSuppressingNeutral(scores, dominant, maxScore)
	}

	if countDominant(dominant) > 1 {
		return analysis.LabelMixed, maxScore
	}

	for category := range dominant {
		return category, maxScore
	}
	return analysis.CategoryNeutral, 0.0 // unreachable: maxScore > 0
}

// resolveExtremes applies extreme-category precedence: whenever an extreme
// category is dominant it wins over co-dominant wing or neutral categories.
func (s *Service) resolveExtremes(
	scores analysis.ScoreVector, dominant map[string]bool, maxScore float64,
) (string, float64, bool) {
	domLeft := dominant[analysis.CategoryExtremeLeft]
	domRight := dominant[analysis.CategoryExtremeRight]
	if !domLeft && !domRight {
		return "", 0, false
	}

	if s.pol.LabelMixedExtremes() {
		if domLeft && domRight {
			return analysis.LabelMixedExtreme, maxScore, true
		}
		// Lenient confidence is always the maximum score.
		winner := pickHigher(scores, analysis.CategoryExtremeLeft, analysis.CategoryExtremeRight)
		return winner, maxScore, true
	}

	// Standard: among dominant extremes pick the higher score and report it
	// as the confidence.
	switch {
	case domLeft && domRight:
		winner := pickHigher(scores, analysis.CategoryExtremeLeft, analysis.CategoryExtremeRight)
		return winner, scores[winner], true
	case domLeft:
		return analysis.CategoryExtremeLeft, scores[analysis.CategoryExtremeLeft], true
	default:
		return analysis.CategoryExtremeRight, scores[analysis.CategoryExtremeRight], true
	}
}

// resolveSuppressingNeutral prefers any nonzero non-neutral category over a
// dominant neutral one, falling back through progressively wider pools.
func (s *Service) resolveSuppressingNeutral(
	scores analysis.ScoreVector, dominant map[string]bool, maxScore float64,
) (string, float64) {
	isExtreme := func(c string) bool {
		return c == analysis.CategoryExtremeLeft || c == analysis.CategoryExtremeRight
	}

	if dominant[analysis.CategoryNeutral] {
		if winner, ok := argmax(scores, func(c string) bool {
			return scores[c] > 0 && c != analysis.CategoryNeutral && !isExtreme(c)
		}); ok {
			return winner, maxScore
		}
	}

	if winner, ok := argmax(scores, func(c string) bool {
		return scores[c] > 0 && c != analysis.CategoryNeutral
	}); ok {
		return winner, maxScore
	}

	winner, _ := argmax(scores, func(string) bool { return true })
	return winner, maxScore
}

// countDominant counts dominant categories.
func countDominant(dominant map[string]bool) int {
	n := 0
	for _, d := range dominant {
		if d {
			n++
		}
	}
	return n
}

// pickHigher returns whichever of a and b scores higher, preferring a on a
// tie.
func pickHigher(scores analysis.ScoreVector, a, b string) string {
	if scores[b] > scores[a] {
		return b
	}
	return a
}

// argmax returns the highest-scoring category among those passing keep.
// Iterates analysis.Categories for deterministic tie-breaking.
func argmax(scores analysis.ScoreVector, keep func(string) bool) (string, bool) {
	var winner string
	best := -1.0
	for _, category := range analysis.Categories {
		if !keep(category) {
			continue
		}
		if scores[category] > best {
			best = scores[category]
			winner = category
		}
	}
	return winner, winner != ""
}
