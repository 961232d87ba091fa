// Package policy defines the scoring policy: every weight and threshold the
// scorer and resolver use, collected in one named value.
//
// Two presets exist because the system historically ran two servers with
// divergent constants. "standard" is the canonical behavior; "lenient" is the
// looser variant kept selectable so the discrepancy stays an explicit
// operator choice.
package policy

import (
	"fmt"

	"github.com/kailas-cloud/biaslens/internal/domain"
)

// Preset names accepted by ByName.
const (
	StandardName = "standard"
	LenientName  = "lenient"
)

// DefaultMatchThreshold is the minimum fraction of phrase words that must
// match for the fuzzy fallback to accept a phrase.
const DefaultMatchThreshold = 0.6

// Policy holds the scoring and resolution constants.
// The weight ordering extreme > wing > neutral encodes the intended
// dominance of strong ideological signal and must be preserved.
type Policy struct {
	name string

	extremeWeight float64
	wingWeight    float64
	neutralWeight float64

	// baselineBoost is added once to every category with a nonzero raw
	// score before normalization. Zero disables it.
	baselineBoost float64

	matchThreshold float64

	// dominanceRatio defines the dominant set: categories scoring at least
	// maxScore*dominanceRatio.
	dominanceRatio float64

	extremePrecedence bool

	// suppressNeutral prefers any nonzero non-neutral category over a
	// dominant neutral one.
	suppressNeutral bool

	// labelMixedExtremes reports "mixed extreme" when both extreme
	// categories are dominant instead of picking the higher one.
	labelMixedExtremes bool
}

// Standard returns the canonical policy: 2.0/1.0/0.75 weights, no baseline
// boost, 0.85 dominance ratio, extreme precedence, no neutral suppression.
func Standard() Policy {
	return Policy{
		name:              StandardName,
		extremeWeight:     2.0,
		wingWeight:        1.0,
		neutralWeight:     0.75,
		matchThreshold:    DefaultMatchThreshold,
		dominanceRatio:    0.85,
		extremePrecedence: true,
	}
}

// Lenient returns the high-sensitivity variant: heavier wings, nearly muted
// neutral terms, a flat boost on any matched category, and a 0.5 dominance
// ratio with neutral suppression.
func Lenient() Policy {
	return Policy{
		name:               LenientName,
		extremeWeight:      2.0,
		wingWeight:         1.2,
		neutralWeight:      0.3,
		baselineBoost:      0.5,
		matchThreshold:     DefaultMatchThreshold,
		dominanceRatio:     0.5,
		extremePrecedence:  true,
		suppressNeutral:    true,
		labelMixedExtremes: true,
	}
}

// ByName resolves a preset by name.
func ByName(name string) (Policy, error) {
	switch name {
	case "", StandardName:
		return Standard(), nil
	case LenientName:
		return Lenient(), nil
	default:
		return Policy{}, fmt.Errorf("%w: %q", domain.ErrUnknownPolicy, name)
	}
}

// WithMatchThreshold returns a copy with the fuzzy-match threshold replaced.
// Values outside (0, 1] keep the current threshold.
func (p Policy) WithMatchThreshold(t float64) Policy {
	if t > 0 && t <= 1 {
		p.matchThreshold = t
	}
	return p
}

// Name returns the preset name.
func (p Policy) Name() string { return p.name }

// ExtremeWeight returns the per-match weight for extreme categories.
func (p Policy) ExtremeWeight() float64 { return p.extremeWeight }

// WingWeight returns the per-match weight for wing categories.
func (p Policy) WingWeight() float64 { return p.wingWeight }

// NeutralWeight returns the per-match weight for neutral terms.
func (p Policy) NeutralWeight() float64 { return p.neutralWeight }

// BaselineBoost returns the flat boost applied to nonzero categories.
func (p Policy) BaselineBoost() float64 { return p.baselineBoost }

// MatchThreshold returns the fuzzy phrase-match ratio threshold.
func (p Policy) MatchThreshold() float64 { return p.matchThreshold }

// DominanceRatio returns the dominant-set ratio.
func (p Policy) DominanceRatio() float64 { return p.dominanceRatio }

// ExtremePrecedence reports whether dominant extreme categories win over
// co-dominant wing or neutral categories.
func (p Policy) ExtremePrecedence() bool { return p.extremePrecedence }

// SuppressNeutral reports whether nonzero non-neutral categories are
// preferred over a dominant neutral.
func (p Policy) SuppressNeutral() bool { return p.suppressNeutral }

// LabelMixedExtremes reports whether co-dominant extremes resolve to the
// "mixed extreme" label.
func (p Policy) LabelMixedExtremes() bool { return p.labelMixedExtremes }
