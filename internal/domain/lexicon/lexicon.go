// Package lexicon holds the political-bias keyword dataset.
//
// The dataset is loaded once at process start, normalized to lowercase, and
// immutable afterwards. All lookups are pure reads, so a single Lexicon may
// be shared across concurrent analyses without coordination.
package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/biaslens/internal/domain"
)

// Top-level category names as exposed by the categories endpoint.
// The order is fixed and matches the dataset schema.
var categoryNames = []string{
	"extreme_left",
	"extreme_right",
	"left_wing",
	"right_wing",
	"neutral_terms",
}

// Lexicon is the read-only keyword store.
type Lexicon struct {
	extremeLeft   []string
	extremeRight  []string
	leftEconomic  []string
	leftSocial    []string
	rightEconomic []string
	rightSocial   []string
	neutral       []string
}

// New builds a Lexicon from raw phrase lists, normalizing every phrase to
// lowercase. Intended for tests and embedders that inject synthetic sets;
// services load from a dataset file via Load.
func New(
	extremeLeft, extremeRight,
	leftEconomic, leftSocial,
	rightEconomic, rightSocial,
	neutral []string,
) *Lexicon {
	return &Lexicon{
		extremeLeft:   normalize(extremeLeft),
		extremeRight:  normalize(extremeRight),
		leftEconomic:  normalize(leftEconomic),
		leftSocial:    normalize(leftSocial),
		rightEconomic: normalize(rightEconomic),
		rightSocial:   normalize(rightSocial),
		neutral:       normalize(neutral),
	}
}

// ExtremeLeft returns the extreme_left phrase list.
func (l *Lexicon) ExtremeLeft() []string { return l.extremeLeft }

// ExtremeRight returns the extreme_right phrase list.
func (l *Lexicon) ExtremeRight() []string { return l.extremeRight }

// LeftWing returns the left_wing economic and social phrase lists.
func (l *Lexicon) LeftWing() (economic, social []string) {
	return l.leftEconomic, l.leftSocial
}

// RightWing returns the right_wing economic and social phrase lists.
func (l *Lexicon) RightWing() (economic, social []string) {
	return l.rightEconomic, l.rightSocial
}

// NeutralTerms returns the neutral_terms phrase list.
func (l *Lexicon) NeutralTerms() []string { return l.neutral }

// Categories returns the top-level category names in dataset order.
func (l *Lexicon) Categories() []string {
	out := make([]string, len(categoryNames))
	copy(out, categoryNames)
	return out
}

// PhraseCount returns the total number of phrases across all lists.
func (l *Lexicon) PhraseCount() int {
	return len(l.extremeLeft) + len(l.extremeRight) +
		len(l.leftEconomic) + len(l.leftSocial) +
		len(l.rightEconomic) + len(l.rightSocial) +
		len(l.neutral)
}

// dataset mirrors the on-disk schema. JSON is canonical; YAML uses the same
// field names.
type dataset struct {
	ExtremeLeft  *extremeList `json:"extreme_left" yaml:"extreme_left"`
	ExtremeRight *extremeList `json:"extreme_right" yaml:"extreme_right"`
	LeftWing     *wingLists   `json:"left_wing" yaml:"left_wing"`
	RightWing    *wingLists   `json:"right_wing" yaml:"right_wing"`
	NeutralTerms []string     `json:"neutral_terms" yaml:"neutral_terms"`
}

type extremeList struct {
	Keywords []string `json:"keywords" yaml:"keywords"`
}

type wingLists struct {
	Economic []string `json:"economic" yaml:"economic"`
	Social   []string `json:"social" yaml:"social"`
}

// Load reads and validates a keyword dataset file. The format is selected by
// extension: .yaml/.yml is parsed as YAML, everything else as JSON. All
// failures wrap domain.ErrDataLoad.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrDataLoad, path, err)
	}

	var ds dataset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &ds)
	default:
		err = json.Unmarshal(data, &ds)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrDataLoad, path, err)
	}

	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDataLoad, path, err)
	}

	return New(
		ds.ExtremeLeft.Keywords, ds.ExtremeRight.Keywords,
		ds.LeftWing.Economic, ds.LeftWing.Social,
		ds.RightWing.Economic, ds.RightWing.Social,
		ds.NeutralTerms,
	), nil
}

func (ds *dataset) validate() error {
	if ds.ExtremeLeft == nil {
		return fmt.Errorf("missing category %q", "extreme_left")
	}
	if ds.ExtremeRight == nil {
		return fmt.Errorf("missing category %q", "extreme_right")
	}
	if ds.LeftWing == nil {
		return fmt.Errorf("missing category %q", "left_wing")
	}
	if ds.RightWing == nil {
		return fmt.Errorf("missing category %q", "right_wing")
	}
	if ds.NeutralTerms == nil {
		return fmt.Errorf("missing category %q", "neutral_terms")
	}

	lists := map[string][]string{
		"extreme_left.keywords":  ds.ExtremeLeft.Keywords,
		"extreme_right.keywords": ds.ExtremeRight.Keywords,
		"left_wing.economic":     ds.LeftWing.Economic,
		"left_wing.social":       ds.LeftWing.Social,
		"right_wing.economic":    ds.RightWing.Economic,
		"right_wing.social":      ds.RightWing.Social,
		"neutral_terms":          ds.NeutralTerms,
	}
	for name, phrases := range lists {
		for i, p := range phrases {
			if strings.TrimSpace(p) == "" {
				return fmt.Errorf("empty phrase at %s[%d]", name, i)
			}
		}
	}
	return nil
}

// normalize lowercases and trims every phrase, copying the input.
func normalize(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
