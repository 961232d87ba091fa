package biaslens

import (
	"go.uber.org/zap"

	"github.com/kailas-cloud/biaslens/internal/domain/lexicon"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	keywordsPath string
	lexicon      *lexicon.Lexicon

	policyName     string
	matchThreshold float64

	logger *zap.Logger
}

// WithKeywordsFile loads the keyword dataset from a JSON or YAML file.
func WithKeywordsFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keywordsPath = path
	})
}

// WithLexicon injects an already-built lexicon, bypassing file loading.
// Useful for tests with synthetic keyword sets.
func WithLexicon(lex *lexicon.Lexicon) Option {
	return optionFunc(func(c *clientConfig) {
		c.lexicon = lex
	})
}

// WithPolicy selects a scoring policy preset by name ("standard" or
// "lenient"). Defaults to "standard".
func WithPolicy(name string) Option {
	return optionFunc(func(c *clientConfig) {
		c.policyName = name
	})
}

// WithMatchThreshold overrides the fuzzy phrase-match ratio threshold.
// Values outside (0, 1] are ignored.
func WithMatchThreshold(t float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.matchThreshold = t
	})
}

// WithLogger sets a zap logger for engine debug output.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = logger
	})
}
