package biaslens

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kailas-cloud/biaslens/internal/domain/analysis"
	"github.com/kailas-cloud/biaslens/internal/domain/lexicon"
	"github.com/kailas-cloud/biaslens/internal/domain/policy"
	logpkg "github.com/kailas-cloud/biaslens/internal/logger"
	analyzeuc "github.com/kailas-cloud/biaslens/internal/usecase/analyze"
)

// Report is the public analysis result type.
type Report = analysis.Report

// Client is the biaslens SDK entry point.
type Client struct {
	lex    *lexicon.Lexicon
	svc    *analyzeuc.Service
	logger *zap.Logger
}

// New creates a Client. A keyword source is required: either
// WithKeywordsFile or WithLexicon.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	lex := cfg.lexicon
	if lex == nil {
		if cfg.keywordsPath == "" {
			return nil, errors.New("biaslens: keyword source required (use WithKeywordsFile or WithLexicon)")
		}
		loaded, err := lexicon.Load(cfg.keywordsPath)
		if err != nil {
			return nil, err
		}
		lex = loaded
	}

	pol, err := policy.ByName(cfg.policyName)
	if err != nil {
		return nil, err
	}
	pol = pol.WithMatchThreshold(cfg.matchThreshold)

	return &Client{
		lex:    lex,
		svc:    analyzeuc.New(lex, pol),
		logger: cfg.logger,
	}, nil
}

// Analyze scores text and resolves an overall bias label.
// Fails with an invalid-input error on empty or whitespace-only text.
func (c *Client) Analyze(ctx context.Context, text string) (Report, error) {
	if c.logger != nil {
		ctx = logpkg.ContextWithLogger(ctx, c.logger)
	}
	return c.svc.Analyze(ctx, text)
}

// Categories returns the top-level category names of the loaded lexicon.
func (c *Client) Categories() []string {
	return c.lex.Categories()
}

// PhraseCount returns the total number of phrases in the loaded lexicon.
func (c *Client) PhraseCount() int {
	return c.lex.PhraseCount()
}
