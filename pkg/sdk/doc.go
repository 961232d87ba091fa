// Package biaslens provides an embeddable Go client for the political-bias
// phrase analysis engine.
//
// The client wires the same lexicon, matcher, and scoring policy the HTTP
// server uses, without any network hop. A Client is safe for concurrent use:
// the lexicon is immutable after load and every Analyze call works on its
// own local state.
//
//	client, err := biaslens.New(biaslens.WithKeywordsFile("data/bias_keywords.json"))
//	if err != nil { ... }
//	report, err := client.Analyze(ctx, "the radical leftist movement grew")
package biaslens
