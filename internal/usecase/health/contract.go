package health

// LexiconReader exposes the loaded keyword store for readiness checks.
type LexiconReader interface {
	PhraseCount() int
}
