package analyze

// PhraseSource provides read-only access to the loaded keyword lists.
// All lists are already lowercased.
type PhraseSource interface {
	ExtremeLeft() []string
	ExtremeRight() []string
	LeftWing() (economic, social []string)
	RightWing() (economic, social []string)
	NeutralTerms() []string
	Categories() []string
}
