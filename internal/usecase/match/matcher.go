// Package match implements fuzzy phrase matching against free text.
//
// The strategy deliberately trades precision for recall: an exact substring
// hit is cheap and precise, while the per-word fallback with a small fixed
// variant set catches inflected or slightly reworded occurrences without a
// stemming library.
package match

import "strings"

// Phrases reports which candidate phrases are present in text.
//
// Matching is tiered per phrase:
//  1. exact substring of the lowercased text (short-circuits);
//  2. otherwise each phrase word must be satisfied by the text — direct
//     token membership, substring containment in either direction, or one
//     of the ±s/ed/ing variants — and the phrase matches when the fraction
//     of satisfied words reaches threshold.
//
// The returned slice preserves candidate order, not discovery order.
// Phrases are independent of each other; a zero-word phrase never matches.
func Phrases(text string, phrases []string, threshold float64) []string {
	lowered := strings.ToLower(text)
	tokens := strings.Fields(lowered)
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = struct{}{}
	}

	var matches []string
	for _, phrase := range phrases {
		phrase = strings.ToLower(phrase)

		// A zero-word phrase never matches. Checked before the substring
		// tier because every string contains the empty string.
		words := strings.Fields(phrase)
		if len(words) == 0 {
			continue
		}

		if strings.Contains(lowered, phrase) {
			matches = append(matches, phrase)
			continue
		}

		matched := 0
		for _, word := range words {
			if wordInText(word, tokens, tokenSet) {
				matched++
			}
		}

		if float64(matched)/float64(len(words)) >= threshold {
			matches = append(matches, phrase)
		}
	}
	return matches
}

// wordInText reports whether a single phrase word is satisfied by the text,
// in order of preference: token membership, substring containment in either
// direction, then morphological variants against the token set.
func wordInText(word string, tokens []string, tokenSet map[string]struct{}) bool {
	if _, ok := tokenSet[word]; ok {
		return true
	}

	for _, tok := range tokens {
		if strings.Contains(tok, word) || strings.Contains(word, tok) {
			return true
		}
	}

	for _, v := range variants(word) {
		if _, ok := tokenSet[v]; ok {
			return true
		}
	}
	return false
}

// variants returns the fixed set of morphological forms of a word:
// trailing s/ed/ing stripped and appended.
func variants(word string) []string {
	return []string{
		strings.TrimSuffix(word, "s"),
		strings.TrimSuffix(word, "ed"),
		strings.TrimSuffix(word, "ing"),
		word + "s",
		word + "ed",
		word + "ing",
	}
}
