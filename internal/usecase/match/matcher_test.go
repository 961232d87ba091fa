package match

import (
	"reflect"
	"testing"
)

func TestPhrases_ExactSubstring(t *testing.T) {
	got := Phrases("the radical leftist movement grew", []string{"radical leftist"}, 0.6)
	want := []string{"radical leftist"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPhrases_ExactSubstring_CaseInsensitive(t *testing.T) {
	got := Phrases("The RADICAL Leftist movement grew", []string{"radical leftist"}, 0.6)
	if len(got) != 1 {
		t.Errorf("expected case-insensitive match, got %v", got)
	}
}

func TestPhrases_FuzzyRatioThreshold(t *testing.T) {
	t.Run("two of three words matches", func(t *testing.T) {
		// 2/3 = 0.67 >= 0.6
		got := Phrases("they demand social justice now", []string{"social justice warrior"}, 0.6)
		if len(got) != 1 {
			t.Fatalf("expected match at ratio 0.67, got %v", got)
		}
	})

	t.Run("one of three words does not match", func(t *testing.T) {
		// 1/3 = 0.33 < 0.6
		got := Phrases("they demand social programs now", []string{"social justice warrior"}, 0.6)
		if len(got) != 0 {
			t.Fatalf("expected no match at ratio 0.33, got %v", got)
		}
	})
}

func TestPhrases_SubstringContainment(t *testing.T) {
	// Not an exact phrase hit: word order differs. "wealth" matches
	// directly and the token "taxes" contains the phrase word "tax".
	got := Phrases("heavy taxes on wealth were proposed", []string{"wealth tax"}, 0.6)
	if len(got) != 1 {
		t.Errorf("expected containment match, got %v", got)
	}
}

func TestPhrases_SuffixVariation(t *testing.T) {
	// Inflected occurrence: the phrase word "deregulations" is satisfied by
	// the text token "deregulation".
	got := Phrases("sweeping deregulation followed", []string{"deregulations"}, 0.6)
	if len(got) != 1 {
		t.Errorf("expected inflected match, got %v", got)
	}
}

func TestPhrases_PreservesCandidateOrder(t *testing.T) {
	// "free market" occurs later in the text than "tax cuts" but is listed
	// first; output follows candidate order, not discovery order.
	phrases := []string{"free market", "tax cuts"}
	got := Phrases("tax cuts and a free market", phrases, 0.6)
	want := []string{"free market", "tax cuts"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPhrases_EmptyPhraseNeverMatches(t *testing.T) {
	for _, phrase := range []string{"", "   "} {
		got := Phrases("any text at all", []string{phrase}, 0.6)
		if len(got) != 0 {
			t.Errorf("phrase %q: expected no match, got %v", phrase, got)
		}
	}
}

func TestPhrases_EmptyText(t *testing.T) {
	got := Phrases("", []string{"wealth tax", "free market"}, 0.6)
	if len(got) != 0 {
		t.Errorf("expected no matches in empty text, got %v", got)
	}
}

func TestPhrases_IndependentAcrossPhrases(t *testing.T) {
	// A non-matching phrase must not affect a matching one.
	got := Phrases(
		"the radical leftist movement grew",
		[]string{"free market", "radical leftist", "border security"},
		0.6,
	)
	want := []string{"radical leftist"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPhrases_DuplicateCandidates(t *testing.T) {
	got := Phrases(
		"the radical leftist movement grew",
		[]string{"radical leftist", "radical leftist"},
		0.6,
	)
	if len(got) != 2 {
		t.Errorf("duplicates are not deduplicated: got %v", got)
	}
}

func TestVariants(t *testing.T) {
	got := variants("protest")
	want := []string{"protest", "protest", "protest", "protests", "protested", "protesting"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
