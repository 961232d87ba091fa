package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kailas-cloud/biaslens/internal/domain"
)

const validJSON = `{
  "extreme_left": {"keywords": ["Radical Leftist"]},
  "extreme_right": {"keywords": ["white nationalist"]},
  "left_wing": {
    "economic": ["Wealth Tax", " living wage "],
    "social": ["social justice warrior"]
  },
  "right_wing": {
    "economic": ["free market"],
    "social": ["border security"]
  },
  "neutral_terms": ["Bipartisan"]
}`

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestLoad_JSON(t *testing.T) {
	lex, err := Load(writeDataset(t, "keywords.json", validJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := lex.ExtremeLeft(); !reflect.DeepEqual(got, []string{"radical leftist"}) {
		t.Errorf("extreme_left not lowercased: %v", got)
	}
	eco, soc := lex.LeftWing()
	if !reflect.DeepEqual(eco, []string{"wealth tax", "living wage"}) {
		t.Errorf("left_wing.economic not normalized: %v", eco)
	}
	if !reflect.DeepEqual(soc, []string{"social justice warrior"}) {
		t.Errorf("left_wing.social: %v", soc)
	}
	if got := lex.NeutralTerms(); !reflect.DeepEqual(got, []string{"bipartisan"}) {
		t.Errorf("neutral_terms not lowercased: %v", got)
	}
	if got := lex.PhraseCount(); got != 7 {
		t.Errorf("phrase count: got %d, want 7", got)
	}
}

func TestLoad_YAML(t *testing.T) {
	content := `
extreme_left:
  keywords: [radical leftist]
extreme_right:
  keywords: [white nationalist]
left_wing:
  economic: [wealth tax]
  social: [social justice warrior]
right_wing:
  economic: [free market]
  social: [border security]
neutral_terms: [bipartisan]
`
	lex, err := Load(writeDataset(t, "keywords.yaml", content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := lex.PhraseCount(); got != 7 {
		t.Errorf("phrase count: got %d, want 7", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, domain.ErrDataLoad) {
		t.Errorf("got err %v, want ErrDataLoad", err)
	}
}

func TestLoad_MalformedData(t *testing.T) {
	_, err := Load(writeDataset(t, "keywords.json", `{"extreme_left": [`))
	if !errors.Is(err, domain.ErrDataLoad) {
		t.Errorf("got err %v, want ErrDataLoad", err)
	}
}

func TestLoad_MissingCategory(t *testing.T) {
	content := `{
  "extreme_left": {"keywords": ["radical leftist"]},
  "left_wing": {"economic": [], "social": []},
  "right_wing": {"economic": [], "social": []},
  "neutral_terms": []
}`
	_, err := Load(writeDataset(t, "keywords.json", content))
	if !errors.Is(err, domain.ErrDataLoad) {
		t.Fatalf("got err %v, want ErrDataLoad", err)
	}
}

func TestLoad_EmptyPhrase(t *testing.T) {
	content := `{
  "extreme_left": {"keywords": ["radical leftist"]},
  "extreme_right": {"keywords": ["  "]},
  "left_wing": {"economic": [], "social": []},
  "right_wing": {"economic": [], "social": []},
  "neutral_terms": []
}`
	_, err := Load(writeDataset(t, "keywords.json", content))
	if !errors.Is(err, domain.ErrDataLoad) {
		t.Errorf("got err %v, want ErrDataLoad for blank phrase", err)
	}
}

func TestCategories_FixedOrder(t *testing.T) {
	lex := New(nil, nil, nil, nil, nil, nil, nil)
	want := []string{"extreme_left", "extreme_right", "left_wing", "right_wing", "neutral_terms"}
	if got := lex.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Returned slice is a copy; mutating it must not leak into the lexicon.
	lex.Categories()[0] = "mutated"
	if got := lex.Categories()[0]; got != "extreme_left" {
		t.Errorf("categories mutated through returned slice: %v", got)
	}
}

func TestNew_NormalizesAndDropsBlanks(t *testing.T) {
	lex := New(
		[]string{" Radical Leftist ", ""},
		nil, nil, nil, nil, nil, nil,
	)
	if got := lex.ExtremeLeft(); !reflect.DeepEqual(got, []string{"radical leftist"}) {
		t.Errorf("got %v", got)
	}
	if got := lex.PhraseCount(); got != 1 {
		t.Errorf("phrase count: got %d, want 1", got)
	}
}
