package policy

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/biaslens/internal/domain"
)

func TestStandard_Constants(t *testing.T) {
	p := Standard()

	if p.ExtremeWeight() != 2.0 {
		t.Errorf("extreme weight: got %v, want 2.0", p.ExtremeWeight())
	}
	if p.WingWeight() != 1.0 {
		t.Errorf("wing weight: got %v, want 1.0", p.WingWeight())
	}
	if p.NeutralWeight() != 0.75 {
		t.Errorf("neutral weight: got %v, want 0.75", p.NeutralWeight())
	}
	if p.BaselineBoost() != 0 {
		t.Errorf("baseline boost: got %v, want 0", p.BaselineBoost())
	}
	if p.DominanceRatio() != 0.85 {
		t.Errorf("dominance ratio: got %v, want 0.85", p.DominanceRatio())
	}
	if p.MatchThreshold() != 0.6 {
		t.Errorf("match threshold: got %v, want 0.6", p.MatchThreshold())
	}
	if !p.ExtremePrecedence() {
		t.Error("standard policy must apply extreme precedence")
	}
	if p.SuppressNeutral() {
		t.Error("standard policy must not suppress neutral")
	}
	if p.LabelMixedExtremes() {
		t.Error("standard policy must not label mixed extremes")
	}
}

func TestLenient_Constants(t *testing.T) {
	p := Lenient()

	if p.WingWeight() != 1.2 {
		t.Errorf("wing weight: got %v, want 1.2", p.WingWeight())
	}
	if p.NeutralWeight() != 0.3 {
		t.Errorf("neutral weight: got %v, want 0.3", p.NeutralWeight())
	}
	if p.BaselineBoost() != 0.5 {
		t.Errorf("baseline boost: got %v, want 0.5", p.BaselineBoost())
	}
	if p.DominanceRatio() != 0.5 {
		t.Errorf("dominance ratio: got %v, want 0.5", p.DominanceRatio())
	}
	if !p.SuppressNeutral() {
		t.Error("lenient policy must suppress neutral")
	}
	if !p.LabelMixedExtremes() {
		t.Error("lenient policy must label mixed extremes")
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
		wantErr  bool
	}{
		{"", StandardName, false},
		{"standard", StandardName, false},
		{"lenient", LenientName, false},
		{"aggressive", "", true},
	}

	for _, tt := range tests {
		t.Run("name="+tt.name, func(t *testing.T) {
			p, err := ByName(tt.name)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnknownPolicy) {
					t.Fatalf("got err %v, want ErrUnknownPolicy", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("got %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}

func TestWithMatchThreshold(t *testing.T) {
	p := Standard().WithMatchThreshold(0.8)
	if p.MatchThreshold() != 0.8 {
		t.Errorf("got %v, want 0.8", p.MatchThreshold())
	}

	// Out-of-range values keep the current threshold.
	for _, bad := range []float64{0, -0.2, 1.5} {
		p := Standard().WithMatchThreshold(bad)
		if p.MatchThreshold() != DefaultMatchThreshold {
			t.Errorf("threshold %v: got %v, want default", bad, p.MatchThreshold())
		}
	}
}
