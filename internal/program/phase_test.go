package program

import (
	"math"
	"testing"
)

// TestPhaseCycle verifies four automatic advances return to mev with the
// canonical multipliers in order.
func TestPhaseCycle(t *testing.T) {
	wantPhases := []Phase{PhaseMAV, PhaseMRV, PhaseDeload, PhaseMEV}
	wantMultipliers := []float64{1.2, 1.15, 0.5, 2.0}

	p := PhaseMEV
	for i, want := range wantPhases {
		nextPhase := p.Next()
		if nextPhase != want {
			t.Fatalf("step %d: Next(%s) = %s, want %s", i, p, nextPhase, want)
		}
		if m := Multiplier(p, nextPhase); m != wantMultipliers[i] {
			t.Errorf("step %d: Multiplier(%s, %s) = %g, want %g", i, p, nextPhase, m, wantMultipliers[i])
		}
		p = nextPhase
	}
	if p != PhaseMEV {
		t.Errorf("after full cycle phase = %s, want mev", p)
	}
}

func TestMultiplierSamePhase(t *testing.T) {
	for _, p := range []Phase{PhaseMEV, PhaseMAV, PhaseMRV, PhaseDeload} {
		if m := Multiplier(p, p); m != 1.0 {
			t.Errorf("Multiplier(%s, %s) = %g, want 1.0", p, p, m)
		}
	}
}

// TestMultiplierSkips verifies non-adjacent transitions derive from the
// relative volume index so the landing volume is path independent.
func TestMultiplierSkips(t *testing.T) {
	tests := []struct {
		from, to Phase
		want     float64
	}{
		{PhaseMEV, PhaseMRV, 1.38},
		{PhaseMEV, PhaseDeload, 0.69},
		{PhaseMAV, PhaseMEV, 1.0 / 1.2},
		{PhaseMRV, PhaseMEV, 1.0 / 1.38},
		{PhaseMAV, PhaseDeload, 0.69 / 1.2},
		{PhaseDeload, PhaseMRV, 1.38 / 0.69},
	}
	for _, tt := range tests {
		got := Multiplier(tt.from, tt.to)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Multiplier(%s, %s) = %g, want %g", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestParsePhase(t *testing.T) {
	for _, s := range []string{"mev", "mav", "mrv", "deload"} {
		if _, err := ParsePhase(s); err != nil {
			t.Errorf("ParsePhase(%q) = %v, want nil", s, err)
		}
	}
	if _, err := ParsePhase("taper"); err == nil {
		t.Error("ParsePhase(taper) = nil, want error")
	}
}

func TestRescaleSets(t *testing.T) {
	tests := []struct {
		sets       int
		multiplier float64
		want       int
	}{
		{10, 1.2, 12},
		{3, 0.5, 2},  // round(1.5) away from zero
		{1, 0.5, 1},  // clamped, sets stay positive
		{4, 1.15, 5}, // round(4.6)
		{8, 2.0, 16},
		{5, 1.0, 5},
	}
	for _, tt := range tests {
		if got := RescaleSets(tt.sets, tt.multiplier); got != tt.want {
			t.Errorf("RescaleSets(%d, %g) = %d, want %d", tt.sets, tt.multiplier, got, tt.want)
		}
	}
}
