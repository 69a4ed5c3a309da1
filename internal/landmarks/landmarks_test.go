package landmarks

import "testing"

// TestTableOrdering verifies mev <= mav <= mrv for every defined group.
func TestTableOrdering(t *testing.T) {
	for _, name := range Groups() {
		lm := Lookup(name)
		if lm.MEV > lm.MAV || lm.MAV > lm.MRV {
			t.Errorf("%s: landmarks out of order: mev=%d mav=%d mrv=%d", name, lm.MEV, lm.MAV, lm.MRV)
		}
		if lm.MEV <= 0 {
			t.Errorf("%s: mev = %d, want > 0", name, lm.MEV)
		}
	}
}

func TestLookupUnknownGroup(t *testing.T) {
	lm := Lookup("neck")
	if lm != (Landmark{}) {
		t.Errorf("Lookup(neck) = %+v, want zero triple", lm)
	}
	if Defined("neck") {
		t.Error("Defined(neck) = true, want false")
	}
}

func TestClassifyBoundaries(t *testing.T) {
	lm := Landmark{MEV: 8, MAV: 14, MRV: 22}
	tests := []struct {
		sets int
		want Zone
	}{
		{0, ZoneBelowMEV},
		{7, ZoneBelowMEV},
		{8, ZoneAdequate},
		{13, ZoneAdequate},
		{14, ZoneOptimal},
		{22, ZoneOptimal},
		{23, ZoneAboveMRV},
	}
	for _, tt := range tests {
		if got := Classify(tt.sets, lm); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.sets, got, tt.want)
		}
	}
}

func TestClassifyOnTrack(t *testing.T) {
	lm := Landmark{MEV: 8, MAV: 14, MRV: 22}
	tests := []struct {
		name      string
		completed int
		planned   int
		want      Zone
	}{
		{"half of optimal plan", 8, 16, ZoneOnTrack},
		{"under half of optimal plan", 7, 16, ZoneBelowMEV},
		{"half of adequate plan", 5, 10, ZoneOnTrack},
		{"under half of adequate plan", 4, 10, ZoneBelowMEV},
		{"plan below mev never on track", 3, 6, ZoneBelowMEV},
		{"plan above mrv never on track", 20, 30, ZoneOptimal},
		{"finished week classifies normally", 16, 16, ZoneOnTrack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyOnTrack(tt.completed, tt.planned, lm); got != tt.want {
				t.Errorf("ClassifyOnTrack(%d, %d) = %s, want %s", tt.completed, tt.planned, got, tt.want)
			}
		})
	}
}

func TestWarning(t *testing.T) {
	if w := Warning(ZoneBelowMEV, "chest"); w == "" {
		t.Error("expected warning for below_mev")
	}
	if w := Warning(ZoneAboveMRV, "chest"); w == "" {
		t.Error("expected warning for above_mrv")
	}
	for _, z := range []Zone{ZoneAdequate, ZoneOptimal, ZoneOnTrack} {
		if w := Warning(z, "chest"); w != "" {
			t.Errorf("Warning(%s) = %q, want empty", z, w)
		}
	}
}
