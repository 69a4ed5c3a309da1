package analytics

import "testing"

func TestEstimateOneRM(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		reps     int
		rir      int
		want     float64
	}{
		{"bench 100x8 at RIR 2", 100, 8, 2, 120},
		{"single at RIR 0", 140, 1, 0, 144.7},
		{"rir cancels reps", 60, 3, 3, 60},
		{"high rep set", 50, 15, 1, 73.3},
		{"bodyweight-ish load", 20, 10, 0, 26.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateOneRM(tt.weightKg, tt.reps, tt.rir); got != tt.want {
				t.Errorf("EstimateOneRM(%v, %d, %d) = %v, want %v", tt.weightKg, tt.reps, tt.rir, got, tt.want)
			}
		})
	}
}
