package recovery

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/claude/periodize/internal/validate"
)

func TestAdjustmentFor(t *testing.T) {
	tests := []struct {
		score int
		want  Adjustment
	}{
		{15, AdjustNone},
		{12, AdjustNone},
		{11, AdjustReduce1Set},
		{9, AdjustReduce1Set},
		{8, AdjustReduce2Set},
		{6, AdjustReduce2Set},
		{5, AdjustRestDay},
		{3, AdjustRestDay},
	}
	for _, tt := range tests {
		if got := AdjustmentFor(tt.score); got != tt.want {
			t.Errorf("AdjustmentFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

// Bad input is rejected before any store access, so the service runs
// without a database here.
func TestCreateRejectsInvalidInput(t *testing.T) {
	s := NewService(nil, slog.Default())
	tests := []struct {
		name string
		p    AssessmentParams
	}{
		{"malformed date", AssessmentParams{Date: "10/06/2025", SleepQuality: 3, MuscleSoreness: 3, MentalMotivation: 3}},
		{"sleep quality too high", AssessmentParams{Date: "2025-10-06", SleepQuality: 6, MuscleSoreness: 3, MentalMotivation: 3}},
		{"soreness too low", AssessmentParams{Date: "2025-10-06", SleepQuality: 3, MuscleSoreness: 0, MentalMotivation: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), 1, tt.p)
			var re *validate.RangeError
			var fe *validate.FormatError
			if !errors.As(err, &re) && !errors.As(err, &fe) {
				t.Fatalf("Create error = %v, want a validation error", err)
			}
		})
	}
}
