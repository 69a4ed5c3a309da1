package workout

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/claude/periodize/internal/models"
	"github.com/claude/periodize/internal/validate"
)

func TestValidStatus(t *testing.T) {
	for _, status := range []string{StatusNotStarted, StatusInProgress, StatusCompleted, StatusCancelled} {
		if !validStatus(status) {
			t.Errorf("validStatus(%q) = false, want true", status)
		}
	}
	if validStatus("paused") {
		t.Error(`validStatus("paused") = true, want false`)
	}
}

func TestInvalidStatusErrorAs(t *testing.T) {
	var err error = &InvalidStatusError{Status: "paused"}
	var target *InvalidStatusError
	if !errors.As(err, &target) {
		t.Fatal("errors.As failed for *InvalidStatusError")
	}
	if target.Status != "paused" {
		t.Errorf("Status = %q, want paused", target.Status)
	}
}

func TestSummarizeSets(t *testing.T) {
	sets := []models.SetRow{
		{WeightKg: 100, Reps: 8, RIR: 2},
		{WeightKg: 100, Reps: 8, RIR: 1},
		{WeightKg: 60, Reps: 12, RIR: 0},
	}
	volume, rir := summarizeSets(sets)
	if volume != 2320 {
		t.Errorf("volume = %v, want 2320", volume)
	}
	if rir != 1.0 {
		t.Errorf("average rir = %v, want 1.0", rir)
	}
}

// Out-of-range set parameters fail before any store access, so the service
// runs without a database here.
func TestLogSetRejectsOutOfRangeParams(t *testing.T) {
	s := NewService(nil, slog.Default())
	tests := []struct {
		name  string
		p     LogSetParams
		field string
	}{
		{"weight too heavy", LogSetParams{WeightKg: 501, Reps: 8, RIR: 2}, "weight_kg"},
		{"zero reps", LogSetParams{WeightKg: 100, Reps: 0, RIR: 2}, "reps"},
		{"rir too high", LogSetParams{WeightKg: 100, Reps: 8, RIR: 5}, "rir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.LogSet(context.Background(), tt.p)
			var re *validate.RangeError
			if !errors.As(err, &re) {
				t.Fatalf("LogSet error = %v, want *validate.RangeError", err)
			}
			if re.Field != tt.field {
				t.Errorf("field = %q, want %q", re.Field, tt.field)
			}
		})
	}
}

func TestSummarizeSetsEmpty(t *testing.T) {
	volume, rir := summarizeSets(nil)
	if volume != 0 || rir != 0 {
		t.Errorf("summarizeSets(nil) = %v, %v; want 0, 0", volume, rir)
	}
}
