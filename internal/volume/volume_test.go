package volume

import (
	"testing"
	"time"

	"github.com/claude/periodize/internal/landmarks"
	"github.com/claude/periodize/internal/models"
)

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		day       string
		wantStart string
		wantEnd   string
	}{
		{"monday", "2026-08-24", "2026-08-24", "2026-08-30"},
		{"midweek", "2026-08-27", "2026-08-24", "2026-08-30"},
		{"saturday", "2026-08-29", "2026-08-24", "2026-08-30"},
		{"sunday belongs to prior monday", "2026-08-30", "2026-08-24", "2026-08-30"},
		{"next monday starts new week", "2026-08-31", "2026-08-31", "2026-09-06"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := time.Parse("2006-01-02", tt.day)
			if err != nil {
				t.Fatal(err)
			}
			start, end := weekBounds(day)
			if got := start.Format("2006-01-02"); got != tt.wantStart {
				t.Errorf("week start = %s, want %s", got, tt.wantStart)
			}
			if got := end.Format("2006-01-02"); got != tt.wantEnd {
				t.Errorf("week end = %s, want %s", got, tt.wantEnd)
			}
		})
	}
}

func TestMergeWeek(t *testing.T) {
	completed := []models.MuscleGroupSets{
		{MuscleGroup: "chest", Sets: 6},
		{MuscleGroup: "quads", Sets: 10},
	}
	planned := []models.MuscleGroupSets{
		{MuscleGroup: "chest", Sets: 12},
		{MuscleGroup: "biceps", Sets: 8},
	}

	got := mergeWeek(completed, planned)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	// alphabetical: biceps, chest, quads
	if got[0].MuscleGroup != "biceps" || got[1].MuscleGroup != "chest" || got[2].MuscleGroup != "quads" {
		t.Fatalf("order = [%s %s %s], want alphabetical",
			got[0].MuscleGroup, got[1].MuscleGroup, got[2].MuscleGroup)
	}

	chest := got[1]
	if chest.CompletedSets != 6 || chest.PlannedSets != 12 {
		t.Errorf("chest sets = %d/%d, want 6/12", chest.CompletedSets, chest.PlannedSets)
	}
	if chest.RemainingSets != 6 {
		t.Errorf("chest remaining = %d, want 6", chest.RemainingSets)
	}
	if chest.CompletionPercentage != 50.0 {
		t.Errorf("chest completion = %v, want 50.0", chest.CompletionPercentage)
	}
	// planned 12 is adequate for chest (mev 8, mav 14) and completion is half
	if chest.Zone != landmarks.ZoneOnTrack {
		t.Errorf("chest zone = %s, want on_track", chest.Zone)
	}

	biceps := got[0]
	if biceps.CompletedSets != 0 || biceps.RemainingSets != 8 {
		t.Errorf("biceps = %d completed / %d remaining, want 0/8", biceps.CompletedSets, biceps.RemainingSets)
	}
	if biceps.CompletionPercentage != 0 {
		t.Errorf("biceps completion = %v, want 0", biceps.CompletionPercentage)
	}
	if biceps.Zone != landmarks.ZoneBelowMEV {
		t.Errorf("biceps zone = %s, want below_mev", biceps.Zone)
	}
	if biceps.Warning == nil {
		t.Error("biceps warning = nil, want below-MEV message")
	}

	// quads completed with nothing planned; 10 is in [8,14) so adequate
	quads := got[2]
	if quads.RemainingSets != 0 {
		t.Errorf("quads remaining = %d, want 0", quads.RemainingSets)
	}
	if quads.Zone != landmarks.ZoneAdequate {
		t.Errorf("quads zone = %s, want adequate", quads.Zone)
	}
	if quads.Warning != nil {
		t.Errorf("quads warning = %q, want nil", *quads.Warning)
	}
}

func TestMergeWeekCompletionRounding(t *testing.T) {
	got := mergeWeek(
		[]models.MuscleGroupSets{{MuscleGroup: "chest", Sets: 1}},
		[]models.MuscleGroupSets{{MuscleGroup: "chest", Sets: 3}},
	)
	// 1/3 rounds to one decimal place
	if got[0].CompletionPercentage != 33.3 {
		t.Errorf("completion = %v, want 33.3", got[0].CompletionPercentage)
	}
}

func TestGroupByWeek(t *testing.T) {
	d := func(s string) time.Time {
		day, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatal(err)
		}
		return day
	}
	rows := []models.DatedMuscleGroupSets{
		{Date: d("2026-08-25"), MuscleGroup: "chest", Sets: 4},
		{Date: d("2026-08-27"), MuscleGroup: "chest", Sets: 5},
		{Date: d("2026-08-27"), MuscleGroup: "lats", Sets: 6},
		{Date: d("2026-08-30"), MuscleGroup: "chest", Sets: 3}, // Sunday, same week
		{Date: d("2026-08-31"), MuscleGroup: "chest", Sets: 2}, // next Monday
	}

	weeks := groupByWeek(rows)
	if len(weeks) != 2 {
		t.Fatalf("len(weeks) = %d, want 2", len(weeks))
	}
	if weeks[0].WeekStart != "2026-08-24" || weeks[1].WeekStart != "2026-08-31" {
		t.Fatalf("week starts = %s, %s; want 2026-08-24, 2026-08-31",
			weeks[0].WeekStart, weeks[1].WeekStart)
	}

	first := weeks[0]
	if len(first.MuscleGroups) != 2 {
		t.Fatalf("first week groups = %d, want 2", len(first.MuscleGroups))
	}
	if first.MuscleGroups[0].MuscleGroup != "chest" || first.MuscleGroups[0].CompletedSets != 12 {
		t.Errorf("chest = %+v, want 12 sets summed across the week", first.MuscleGroups[0])
	}
	if first.MuscleGroups[1].MuscleGroup != "lats" || first.MuscleGroups[1].CompletedSets != 6 {
		t.Errorf("lats = %+v, want 6 sets", first.MuscleGroups[1])
	}
	if first.MuscleGroups[0].MRV != 22 {
		t.Errorf("chest MRV = %d, want 22", first.MuscleGroups[0].MRV)
	}
}
