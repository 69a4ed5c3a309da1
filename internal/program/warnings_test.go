package program

import (
	"strings"
	"testing"

	"github.com/claude/periodize/internal/models"
)

func TestVolumeWarningAddExceedsMRV(t *testing.T) {
	// chest MRV is 22; 20 existing + 4 new crosses it
	volumes := []models.ExerciseVolume{
		{Sets: 10, MuscleGroups: []string{"chest"}},
		{Sets: 10, MuscleGroups: []string{"chest", "front_delts"}},
	}
	warning := volumeWarning(volumes, []string{"chest", "triceps"}, 4, opAdd)
	if !strings.Contains(warning, "exceed MRV for chest (24 > 22)") {
		t.Errorf("warning = %q, want chest MRV message", warning)
	}
	if strings.Contains(warning, "triceps") {
		t.Errorf("warning = %q, triceps at 4 sets should not be flagged", warning)
	}
}

func TestVolumeWarningAddWithinLimits(t *testing.T) {
	volumes := []models.ExerciseVolume{
		{Sets: 6, MuscleGroups: []string{"chest"}},
	}
	if w := volumeWarning(volumes, []string{"chest"}, 3, opAdd); w != "" {
		t.Errorf("warning = %q, want empty", w)
	}
}

func TestVolumeWarningDeleteBelowMEV(t *testing.T) {
	// biceps MEV is 6; removing 4 of 8 sets drops to 4
	volumes := []models.ExerciseVolume{
		{Sets: 8, MuscleGroups: []string{"biceps"}},
	}
	warning := volumeWarning(volumes, []string{"biceps"}, -4, opDelete)
	if !strings.Contains(warning, "drop below MEV for biceps (4 < 6)") {
		t.Errorf("warning = %q, want biceps MEV message", warning)
	}
}

func TestVolumeWarningDeleteStillAdequate(t *testing.T) {
	volumes := []models.ExerciseVolume{
		{Sets: 8, MuscleGroups: []string{"biceps"}},
		{Sets: 6, MuscleGroups: []string{"biceps"}},
	}
	if w := volumeWarning(volumes, []string{"biceps"}, -4, opDelete); w != "" {
		t.Errorf("warning = %q, want empty", w)
	}
}

func TestVolumeWarningMultipleGroups(t *testing.T) {
	// both chest and triceps pushed past MRV in one add
	volumes := []models.ExerciseVolume{
		{Sets: 21, MuscleGroups: []string{"chest", "triceps"}},
	}
	warning := volumeWarning(volumes, []string{"chest", "triceps"}, 5, opAdd)
	if !strings.Contains(warning, "chest") || !strings.Contains(warning, "triceps") {
		t.Errorf("warning = %q, want both groups flagged", warning)
	}
	if !strings.Contains(warning, "; ") {
		t.Errorf("warning = %q, want messages joined with semicolons", warning)
	}
}

func TestVolumeWarningUnknownGroupSkipped(t *testing.T) {
	volumes := []models.ExerciseVolume{
		{Sets: 99, MuscleGroups: []string{"grip"}},
	}
	if w := volumeWarning(volumes, []string{"grip"}, 10, opAdd); w != "" {
		t.Errorf("warning = %q, want empty for group without landmarks", w)
	}
}

func TestSharesMuscleGroup(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want bool
	}{
		{"overlap", []string{"chest", "triceps"}, []string{"front_delts", "chest"}, true},
		{"disjoint", []string{"quads", "glutes"}, []string{"lats", "biceps"}, false},
		{"empty", nil, []string{"chest"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sharesMuscleGroup(tt.a, tt.b); got != tt.want {
				t.Errorf("sharesMuscleGroup(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTemplateExerciseNames(t *testing.T) {
	names := templateExerciseNames()
	seen := make(map[string]int)
	for _, n := range names {
		seen[n]++
	}
	for n, c := range seen {
		if c > 1 {
			t.Errorf("exercise %q appears %d times, want distinct names", n, c)
		}
	}
	// Barbell Row and Rear Delt Flyes repeat across days but must appear once.
	if len(names) != 22 {
		t.Errorf("len(names) = %d, want 22", len(names))
	}
}

func TestDefaultTemplateShape(t *testing.T) {
	if len(defaultTemplate) != 6 {
		t.Fatalf("len(defaultTemplate) = %d, want 6", len(defaultTemplate))
	}
	for _, day := range defaultTemplate {
		if day.Type == "vo2max" && len(day.Exercises) != 0 {
			t.Errorf("day %q: conditioning day has %d exercises, want 0", day.Name, len(day.Exercises))
		}
		if day.Type == "strength" && len(day.Exercises) != 6 {
			t.Errorf("day %q: strength day has %d exercises, want 6", day.Name, len(day.Exercises))
		}
	}
}
