package seed

import "github.com/claude/periodize/internal/models"

// Library is the built-in exercise catalog. Muscle group names match the
// landmark table; each set of an exercise counts in full toward every listed
// group.
func Library() []models.ExerciseRow {
	return []models.ExerciseRow{
		// Chest
		{Name: "Barbell Bench Press", MuscleGroups: []string{"chest", "front_delts", "triceps"}, Equipment: "barbell"},
		{Name: "Dumbbell Bench Press", MuscleGroups: []string{"chest", "front_delts", "triceps"}, Equipment: "dumbbell"},
		{Name: "Incline Dumbbell Press", MuscleGroups: []string{"chest", "front_delts", "triceps"}, Equipment: "dumbbell"},
		{Name: "Incline Barbell Press", MuscleGroups: []string{"chest", "front_delts", "triceps"}, Equipment: "barbell"},
		{Name: "Cable Flyes", MuscleGroups: []string{"chest"}, Equipment: "cable"},
		{Name: "Pec Deck", MuscleGroups: []string{"chest"}, Equipment: "machine"},
		{Name: "Dips", MuscleGroups: []string{"chest", "triceps", "front_delts"}, Equipment: "bodyweight"},
		{Name: "Push-Ups", MuscleGroups: []string{"chest", "triceps", "front_delts"}, Equipment: "bodyweight"},

		// Back
		{Name: "Pull-Ups", MuscleGroups: []string{"lats", "biceps", "mid_back"}, Equipment: "bodyweight"},
		{Name: "Chin-Ups", MuscleGroups: []string{"lats", "biceps"}, Equipment: "bodyweight"},
		{Name: "Lat Pulldown", MuscleGroups: []string{"lats", "biceps"}, Equipment: "cable"},
		{Name: "Barbell Row", MuscleGroups: []string{"lats", "mid_back", "rear_delts", "biceps"}, Equipment: "barbell"},
		{Name: "Dumbbell Row", MuscleGroups: []string{"lats", "mid_back", "biceps"}, Equipment: "dumbbell"},
		{Name: "Seated Cable Row", MuscleGroups: []string{"mid_back", "lats", "biceps"}, Equipment: "cable"},
		{Name: "Face Pulls", MuscleGroups: []string{"rear_delts", "mid_back", "traps"}, Equipment: "cable"},
		{Name: "Barbell Shrugs", MuscleGroups: []string{"traps"}, Equipment: "barbell"},
		{Name: "Conventional Deadlift", MuscleGroups: []string{"hamstrings", "glutes", "lower_back", "traps"}, Equipment: "barbell"},
		{Name: "Romanian Deadlift", MuscleGroups: []string{"hamstrings", "glutes", "lower_back"}, Equipment: "barbell"},
		{Name: "Back Extension", MuscleGroups: []string{"lower_back", "glutes", "hamstrings"}, Equipment: "bodyweight"},

		// Shoulders
		{Name: "Overhead Press", MuscleGroups: []string{"front_delts", "side_delts", "triceps"}, Equipment: "barbell"},
		{Name: "Seated Dumbbell Press", MuscleGroups: []string{"front_delts", "side_delts", "triceps"}, Equipment: "dumbbell"},
		{Name: "Lateral Raises", MuscleGroups: []string{"side_delts"}, Equipment: "dumbbell"},
		{Name: "Cable Lateral Raises", MuscleGroups: []string{"side_delts"}, Equipment: "cable"},
		{Name: "Rear Delt Flyes", MuscleGroups: []string{"rear_delts"}, Equipment: "dumbbell"},
		{Name: "Front Raises", MuscleGroups: []string{"front_delts"}, Equipment: "dumbbell"},

		// Arms
		{Name: "Barbell Curl", MuscleGroups: []string{"biceps"}, Equipment: "barbell"},
		{Name: "Dumbbell Curl", MuscleGroups: []string{"biceps"}, Equipment: "dumbbell"},
		{Name: "Hammer Curl", MuscleGroups: []string{"biceps", "brachialis", "forearms"}, Equipment: "dumbbell"},
		{Name: "Preacher Curl", MuscleGroups: []string{"biceps", "brachialis"}, Equipment: "machine"},
		{Name: "Tricep Pushdown", MuscleGroups: []string{"triceps"}, Equipment: "cable"},
		{Name: "Overhead Tricep Extension", MuscleGroups: []string{"triceps"}, Equipment: "dumbbell"},
		{Name: "Close-Grip Bench Press", MuscleGroups: []string{"triceps", "chest", "front_delts"}, Equipment: "barbell"},
		{Name: "Skull Crushers", MuscleGroups: []string{"triceps"}, Equipment: "barbell"},
		{Name: "Wrist Curls", MuscleGroups: []string{"forearms"}, Equipment: "dumbbell"},

		// Legs
		{Name: "Barbell Back Squat", MuscleGroups: []string{"quads", "glutes", "lower_back"}, Equipment: "barbell"},
		{Name: "Front Squat", MuscleGroups: []string{"quads", "glutes", "core"}, Equipment: "barbell"},
		{Name: "Leg Press", MuscleGroups: []string{"quads", "glutes"}, Equipment: "machine"},
		{Name: "Hack Squat", MuscleGroups: []string{"quads", "glutes"}, Equipment: "machine"},
		{Name: "Bulgarian Split Squat", MuscleGroups: []string{"quads", "glutes"}, Equipment: "dumbbell"},
		{Name: "Walking Lunges", MuscleGroups: []string{"quads", "glutes", "hamstrings"}, Equipment: "dumbbell"},
		{Name: "Leg Extension", MuscleGroups: []string{"quads"}, Equipment: "machine"},
		{Name: "Leg Curl", MuscleGroups: []string{"hamstrings"}, Equipment: "machine"},
		{Name: "Hip Thrust", MuscleGroups: []string{"glutes", "hamstrings"}, Equipment: "barbell"},
		{Name: "Standing Calf Raise", MuscleGroups: []string{"calves"}, Equipment: "machine"},
		{Name: "Seated Calf Raise", MuscleGroups: []string{"calves"}, Equipment: "machine"},

		// Core
		{Name: "Plank", MuscleGroups: []string{"core", "abs"}, Equipment: "bodyweight"},
		{Name: "Hanging Leg Raises", MuscleGroups: []string{"abs", "hip_flexors"}, Equipment: "bodyweight"},
		{Name: "Cable Crunches", MuscleGroups: []string{"abs"}, Equipment: "cable"},
		{Name: "Russian Twists", MuscleGroups: []string{"obliques", "abs"}, Equipment: "bodyweight"},
		{Name: "Ab Wheel Rollout", MuscleGroups: []string{"abs", "core"}, Equipment: "bodyweight"},
	}
}
