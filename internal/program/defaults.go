package program

const defaultProgramName = "Renaissance Periodization 6-Day Split"

type templateExercise struct {
	Exercise string
	Sets     int
	Reps     string
	RIR      int
}

type templateDay struct {
	DayOfWeek int
	Name      string
	Type      string
	Exercises []templateExercise
}

// defaultTemplate is the six-day push/pull split seeded for new users.
// Conditioning days carry no exercise slots.
var defaultTemplate = []templateDay{
	{
		DayOfWeek: 1, Name: "Push A (Chest-Focused)", Type: "strength",
		Exercises: []templateExercise{
			{"Barbell Back Squat", 3, "6-8", 3},
			{"Barbell Bench Press", 4, "6-8", 3},
			{"Incline Dumbbell Press", 3, "8-10", 2},
			{"Cable Flyes", 3, "12-15", 1},
			{"Lateral Raises", 4, "12-15", 1},
			{"Tricep Pushdown", 3, "15-20", 0},
		},
	},
	{
		DayOfWeek: 2, Name: "Pull A (Lat-Focused)", Type: "strength",
		Exercises: []templateExercise{
			{"Conventional Deadlift", 3, "5-8", 3},
			{"Pull-Ups", 4, "5-8", 3},
			{"Barbell Row", 4, "8-10", 2},
			{"Seated Cable Row", 3, "12-15", 1},
			{"Face Pulls", 3, "15-20", 0},
			{"Barbell Curl", 3, "8-12", 1},
		},
	},
	{
		DayOfWeek: 3, Name: "VO2max A (Norwegian 4x4)", Type: "vo2max",
	},
	{
		DayOfWeek: 4, Name: "Push B (Shoulder-Focused)", Type: "strength",
		Exercises: []templateExercise{
			{"Leg Press", 3, "8-12", 3},
			{"Overhead Press", 4, "5-8", 3},
			{"Dumbbell Bench Press", 3, "8-12", 2},
			{"Cable Lateral Raises", 4, "15-20", 0},
			{"Rear Delt Flyes", 3, "15-20", 0},
			{"Close-Grip Bench Press", 3, "8-10", 2},
		},
	},
	{
		DayOfWeek: 5, Name: "Pull B (Rhomboid/Trap-Focused)", Type: "strength",
		Exercises: []templateExercise{
			{"Front Squat", 3, "6-8", 3},
			{"Barbell Row", 4, "6-8", 3},
			{"Lat Pulldown", 3, "10-12", 2},
			{"Barbell Shrugs", 4, "12-15", 1},
			{"Rear Delt Flyes", 3, "15-20", 0},
			{"Hammer Curl", 3, "10-15", 1},
		},
	},
	{
		DayOfWeek: 6, Name: "VO2max B (30/30 or Zone 2)", Type: "vo2max",
	},
}

// templateExerciseNames returns the distinct exercise names the default
// template references, in first-use order.
func templateExerciseNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, day := range defaultTemplate {
		for _, te := range day.Exercises {
			if !seen[te.Exercise] {
				seen[te.Exercise] = true
				names = append(names, te.Exercise)
			}
		}
	}
	return names
}
