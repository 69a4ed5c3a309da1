package models

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseRow is a row of the exercises reference table. Each set performed
// counts in full toward every muscle group the exercise lists.
type ExerciseRow struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	MuscleGroups []string  `json:"muscle_groups"`
	Equipment    string    `json:"equipment"`
}

// ProgramRow is a row of the programs table. The latest program per user by
// creation time is the active one.
type ProgramRow struct {
	ID             uuid.UUID `json:"id"`
	UserID         int       `json:"user_id"`
	Name           string    `json:"name"`
	MesocycleWeek  int       `json:"mesocycle_week"`
	MesocyclePhase string    `json:"mesocycle_phase"`
	CreatedAt      time.Time `json:"created_at"`
}

// ProgramDayRow is a row of the program_days table. VO2max days carry no
// exercises.
type ProgramDayRow struct {
	ID        uuid.UUID `json:"id"`
	ProgramID uuid.UUID `json:"program_id"`
	DayOfWeek int       `json:"day_of_week"`
	DayName   string    `json:"day_name"`
	DayType   string    `json:"day_type"`
}

// ProgramExerciseRow is a row of the program_exercises table: the unit the
// phase engine rescales.
type ProgramExerciseRow struct {
	ID           uuid.UUID `json:"id"`
	ProgramDayID uuid.UUID `json:"program_day_id"`
	ExerciseID   uuid.UUID `json:"exercise_id"`
	OrderIndex   int       `json:"order_index"`
	Sets         int       `json:"target_sets"`
	Reps         string    `json:"target_rep_range"`
	RIR          int       `json:"target_rir"`
}

// ProgramExerciseDetail joins a program exercise with its exercise metadata.
type ProgramExerciseDetail struct {
	ProgramExerciseRow
	ExerciseName string   `json:"exercise_name"`
	MuscleGroups []string `json:"muscle_groups"`
	Equipment    string   `json:"equipment"`
}

// WorkoutRow is a row of the workouts table. Sets count toward completed
// volume only while Status is "completed".
type WorkoutRow struct {
	ID            uuid.UUID  `json:"id"`
	UserID        int        `json:"user_id"`
	ProgramDayID  uuid.UUID  `json:"program_day_id"`
	Date          time.Time  `json:"date"`
	Status        string     `json:"status"`
	StartedAt     *time.Time `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at"`
	TotalVolumeKg *float64   `json:"total_volume_kg"`
	AverageRIR    *float64   `json:"average_rir"`
	DayName       *string    `json:"day_name,omitempty"`
	DayType       *string    `json:"day_type,omitempty"`
}

// SetRow is a row of the sets table, append-only within a workout.
type SetRow struct {
	ID         uuid.UUID `json:"id"`
	WorkoutID  uuid.UUID `json:"workout_id"`
	ExerciseID uuid.UUID `json:"exercise_id"`
	SetNumber  int       `json:"set_number"`
	WeightKg   float64   `json:"weight_kg"`
	Reps       int       `json:"reps"`
	RIR        int       `json:"rir"`
	Timestamp  time.Time `json:"timestamp"`
	Notes      *string   `json:"notes"`
}

// RecoveryAssessmentRow is a row of the recovery_assessments table with the
// derived total score and volume adjustment.
type RecoveryAssessmentRow struct {
	ID               uuid.UUID `json:"id"`
	UserID           int       `json:"user_id"`
	Date             string    `json:"date"`
	SleepQuality     int       `json:"sleep_quality"`
	MuscleSoreness   int       `json:"muscle_soreness"`
	MentalMotivation int       `json:"mental_motivation"`
	TotalScore       int       `json:"total_score"`
	VolumeAdjustment string    `json:"volume_adjustment"`
	CreatedAt        time.Time `json:"created_at"`
}

// MuscleGroupSets is a per-muscle-group set count produced by the volume
// aggregation queries.
type MuscleGroupSets struct {
	MuscleGroup string
	Sets        int
}

// DatedMuscleGroupSets is a per-day, per-muscle-group completed set count
// used by the volume history aggregation.
type DatedMuscleGroupSets struct {
	Date        time.Time
	MuscleGroup string
	Sets        int
}

// ExerciseVolume pairs a program exercise's prescribed sets with the muscle
// groups it trains, for whole-program volume accounting.
type ExerciseVolume struct {
	Sets         int
	MuscleGroups []string
}
