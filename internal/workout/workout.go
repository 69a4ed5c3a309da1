// Package workout manages training sessions and the sets logged in them.
package workout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/claude/periodize/internal/models"
	"github.com/claude/periodize/internal/storage"
	"github.com/claude/periodize/internal/validate"
)

// Workout statuses.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// InvalidStatusError is returned for a status outside the known set.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid workout status %q", e.Status)
}

func validStatus(status string) bool {
	switch status {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Service manages workouts and set logging.
type Service struct {
	db  *storage.DB
	log *slog.Logger
}

func NewService(db *storage.DB, log *slog.Logger) *Service {
	return &Service{db: db, log: log}
}

// Create schedules a workout for a program day on the given date.
func (s *Service) Create(ctx context.Context, userID int, programDayID uuid.UUID, date time.Time) (*models.WorkoutRow, error) {
	if _, err := s.db.GetProgramDay(ctx, programDayID); err != nil {
		return nil, fmt.Errorf("looking up program day: %w", err)
	}
	row := models.WorkoutRow{
		ID:           uuid.New(),
		UserID:       userID,
		ProgramDayID: programDayID,
		Date:         date,
		Status:       StatusNotStarted,
	}
	if err := s.db.InsertWorkout(ctx, row); err != nil {
		return nil, err
	}
	return s.db.GetWorkout(ctx, row.ID)
}

// List returns the user's workouts, optionally bounded by date.
func (s *Service) List(ctx context.Context, userID int, start, end *time.Time) ([]models.WorkoutRow, error) {
	return s.db.ListWorkouts(ctx, userID, start, end)
}

// Get returns one workout with its program-day metadata.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.WorkoutRow, error) {
	return s.db.GetWorkout(ctx, id)
}

// UpdateStatus transitions a workout. Moving to in_progress stamps
// started_at; moving to completed stamps completed_at and fills the volume
// and RIR summaries from the logged sets when the caller did not supply
// them.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string, totalVolumeKg, averageRIR *float64) (*models.WorkoutRow, error) {
	if !validStatus(status) {
		return nil, &InvalidStatusError{Status: status}
	}
	existing, err := s.db.GetWorkout(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var startedAt, completedAt *time.Time
	switch status {
	case StatusInProgress:
		if existing.StartedAt == nil {
			startedAt = &now
		}
	case StatusCompleted:
		completedAt = &now
		if totalVolumeKg == nil || averageRIR == nil {
			sets, err := s.db.SetsForWorkout(ctx, id)
			if err != nil {
				return nil, err
			}
			volume, rir := summarizeSets(sets)
			if totalVolumeKg == nil {
				totalVolumeKg = &volume
			}
			if averageRIR == nil && len(sets) > 0 {
				averageRIR = &rir
			}
		}
	}

	if err := s.db.UpdateWorkoutStatus(ctx, id, status, startedAt, completedAt, totalVolumeKg, averageRIR); err != nil {
		return nil, err
	}
	s.log.Info("workout status updated", "workout_id", id, "status", status)
	return s.db.GetWorkout(ctx, id)
}

// summarizeSets returns total volume (weight x reps summed) and mean RIR.
func summarizeSets(sets []models.SetRow) (float64, float64) {
	var volume, rirSum float64
	for _, set := range sets {
		volume += set.WeightKg * float64(set.Reps)
		rirSum += float64(set.RIR)
	}
	if len(sets) == 0 {
		return 0, 0
	}
	return volume, rirSum / float64(len(sets))
}

// LogSetParams describes one performed set. SetNumber and Timestamp are
// optional; the next number in the workout and the current time are used
// when absent.
type LogSetParams struct {
	WorkoutID  uuid.UUID
	ExerciseID uuid.UUID
	SetNumber  *int
	WeightKg   float64
	Reps       int
	RIR        int
	Timestamp  *time.Time
	Notes      *string
}

// LogSet validates and appends a set to a workout.
func (s *Service) LogSet(ctx context.Context, p LogSetParams) (*models.SetRow, error) {
	if err := validate.SetParams(p.WeightKg, p.Reps, p.RIR); err != nil {
		return nil, err
	}
	if p.Notes != nil {
		if err := validate.Notes(*p.Notes); err != nil {
			return nil, err
		}
	}
	if _, err := s.db.GetWorkout(ctx, p.WorkoutID); err != nil {
		return nil, fmt.Errorf("looking up workout: %w", err)
	}
	if _, err := s.db.GetExercise(ctx, p.ExerciseID); err != nil {
		return nil, fmt.Errorf("looking up exercise: %w", err)
	}

	setNumber := 0
	if p.SetNumber != nil {
		setNumber = *p.SetNumber
	} else {
		count, err := s.db.CountSets(ctx, p.WorkoutID, p.ExerciseID)
		if err != nil {
			return nil, err
		}
		setNumber = count + 1
	}

	timestamp := time.Now()
	if p.Timestamp != nil {
		timestamp = *p.Timestamp
	}

	row := models.SetRow{
		ID:         uuid.New(),
		WorkoutID:  p.WorkoutID,
		ExerciseID: p.ExerciseID,
		SetNumber:  setNumber,
		WeightKg:   p.WeightKg,
		Reps:       p.Reps,
		RIR:        p.RIR,
		Timestamp:  timestamp,
		Notes:      p.Notes,
	}
	if err := s.db.InsertSet(ctx, row); err != nil {
		return nil, err
	}
	return &row, nil
}

// Sets returns a workout's logged sets in completion order.
func (s *Service) Sets(ctx context.Context, workoutID uuid.UUID) ([]models.SetRow, error) {
	return s.db.SetsForWorkout(ctx, workoutID)
}
