package program

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/claude/periodize/internal/models"
	"github.com/claude/periodize/internal/storage"
	"github.com/claude/periodize/internal/validate"
)

// ErrMissingTargetPhase is returned by AdvancePhase when a manual advance
// omits the phase to jump to.
var ErrMissingTargetPhase = errors.New("manual phase advance requires a target phase")

// ErrProgramExists is returned by CreateDefault when the user already has a
// program.
var ErrProgramExists = errors.New("program already exists")

// IncompatibleSwapError is returned when a swap target trains none of the
// muscle groups of the exercise it would replace.
type IncompatibleSwapError struct {
	OldName   string
	NewName   string
	OldGroups []string
	NewGroups []string
}

func (e *IncompatibleSwapError) Error() string {
	return fmt.Sprintf("cannot swap %s for %s: no shared muscle groups (%v vs %v)",
		e.OldName, e.NewName, e.OldGroups, e.NewGroups)
}

// Service manages training programs and their exercise slots.
type Service struct {
	db  *storage.DB
	log *slog.Logger
}

func NewService(db *storage.DB, log *slog.Logger) *Service {
	return &Service{db: db, log: log}
}

// Tree is a program with its days and each day's exercise slots.
type Tree struct {
	Program models.ProgramRow `json:"program"`
	Days    []TreeDay         `json:"days"`
}

type TreeDay struct {
	models.ProgramDayRow
	Exercises []models.ProgramExerciseDetail `json:"exercises"`
}

// Get returns the full program tree.
func (s *Service) Get(ctx context.Context, programID uuid.UUID) (*Tree, error) {
	prog, err := s.db.GetProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	days, err := s.db.ProgramDays(ctx, programID)
	if err != nil {
		return nil, err
	}
	tree := &Tree{Program: *prog, Days: make([]TreeDay, 0, len(days))}
	for _, d := range days {
		exercises, err := s.db.ListProgramExercises(ctx, &d.ID, nil)
		if err != nil {
			return nil, err
		}
		tree.Days = append(tree.Days, TreeDay{ProgramDayRow: d, Exercises: exercises})
	}
	return tree, nil
}

// Active returns the user's most recently created program as a tree.
func (s *Service) Active(ctx context.Context, userID int) (*Tree, error) {
	prog, err := s.db.ActiveProgram(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, prog.ID)
}

// ListParams filters a program-exercise listing.
type ListParams struct {
	ProgramDayID *uuid.UUID
	ExerciseID   *uuid.UUID
}

// List returns program-exercise slots matching the filters.
func (s *Service) List(ctx context.Context, p ListParams) ([]models.ProgramExerciseDetail, error) {
	return s.db.ListProgramExercises(ctx, p.ProgramDayID, p.ExerciseID)
}

// CreateParams describes a new program-exercise slot.
type CreateParams struct {
	ProgramDayID uuid.UUID
	ExerciseID   uuid.UUID
	TargetSets   int
	RepRange     string
	TargetRIR    int
	OrderIndex   *int
}

// CreateResult carries the stored slot plus a volume warning, if any.
type CreateResult struct {
	Exercise models.ProgramExerciseDetail `json:"program_exercise"`
	Warning  string                       `json:"warning,omitempty"`
}

// Create adds an exercise slot to a program day, flagging the change when it
// would push any trained muscle group past its weekly maximum.
func (s *Service) Create(ctx context.Context, p CreateParams) (*CreateResult, error) {
	if err := validate.IntRange("target_sets", p.TargetSets, validate.TargetSetsMin, validate.TargetSetsMax); err != nil {
		return nil, err
	}
	if err := validate.RepRange(p.RepRange); err != nil {
		return nil, err
	}
	if err := validate.IntRange("target_rir", p.TargetRIR, validate.RIRMin, validate.RIRMax); err != nil {
		return nil, err
	}
	day, err := s.db.GetProgramDay(ctx, p.ProgramDayID)
	if err != nil {
		return nil, fmt.Errorf("looking up program day: %w", err)
	}
	ex, err := s.db.GetExercise(ctx, p.ExerciseID)
	if err != nil {
		return nil, fmt.Errorf("looking up exercise: %w", err)
	}

	volumes, err := s.db.ExerciseVolumesForProgram(ctx, day.ProgramID)
	if err != nil {
		return nil, err
	}
	warning := volumeWarning(volumes, ex.MuscleGroups, p.TargetSets, opAdd)

	row := models.ProgramExerciseRow{
		ID:           uuid.New(),
		ProgramDayID: p.ProgramDayID,
		ExerciseID:   p.ExerciseID,
		Sets:         p.TargetSets,
		Reps:         p.RepRange,
		RIR:          p.TargetRIR,
	}
	if _, err := s.db.InsertProgramExercise(ctx, row, p.OrderIndex); err != nil {
		return nil, err
	}
	detail, err := s.db.GetProgramExercise(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	s.log.Info("program exercise added",
		"program_exercise_id", row.ID, "exercise", ex.Name, "sets", p.TargetSets)
	return &CreateResult{Exercise: *detail, Warning: warning}, nil
}

// UpdateParams holds the optional fields of a slot update.
type UpdateParams struct {
	TargetSets *int
	RepRange   *string
	TargetRIR  *int
}

// UpdateResult reports whether anything changed, the slot after the update,
// and a volume warning when the set count changed.
type UpdateResult struct {
	Updated  bool                          `json:"updated"`
	Exercise *models.ProgramExerciseDetail `json:"program_exercise,omitempty"`
	Warning  string                        `json:"warning,omitempty"`
}

// Update applies a partial update to an exercise slot.
func (s *Service) Update(ctx context.Context, id uuid.UUID, p UpdateParams) (*UpdateResult, error) {
	if p.TargetSets == nil && p.RepRange == nil && p.TargetRIR == nil {
		return &UpdateResult{Updated: false}, nil
	}
	if p.TargetSets != nil {
		if err := validate.IntRange("target_sets", *p.TargetSets, validate.TargetSetsMin, validate.TargetSetsMax); err != nil {
			return nil, err
		}
	}
	if p.RepRange != nil {
		if err := validate.RepRange(*p.RepRange); err != nil {
			return nil, err
		}
	}
	if p.TargetRIR != nil {
		if err := validate.IntRange("target_rir", *p.TargetRIR, validate.RIRMin, validate.RIRMax); err != nil {
			return nil, err
		}
	}

	existing, err := s.db.GetProgramExercise(ctx, id)
	if err != nil {
		return nil, err
	}

	var warning string
	if p.TargetSets != nil && *p.TargetSets != existing.Sets {
		day, err := s.db.GetProgramDay(ctx, existing.ProgramDayID)
		if err != nil {
			return nil, err
		}
		volumes, err := s.db.ExerciseVolumesForProgram(ctx, day.ProgramID)
		if err != nil {
			return nil, err
		}
		warning = volumeWarning(volumes, existing.MuscleGroups, *p.TargetSets-existing.Sets, opUpdate)
	}

	if err := s.db.UpdateProgramExercise(ctx, id, p.TargetSets, p.RepRange, p.TargetRIR); err != nil {
		return nil, err
	}
	detail, err := s.db.GetProgramExercise(ctx, id)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{Updated: true, Exercise: detail, Warning: warning}, nil
}

// DeleteResult carries a volume warning when removal would leave a trained
// muscle group under its weekly minimum.
type DeleteResult struct {
	Deleted bool   `json:"deleted"`
	Warning string `json:"warning,omitempty"`
}

// Delete removes an exercise slot from its program day.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	existing, err := s.db.GetProgramExercise(ctx, id)
	if err != nil {
		return nil, err
	}
	day, err := s.db.GetProgramDay(ctx, existing.ProgramDayID)
	if err != nil {
		return nil, err
	}
	volumes, err := s.db.ExerciseVolumesForProgram(ctx, day.ProgramID)
	if err != nil {
		return nil, err
	}
	warning := volumeWarning(volumes, existing.MuscleGroups, -existing.Sets, opDelete)

	if err := s.db.DeleteProgramExercise(ctx, id); err != nil {
		return nil, err
	}
	s.log.Info("program exercise removed", "program_exercise_id", id, "exercise", existing.ExerciseName)
	return &DeleteResult{Deleted: true, Warning: warning}, nil
}

// SwapResult is the slot after its exercise was replaced.
type SwapResult struct {
	Exercise models.ProgramExerciseDetail `json:"program_exercise"`
	OldName  string                       `json:"old_exercise_name"`
	NewName  string                       `json:"new_exercise_name"`
}

// Swap replaces the exercise in a slot with another exercise that trains at
// least one of the same muscle groups. Sets, reps, and RIR are kept.
func (s *Service) Swap(ctx context.Context, id, newExerciseID uuid.UUID) (*SwapResult, error) {
	existing, err := s.db.GetProgramExercise(ctx, id)
	if err != nil {
		return nil, err
	}
	replacement, err := s.db.GetExercise(ctx, newExerciseID)
	if err != nil {
		return nil, fmt.Errorf("looking up replacement exercise: %w", err)
	}
	if !sharesMuscleGroup(existing.MuscleGroups, replacement.MuscleGroups) {
		return nil, &IncompatibleSwapError{
			OldName:   existing.ExerciseName,
			NewName:   replacement.Name,
			OldGroups: existing.MuscleGroups,
			NewGroups: replacement.MuscleGroups,
		}
	}
	if err := s.db.SwapProgramExercise(ctx, id, newExerciseID); err != nil {
		return nil, err
	}
	detail, err := s.db.GetProgramExercise(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info("program exercise swapped",
		"program_exercise_id", id, "old", existing.ExerciseName, "new", replacement.Name)
	return &SwapResult{Exercise: *detail, OldName: existing.ExerciseName, NewName: replacement.Name}, nil
}

// Reorder rewrites the ordering of slots within a day in one transaction.
// Every referenced slot must exist or the whole batch is rolled back.
func (s *Service) Reorder(ctx context.Context, items []storage.ReorderItem) error {
	if len(items) == 0 {
		return nil
	}
	return s.db.ReorderProgramExercises(ctx, items)
}

// AdvanceResult describes a completed phase transition.
type AdvanceResult struct {
	PreviousPhase    Phase   `json:"previous_phase"`
	NewPhase         Phase   `json:"new_phase"`
	VolumeMultiplier float64 `json:"volume_multiplier"`
	ExercisesUpdated int     `json:"exercises_updated"`
}

// AdvancePhase moves a program's mesocycle to the next phase, or to an
// explicit target phase when manual is set, rescaling every slot's target
// sets by the transition multiplier. The rescale and the phase flip happen
// in a single transaction.
func (s *Service) AdvancePhase(ctx context.Context, programID uuid.UUID, manual bool, target string) (*AdvanceResult, error) {
	prog, err := s.db.GetProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	current, err := ParsePhase(prog.MesocyclePhase)
	if err != nil {
		return nil, err
	}

	var next Phase
	if manual {
		if target == "" {
			return nil, ErrMissingTargetPhase
		}
		next, err = ParsePhase(target)
		if err != nil {
			return nil, err
		}
	} else {
		next = current.Next()
	}

	multiplier := Multiplier(current, next)
	updated, err := s.db.ApplyPhaseAdvance(ctx, programID, string(next), func(sets int) int {
		return RescaleSets(sets, multiplier)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("mesocycle phase advanced",
		"program_id", programID, "from", current, "to", next,
		"multiplier", multiplier, "exercises_updated", updated)
	return &AdvanceResult{
		PreviousPhase:    current,
		NewPhase:         next,
		VolumeMultiplier: multiplier,
		ExercisesUpdated: updated,
	}, nil
}

// CreateDefault seeds the standard six-day push/pull/legs program for a user
// and schedules today's workout. Fails with ErrProgramExists if the user
// already has a program.
func (s *Service) CreateDefault(ctx context.Context, userID int) (*Tree, error) {
	if _, err := s.db.ActiveProgram(ctx, userID); err == nil {
		return nil, ErrProgramExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	names := templateExerciseNames()
	byName, err := s.db.ExercisesByName(ctx, names)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("exercise %q not found: %w", name, storage.ErrNotFound)
		}
	}

	prog := models.ProgramRow{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           defaultProgramName,
		MesocycleWeek:  1,
		MesocyclePhase: string(PhaseMEV),
	}
	var days []models.ProgramDayRow
	var exercises []models.ProgramExerciseRow
	for _, td := range defaultTemplate {
		day := models.ProgramDayRow{
			ID:        uuid.New(),
			ProgramID: prog.ID,
			DayOfWeek: td.DayOfWeek,
			DayName:   td.Name,
			DayType:   td.Type,
		}
		days = append(days, day)
		for i, te := range td.Exercises {
			exercises = append(exercises, models.ProgramExerciseRow{
				ID:           uuid.New(),
				ProgramDayID: day.ID,
				ExerciseID:   byName[te.Exercise].ID,
				OrderIndex:   i + 1,
				Sets:         te.Sets,
				Reps:         te.Reps,
				RIR:          te.RIR,
			})
		}
	}

	// Schedule today's session on the matching program day. Sunday maps to
	// the last training day of the split.
	today := time.Now()
	dayMapping := [7]int{5, 0, 1, 2, 3, 4, 5}
	dayIdx := dayMapping[int(today.Weekday())]
	workout := models.WorkoutRow{
		ID:           uuid.New(),
		UserID:       userID,
		ProgramDayID: days[dayIdx].ID,
		Date:         today,
		Status:       "not_started",
	}

	if err := s.db.CreateProgram(ctx, prog, days, exercises, &workout); err != nil {
		return nil, err
	}
	s.log.Info("default program created", "program_id", prog.ID, "user_id", userID)
	return s.Get(ctx, prog.ID)
}
