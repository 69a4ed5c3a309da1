package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/periodize/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListProgramExercises retrieves program exercises joined with exercise
// details, optionally filtered by program day and/or exercise, ordered by
// order index. Filters are bound as nullable parameters rather than spliced
// into the query text.
func (db *DB) ListProgramExercises(ctx context.Context, programDayID, exerciseID *uuid.UUID) ([]models.ProgramExerciseDetail, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT pe.id, pe.program_day_id, pe.exercise_id, pe.order_index, pe.sets, pe.reps, pe.rir,
		        e.name, e.muscle_groups, e.equipment
		 FROM program_exercises pe
		 JOIN exercises e ON pe.exercise_id = e.id
		 WHERE ($1::uuid IS NULL OR pe.program_day_id = $1)
		   AND ($2::uuid IS NULL OR pe.exercise_id = $2)
		 ORDER BY pe.order_index`,
		programDayID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("querying program exercises: %w", err)
	}
	defer rows.Close()

	var result []models.ProgramExerciseDetail
	for rows.Next() {
		var d models.ProgramExerciseDetail
		if err := rows.Scan(&d.ID, &d.ProgramDayID, &d.ExerciseID, &d.OrderIndex, &d.Sets, &d.Reps, &d.RIR,
			&d.ExerciseName, &d.MuscleGroups, &d.Equipment); err != nil {
			return nil, fmt.Errorf("scanning program exercise: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// GetProgramExercise retrieves a program exercise with its exercise details.
func (db *DB) GetProgramExercise(ctx context.Context, id uuid.UUID) (*models.ProgramExerciseDetail, error) {
	var d models.ProgramExerciseDetail
	err := db.Pool.QueryRow(ctx,
		`SELECT pe.id, pe.program_day_id, pe.exercise_id, pe.order_index, pe.sets, pe.reps, pe.rir,
		        e.name, e.muscle_groups, e.equipment
		 FROM program_exercises pe
		 JOIN exercises e ON pe.exercise_id = e.id
		 WHERE pe.id = $1`,
		id).Scan(&d.ID, &d.ProgramDayID, &d.ExerciseID, &d.OrderIndex, &d.Sets, &d.Reps, &d.RIR,
		&d.ExerciseName, &d.MuscleGroups, &d.Equipment)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("program exercise %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying program exercise: %w", err)
	}
	return &d, nil
}

// InsertProgramExercise inserts a program exercise. When orderIndex is nil
// the row is appended after the day's current maximum.
func (db *DB) InsertProgramExercise(ctx context.Context, row models.ProgramExerciseRow, orderIndex *int) (int, error) {
	var assigned int
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO program_exercises (id, program_day_id, exercise_id, order_index, sets, reps, rir)
		 VALUES ($1, $2, $3,
		         COALESCE($4::int, (SELECT COALESCE(MAX(order_index), 0) + 1
		                            FROM program_exercises WHERE program_day_id = $2)),
		         $5, $6, $7)
		 RETURNING order_index`,
		row.ID, row.ProgramDayID, row.ExerciseID, orderIndex, row.Sets, row.Reps, row.RIR,
	).Scan(&assigned)
	if err != nil {
		return 0, fmt.Errorf("inserting program exercise: %w", err)
	}
	return assigned, nil
}

// UpdateProgramExercise partially updates a program exercise. Nil fields are
// left unchanged.
func (db *DB) UpdateProgramExercise(ctx context.Context, id uuid.UUID, sets *int, reps *string, rir *int) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE program_exercises
		 SET sets = COALESCE($2, sets),
		     reps = COALESCE($3, reps),
		     rir  = COALESCE($4, rir)
		 WHERE id = $1`,
		id, sets, reps, rir)
	if err != nil {
		return fmt.Errorf("updating program exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("program exercise %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteProgramExercise removes a program exercise.
func (db *DB) DeleteProgramExercise(ctx context.Context, id uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM program_exercises WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting program exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("program exercise %s: %w", id, ErrNotFound)
	}
	return nil
}

// SwapProgramExercise replaces the exercise on a program exercise, leaving
// order index, sets, reps, and RIR untouched.
func (db *DB) SwapProgramExercise(ctx context.Context, id, newExerciseID uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE program_exercises SET exercise_id = $2 WHERE id = $1`,
		id, newExerciseID)
	if err != nil {
		return fmt.Errorf("swapping program exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("program exercise %s: %w", id, ErrNotFound)
	}
	return nil
}

// ReorderItem is one (program exercise, new order index) pair of a batch
// reorder.
type ReorderItem struct {
	ProgramExerciseID uuid.UUID `json:"program_exercise_id"`
	NewOrderIndex     int       `json:"new_order_index"`
}

// ReorderProgramExercises applies every order-index update in one
// transaction. A reference to a missing program exercise aborts the whole
// batch with ErrNotFound, leaving no item applied.
func (db *DB) ReorderProgramExercises(ctx context.Context, items []ReorderItem) error {
	return db.WithTx(ctx, func(tx pgx.Tx) error {
		return reorderAll(ctx, tx, items)
	})
}

// reorderAll applies the batch against a single transaction. The first
// failing or missing row aborts it so the surrounding transaction rolls
// back with nothing applied.
func reorderAll(ctx context.Context, ex execer, items []ReorderItem) error {
	for _, item := range items {
		tag, err := ex.Exec(ctx,
			`UPDATE program_exercises SET order_index = $2 WHERE id = $1`,
			item.ProgramExerciseID, item.NewOrderIndex)
		if err != nil {
			return fmt.Errorf("reordering program exercise: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("program exercise %s: %w", item.ProgramExerciseID, ErrNotFound)
		}
	}
	return nil
}

// ExerciseVolumesForProgram returns, for every program exercise across all
// of the program's days, its prescribed sets and the muscle groups its
// exercise trains. Input to the whole-program volume warning calculation.
func (db *DB) ExerciseVolumesForProgram(ctx context.Context, programID uuid.UUID) ([]models.ExerciseVolume, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT pe.sets, e.muscle_groups
		 FROM program_exercises pe
		 JOIN program_days pd ON pe.program_day_id = pd.id
		 JOIN exercises e ON pe.exercise_id = e.id
		 WHERE pd.program_id = $1`,
		programID)
	if err != nil {
		return nil, fmt.Errorf("querying program exercise volumes: %w", err)
	}
	defer rows.Close()

	var result []models.ExerciseVolume
	for rows.Next() {
		var v models.ExerciseVolume
		if err := rows.Scan(&v.Sets, &v.MuscleGroups); err != nil {
			return nil, fmt.Errorf("scanning exercise volume: %w", err)
		}
		result = append(result, v)
	}
	return result, rows.Err()
}
