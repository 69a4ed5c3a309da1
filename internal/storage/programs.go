package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/periodize/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ActiveProgram retrieves the user's active program: the latest one by
// creation time.
func (db *DB) ActiveProgram(ctx context.Context, userID int) (*models.ProgramRow, error) {
	var p models.ProgramRow
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, mesocycle_week, mesocycle_phase, created_at
		 FROM programs
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userID).Scan(&p.ID, &p.UserID, &p.Name, &p.MesocycleWeek, &p.MesocyclePhase, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("active program for user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying active program: %w", err)
	}
	return &p, nil
}

// GetProgram retrieves a program by ID.
func (db *DB) GetProgram(ctx context.Context, id uuid.UUID) (*models.ProgramRow, error) {
	var p models.ProgramRow
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, mesocycle_week, mesocycle_phase, created_at
		 FROM programs WHERE id = $1`,
		id).Scan(&p.ID, &p.UserID, &p.Name, &p.MesocycleWeek, &p.MesocyclePhase, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("program %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying program: %w", err)
	}
	return &p, nil
}

// ProgramDays retrieves the days of a program ordered by day of week.
func (db *DB) ProgramDays(ctx context.Context, programID uuid.UUID) ([]models.ProgramDayRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, program_id, day_of_week, day_name, day_type
		 FROM program_days
		 WHERE program_id = $1
		 ORDER BY day_of_week`,
		programID)
	if err != nil {
		return nil, fmt.Errorf("querying program days: %w", err)
	}
	defer rows.Close()

	var result []models.ProgramDayRow
	for rows.Next() {
		var d models.ProgramDayRow
		if err := rows.Scan(&d.ID, &d.ProgramID, &d.DayOfWeek, &d.DayName, &d.DayType); err != nil {
			return nil, fmt.Errorf("scanning program day: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// GetProgramDay retrieves a single program day by ID.
func (db *DB) GetProgramDay(ctx context.Context, id uuid.UUID) (*models.ProgramDayRow, error) {
	var d models.ProgramDayRow
	err := db.Pool.QueryRow(ctx,
		`SELECT id, program_id, day_of_week, day_name, day_type FROM program_days WHERE id = $1`,
		id).Scan(&d.ID, &d.ProgramID, &d.DayOfWeek, &d.DayName, &d.DayType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("program day %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying program day: %w", err)
	}
	return &d, nil
}

// CreateProgram inserts a program with its days, exercises, and an optional
// first workout in a single transaction.
func (db *DB) CreateProgram(ctx context.Context, program models.ProgramRow, days []models.ProgramDayRow, exercises []models.ProgramExerciseRow, workout *models.WorkoutRow) error {
	return db.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO programs (id, user_id, name, mesocycle_week, mesocycle_phase, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			program.ID, program.UserID, program.Name, program.MesocycleWeek, program.MesocyclePhase, program.CreatedAt)
		if err != nil {
			return fmt.Errorf("inserting program: %w", err)
		}

		for _, d := range days {
			_, err := tx.Exec(ctx,
				`INSERT INTO program_days (id, program_id, day_of_week, day_name, day_type)
				 VALUES ($1, $2, $3, $4, $5)`,
				d.ID, d.ProgramID, d.DayOfWeek, d.DayName, d.DayType)
			if err != nil {
				return fmt.Errorf("inserting program day: %w", err)
			}
		}

		for _, e := range exercises {
			_, err := tx.Exec(ctx,
				`INSERT INTO program_exercises (id, program_day_id, exercise_id, order_index, sets, reps, rir)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				e.ID, e.ProgramDayID, e.ExerciseID, e.OrderIndex, e.Sets, e.Reps, e.RIR)
			if err != nil {
				return fmt.Errorf("inserting program exercise: %w", err)
			}
		}

		if workout != nil {
			_, err := tx.Exec(ctx,
				`INSERT INTO workouts (id, user_id, program_day_id, date, status)
				 VALUES ($1, $2, $3, $4, $5)`,
				workout.ID, workout.UserID, workout.ProgramDayID, workout.Date, workout.Status)
			if err != nil {
				return fmt.Errorf("inserting first workout: %w", err)
			}
		}

		return nil
	})
}

// ApplyPhaseAdvance rescales every program exercise with the given function,
// sets the program's phase, and resets its mesocycle week to 1, all in one
// transaction. Returns the number of exercises updated.
func (db *DB) ApplyPhaseAdvance(ctx context.Context, programID uuid.UUID, newPhase string, rescale func(sets int) int) (int, error) {
	var updated int
	err := db.WithTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			`SELECT pe.id, pe.sets
			 FROM program_exercises pe
			 JOIN program_days pd ON pe.program_day_id = pd.id
			 WHERE pd.program_id = $1
			 FOR UPDATE`,
			programID)
		if err != nil {
			return fmt.Errorf("locking program exercises: %w", err)
		}

		var targets []rescaleTarget
		for rows.Next() {
			var t rescaleTarget
			if err := rows.Scan(&t.id, &t.sets); err != nil {
				rows.Close()
				return fmt.Errorf("scanning program exercise: %w", err)
			}
			targets = append(targets, t)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		if err := rescaleAll(ctx, tx, targets, rescale); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx,
			`UPDATE programs SET mesocycle_phase = $2, mesocycle_week = 1 WHERE id = $1`,
			programID, newPhase)
		if err != nil {
			return fmt.Errorf("updating program phase: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("program %s: %w", programID, ErrNotFound)
		}

		updated = len(targets)
		return nil
	})
	return updated, err
}

// rescaleTarget is one program exercise row locked for a phase advance.
type rescaleTarget struct {
	id   uuid.UUID
	sets int
}

// rescaleAll rewrites every locked row's set count inside the phase-advance
// transaction. Any failure aborts the transaction so either every row is
// rescaled or none is.
func rescaleAll(ctx context.Context, ex execer, targets []rescaleTarget, rescale func(sets int) int) error {
	for _, t := range targets {
		_, err := ex.Exec(ctx,
			`UPDATE program_exercises SET sets = $2 WHERE id = $1`,
			t.id, rescale(t.sets))
		if err != nil {
			return fmt.Errorf("rescaling program exercise: %w", err)
		}
	}
	return nil
}
