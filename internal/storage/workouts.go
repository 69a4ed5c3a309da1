package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/periodize/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InsertWorkout inserts a workout session row.
func (db *DB) InsertWorkout(ctx context.Context, row models.WorkoutRow) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO workouts (id, user_id, program_day_id, date, status)
		 VALUES ($1, $2, $3, $4, $5)`,
		row.ID, row.UserID, row.ProgramDayID, row.Date, row.Status)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}
	return nil
}

// GetWorkout retrieves a workout by ID with its day name and type.
func (db *DB) GetWorkout(ctx context.Context, id uuid.UUID) (*models.WorkoutRow, error) {
	var w models.WorkoutRow
	err := db.Pool.QueryRow(ctx,
		`SELECT w.id, w.user_id, w.program_day_id, w.date, w.status,
		        w.started_at, w.completed_at, w.total_volume_kg, w.average_rir,
		        pd.day_name, pd.day_type
		 FROM workouts w
		 LEFT JOIN program_days pd ON w.program_day_id = pd.id
		 WHERE w.id = $1`,
		id).Scan(&w.ID, &w.UserID, &w.ProgramDayID, &w.Date, &w.Status,
		&w.StartedAt, &w.CompletedAt, &w.TotalVolumeKg, &w.AverageRIR,
		&w.DayName, &w.DayType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("workout %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying workout: %w", err)
	}
	return &w, nil
}

// ListWorkouts retrieves a user's workouts newest first, optionally bounded
// by an inclusive date range.
func (db *DB) ListWorkouts(ctx context.Context, userID int, start, end *time.Time) ([]models.WorkoutRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT w.id, w.user_id, w.program_day_id, w.date, w.status,
		        w.started_at, w.completed_at, w.total_volume_kg, w.average_rir,
		        pd.day_name, pd.day_type
		 FROM workouts w
		 LEFT JOIN program_days pd ON w.program_day_id = pd.id
		 WHERE w.user_id = $1
		   AND ($2::date IS NULL OR w.date >= $2)
		   AND ($3::date IS NULL OR w.date <= $3)
		 ORDER BY w.date DESC`,
		userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutRow
	for rows.Next() {
		var w models.WorkoutRow
		if err := rows.Scan(&w.ID, &w.UserID, &w.ProgramDayID, &w.Date, &w.Status,
			&w.StartedAt, &w.CompletedAt, &w.TotalVolumeKg, &w.AverageRIR,
			&w.DayName, &w.DayType); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

// UpdateWorkoutStatus updates a workout's status and optional session
// metrics. startedAt/completedAt are stamped by the caller.
func (db *DB) UpdateWorkoutStatus(ctx context.Context, id uuid.UUID, status string, startedAt, completedAt *time.Time, totalVolumeKg, averageRIR *float64) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE workouts
		 SET status = $2,
		     started_at = COALESCE($3, started_at),
		     completed_at = $4,
		     total_volume_kg = COALESCE($5, total_volume_kg),
		     average_rir = COALESCE($6, average_rir)
		 WHERE id = $1`,
		id, status, startedAt, completedAt, totalVolumeKg, averageRIR)
	if err != nil {
		return fmt.Errorf("updating workout status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workout %s: %w", id, ErrNotFound)
	}
	return nil
}
