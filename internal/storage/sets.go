package storage

import (
	"context"
	"fmt"

	"github.com/claude/periodize/internal/models"
	"github.com/google/uuid"
)

// InsertSet appends a logged set to a workout.
func (db *DB) InsertSet(ctx context.Context, row models.SetRow) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO sets (id, workout_id, exercise_id, set_number, weight_kg, reps, rir, logged_at, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		row.ID, row.WorkoutID, row.ExerciseID, row.SetNumber, row.WeightKg, row.Reps, row.RIR,
		row.Timestamp, row.Notes)
	if err != nil {
		return fmt.Errorf("inserting set: %w", err)
	}
	return nil
}

// SetsForWorkout retrieves every set logged for a workout in logging order.
func (db *DB) SetsForWorkout(ctx context.Context, workoutID uuid.UUID) ([]models.SetRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, workout_id, exercise_id, set_number, weight_kg, reps, rir, logged_at, notes
		 FROM sets
		 WHERE workout_id = $1
		 ORDER BY logged_at`,
		workoutID)
	if err != nil {
		return nil, fmt.Errorf("querying sets: %w", err)
	}
	defer rows.Close()

	var result []models.SetRow
	for rows.Next() {
		var s models.SetRow
		if err := rows.Scan(&s.ID, &s.WorkoutID, &s.ExerciseID, &s.SetNumber, &s.WeightKg,
			&s.Reps, &s.RIR, &s.Timestamp, &s.Notes); err != nil {
			return nil, fmt.Errorf("scanning set: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// CountSets returns how many sets of an exercise are already logged in a
// workout. Used to auto-assign the next set number.
func (db *DB) CountSets(ctx context.Context, workoutID, exerciseID uuid.UUID) (int, error) {
	var count int
	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM sets WHERE workout_id = $1 AND exercise_id = $2`,
		workoutID, exerciseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting sets: %w", err)
	}
	return count, nil
}
