package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/claude/periodize/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListExercises retrieves the exercise library, optionally filtered by
// muscle group and/or equipment.
func (db *DB) ListExercises(ctx context.Context, muscleGroup, equipment string) ([]models.ExerciseRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, muscle_groups, equipment
		 FROM exercises
		 WHERE ($1 = '' OR $1 = ANY(muscle_groups))
		   AND ($2 = '' OR equipment = $2)
		 ORDER BY name`,
		muscleGroup, equipment)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.ExerciseRow
	for rows.Next() {
		var e models.ExerciseRow
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroups, &e.Equipment); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// GetExercise retrieves a single exercise by ID.
func (db *DB) GetExercise(ctx context.Context, id uuid.UUID) (*models.ExerciseRow, error) {
	var e models.ExerciseRow
	err := db.Pool.QueryRow(ctx,
		`SELECT id, name, muscle_groups, equipment FROM exercises WHERE id = $1`,
		id).Scan(&e.ID, &e.Name, &e.MuscleGroups, &e.Equipment)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("exercise %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying exercise: %w", err)
	}
	return &e, nil
}

// ExercisesByName retrieves exercises matching the given names, keyed by
// name. Missing names are simply absent from the map.
func (db *DB) ExercisesByName(ctx context.Context, names []string) (map[string]models.ExerciseRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, muscle_groups, equipment FROM exercises WHERE name = ANY($1)`,
		names)
	if err != nil {
		return nil, fmt.Errorf("querying exercises by name: %w", err)
	}
	defer rows.Close()

	result := make(map[string]models.ExerciseRow, len(names))
	for rows.Next() {
		var e models.ExerciseRow
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroups, &e.Equipment); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result[e.Name] = e
	}
	return result, rows.Err()
}

// InsertExercises batch-inserts exercise library rows. Returns count inserted;
// rows whose name already exists are skipped.
func (db *DB) InsertExercises(ctx context.Context, rows []models.ExerciseRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := `INSERT INTO exercises (id, name, muscle_groups, equipment) VALUES `
	args := make([]any, 0, len(rows)*4)
	valueStrings := make([]string, 0, len(rows))

	for i, r := range rows {
		base := i * 4
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d)", base+1, base+2, base+3, base+4,
		))
		args = append(args, r.ID, r.Name, r.MuscleGroups, r.Equipment)
	}

	query += strings.Join(valueStrings, ",") + " ON CONFLICT (name) DO NOTHING"

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting exercises: %w", err)
	}
	return tag.RowsAffected(), nil
}
