package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/periodize/internal/models"
	"github.com/google/uuid"
)

// CompletedSetsBetween counts completed sets per muscle group for a user in
// an inclusive date window. Only workouts with status 'completed' count, and
// each set counts in full toward every muscle group its exercise trains.
func (db *DB) CompletedSetsBetween(ctx context.Context, userID int, start, end time.Time) ([]models.MuscleGroupSets, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT mg.name, COUNT(s.id)::int
		 FROM sets s
		 JOIN workouts w ON s.workout_id = w.id
		 JOIN exercises e ON s.exercise_id = e.id
		 CROSS JOIN LATERAL unnest(e.muscle_groups) AS mg(name)
		 WHERE w.user_id = $1
		   AND w.status = 'completed'
		   AND w.date >= $2 AND w.date <= $3
		 GROUP BY mg.name`,
		userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying completed sets: %w", err)
	}
	defer rows.Close()

	var result []models.MuscleGroupSets
	for rows.Next() {
		var r models.MuscleGroupSets
		if err := rows.Scan(&r.MuscleGroup, &r.Sets); err != nil {
			return nil, fmt.Errorf("scanning completed sets: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// PlannedSetsForProgram sums prescribed sets per muscle group across every
// program day of a program. The program is a standing weekly template, so no
// date bound applies.
func (db *DB) PlannedSetsForProgram(ctx context.Context, programID uuid.UUID) ([]models.MuscleGroupSets, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT mg.name, SUM(pe.sets)::int
		 FROM program_exercises pe
		 JOIN program_days pd ON pe.program_day_id = pd.id
		 JOIN exercises e ON pe.exercise_id = e.id
		 CROSS JOIN LATERAL unnest(e.muscle_groups) AS mg(name)
		 WHERE pd.program_id = $1
		 GROUP BY mg.name`,
		programID)
	if err != nil {
		return nil, fmt.Errorf("querying planned sets: %w", err)
	}
	defer rows.Close()

	var result []models.MuscleGroupSets
	for rows.Next() {
		var r models.MuscleGroupSets
		if err := rows.Scan(&r.MuscleGroup, &r.Sets); err != nil {
			return nil, fmt.Errorf("scanning planned sets: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// CompletedSetsByDate counts completed sets per workout date and muscle
// group, optionally filtered to a single muscle group. The caller groups the
// days into ISO weeks.
func (db *DB) CompletedSetsByDate(ctx context.Context, userID int, start, end time.Time, muscleGroup string) ([]models.DatedMuscleGroupSets, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT w.date, mg.name, COUNT(s.id)::int
		 FROM sets s
		 JOIN workouts w ON s.workout_id = w.id
		 JOIN exercises e ON s.exercise_id = e.id
		 CROSS JOIN LATERAL unnest(e.muscle_groups) AS mg(name)
		 WHERE w.user_id = $1
		   AND w.status = 'completed'
		   AND w.date >= $2 AND w.date <= $3
		   AND ($4 = '' OR mg.name = $4)
		 GROUP BY w.date, mg.name
		 ORDER BY w.date`,
		userID, start, end, muscleGroup)
	if err != nil {
		return nil, fmt.Errorf("querying completed sets by date: %w", err)
	}
	defer rows.Close()

	var result []models.DatedMuscleGroupSets
	for rows.Next() {
		var r models.DatedMuscleGroupSets
		if err := rows.Scan(&r.Date, &r.MuscleGroup, &r.Sets); err != nil {
			return nil, fmt.Errorf("scanning completed sets by date: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
