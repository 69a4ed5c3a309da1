package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OneRMPoint is a per-date best estimated one-rep max.
type OneRMPoint struct {
	Date        time.Time
	Estimated1RM float64
}

// OneRMProgression returns the best Epley-estimated 1RM per workout date for
// one exercise: weight x (1 + (reps - rir) / 30).
func (db *DB) OneRMProgression(ctx context.Context, userID int, exerciseID uuid.UUID, start, end time.Time) ([]OneRMPoint, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT w.date, MAX(s.weight_kg * (1 + (s.reps - s.rir) / 30.0))
		 FROM sets s
		 JOIN workouts w ON s.workout_id = w.id
		 WHERE w.user_id = $1 AND s.exercise_id = $2
		   AND w.date >= $3 AND w.date <= $4
		 GROUP BY w.date
		 ORDER BY w.date`,
		userID, exerciseID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying 1RM progression: %w", err)
	}
	defer rows.Close()

	var result []OneRMPoint
	for rows.Next() {
		var p OneRMPoint
		if err := rows.Scan(&p.Date, &p.Estimated1RM); err != nil {
			return nil, fmt.Errorf("scanning 1RM point: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// ConsistencyCounts holds raw workout counts for adherence metrics.
type ConsistencyCounts struct {
	CompletedWorkouts int
	TotalWorkouts     int
	AvgSessionSeconds *float64
}

// ConsistencyMetrics returns completed/total workout counts and the mean
// session duration for a user.
func (db *DB) ConsistencyMetrics(ctx context.Context, userID int) (*ConsistencyCounts, error) {
	var c ConsistencyCounts
	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FILTER (WHERE status = 'completed')::int,
		        COUNT(*)::int,
		        AVG(EXTRACT(EPOCH FROM (completed_at - started_at)))
		 FROM workouts
		 WHERE user_id = $1`,
		userID).Scan(&c.CompletedWorkouts, &c.TotalWorkouts, &c.AvgSessionSeconds)
	if err != nil {
		return nil, fmt.Errorf("querying consistency metrics: %w", err)
	}
	return &c, nil
}
