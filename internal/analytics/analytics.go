// Package analytics derives strength and adherence metrics from logged
// training data.
package analytics

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/claude/periodize/internal/storage"
)

// EstimateOneRM estimates a one-rep max with the RIR-adjusted Epley formula,
// rounded to one decimal place. Reps held in reserve count as reps the lifter
// could have done.
func EstimateOneRM(weightKg float64, reps, rir int) float64 {
	raw := weightKg * (1 + float64(reps-rir)/30)
	return math.Round(raw*10) / 10
}

// Service answers analytics queries.
type Service struct {
	db  *storage.DB
	log *slog.Logger
}

func NewService(db *storage.DB, log *slog.Logger) *Service {
	return &Service{db: db, log: log}
}

// ProgressionPoint is the best estimated 1RM of one training day.
type ProgressionPoint struct {
	Date         string  `json:"date"`
	Estimated1RM float64 `json:"estimated_1rm"`
}

// OneRMProgression returns the per-day best estimated 1RM for an exercise
// over a date range, oldest first.
func (s *Service) OneRMProgression(ctx context.Context, userID int, exerciseID uuid.UUID, start, end time.Time) ([]ProgressionPoint, error) {
	rows, err := s.db.OneRMProgression(ctx, userID, exerciseID, start, end)
	if err != nil {
		return nil, err
	}
	points := make([]ProgressionPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, ProgressionPoint{
			Date:         row.Date.Format("2006-01-02"),
			Estimated1RM: math.Round(row.Estimated1RM*10) / 10,
		})
	}
	return points, nil
}

// Consistency summarizes workout adherence.
type Consistency struct {
	AdherenceRate      float64 `json:"adherence_rate"`
	AvgSessionDuration float64 `json:"avg_session_duration"`
	TotalWorkouts      int     `json:"total_workouts"`
}

// ConsistencyMetrics reports the completed share of scheduled workouts,
// rounded to three decimals, and the mean completed-session duration in
// seconds.
func (s *Service) ConsistencyMetrics(ctx context.Context, userID int) (*Consistency, error) {
	counts, err := s.db.ConsistencyMetrics(ctx, userID)
	if err != nil {
		return nil, err
	}

	adherence := 0.0
	if counts.TotalWorkouts > 0 {
		adherence = float64(counts.CompletedWorkouts) / float64(counts.TotalWorkouts)
	}
	avgDuration := 0.0
	if counts.AvgSessionSeconds != nil {
		avgDuration = *counts.AvgSessionSeconds
	}
	return &Consistency{
		AdherenceRate:      math.Round(adherence*1000) / 1000,
		AvgSessionDuration: avgDuration,
		TotalWorkouts:      counts.TotalWorkouts,
	}, nil
}
