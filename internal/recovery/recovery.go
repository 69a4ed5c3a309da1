// Package recovery implements the daily recovery check-in and the volume
// auto-regulation derived from it.
package recovery

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/claude/periodize/internal/models"
	"github.com/claude/periodize/internal/storage"
	"github.com/claude/periodize/internal/validate"
)

// Adjustment is the training-volume recommendation for a recovery score.
type Adjustment string

const (
	AdjustNone       Adjustment = "none"
	AdjustReduce1Set Adjustment = "reduce_1_set"
	AdjustReduce2Set Adjustment = "reduce_2_sets"
	AdjustRestDay    Adjustment = "rest_day"
)

// AdjustmentFor maps a total recovery score (3-15) to its recommendation.
func AdjustmentFor(totalScore int) Adjustment {
	switch {
	case totalScore >= 12:
		return AdjustNone
	case totalScore >= 9:
		return AdjustReduce1Set
	case totalScore >= 6:
		return AdjustReduce2Set
	default:
		return AdjustRestDay
	}
}

// Service records recovery assessments.
type Service struct {
	db  *storage.DB
	log *slog.Logger
}

func NewService(db *storage.DB, log *slog.Logger) *Service {
	return &Service{db: db, log: log}
}

// AssessmentParams is a day's three recovery subscores, each on a 1-5 scale.
// Soreness and motivation are phrased so higher is always better.
type AssessmentParams struct {
	Date             string
	SleepQuality     int
	MuscleSoreness   int
	MentalMotivation int
}

// Result is the derived outcome of an assessment.
type Result struct {
	TotalScore       int        `json:"total_score"`
	VolumeAdjustment Adjustment `json:"volume_adjustment"`
}

// Create validates and stores a recovery assessment, overwriting any earlier
// assessment for the same user and date.
func (s *Service) Create(ctx context.Context, userID int, p AssessmentParams) (*Result, error) {
	if err := validate.ISODate("date", p.Date); err != nil {
		return nil, err
	}
	if err := validate.RecoveryScore("sleep_quality", p.SleepQuality); err != nil {
		return nil, err
	}
	if err := validate.RecoveryScore("muscle_soreness", p.MuscleSoreness); err != nil {
		return nil, err
	}
	if err := validate.RecoveryScore("mental_motivation", p.MentalMotivation); err != nil {
		return nil, err
	}

	total := p.SleepQuality + p.MuscleSoreness + p.MentalMotivation
	adjustment := AdjustmentFor(total)

	row := models.RecoveryAssessmentRow{
		ID:               uuid.New(),
		UserID:           userID,
		Date:             p.Date,
		SleepQuality:     p.SleepQuality,
		MuscleSoreness:   p.MuscleSoreness,
		MentalMotivation: p.MentalMotivation,
		TotalScore:       total,
		VolumeAdjustment: string(adjustment),
	}
	if err := s.db.InsertRecoveryAssessment(ctx, row); err != nil {
		return nil, err
	}

	s.log.Info("recovery assessment recorded",
		"user_id", userID, "date", p.Date, "score", total, "adjustment", adjustment)
	return &Result{TotalScore: total, VolumeAdjustment: adjustment}, nil
}

// ByDate returns the stored assessment for a date, or storage.ErrNotFound.
func (s *Service) ByDate(ctx context.Context, userID int, date string) (*models.RecoveryAssessmentRow, error) {
	if err := validate.ISODate("date", date); err != nil {
		return nil, err
	}
	return s.db.RecoveryAssessmentByDate(ctx, userID, date)
}
