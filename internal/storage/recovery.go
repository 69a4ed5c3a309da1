package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/periodize/internal/models"
	"github.com/jackc/pgx/v5"
)

// InsertRecoveryAssessment inserts a daily recovery check-in. A second
// assessment on the same date replaces the first.
func (db *DB) InsertRecoveryAssessment(ctx context.Context, row models.RecoveryAssessmentRow) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO recovery_assessments
		   (id, user_id, date, sleep_quality, muscle_soreness, mental_motivation,
		    total_score, volume_adjustment, created_at)
		 VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (user_id, date) DO UPDATE
		   SET sleep_quality = $4, muscle_soreness = $5, mental_motivation = $6,
		       total_score = $7, volume_adjustment = $8, created_at = $9`,
		row.ID, row.UserID, row.Date, row.SleepQuality, row.MuscleSoreness, row.MentalMotivation,
		row.TotalScore, row.VolumeAdjustment, row.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting recovery assessment: %w", err)
	}
	return nil
}

// RecoveryAssessmentByDate retrieves a user's assessment for a given date.
func (db *DB) RecoveryAssessmentByDate(ctx context.Context, userID int, date string) (*models.RecoveryAssessmentRow, error) {
	var r models.RecoveryAssessmentRow
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), sleep_quality, muscle_soreness, mental_motivation,
		        total_score, volume_adjustment, created_at
		 FROM recovery_assessments
		 WHERE user_id = $1 AND date = $2`,
		userID, date).Scan(&r.ID, &r.UserID, &r.Date, &r.SleepQuality, &r.MuscleSoreness,
		&r.MentalMotivation, &r.TotalScore, &r.VolumeAdjustment, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("recovery assessment for %s: %w", date, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying recovery assessment: %w", err)
	}
	return &r, nil
}
