// Package volume aggregates weekly training volume per muscle group and
// classifies it against the MEV/MAV/MRV landmarks.
package volume

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/claude/periodize/internal/landmarks"
	"github.com/claude/periodize/internal/models"
	"github.com/claude/periodize/internal/storage"
	"github.com/claude/periodize/internal/validate"
)

// Service computes volume analytics over the storage layer.
type Service struct {
	db  *storage.DB
	log *slog.Logger
}

func NewService(db *storage.DB, log *slog.Logger) *Service {
	return &Service{db: db, log: log}
}

// MuscleGroupTracking is one muscle group's position in the current week.
type MuscleGroupTracking struct {
	MuscleGroup          string         `json:"muscle_group"`
	CompletedSets        int            `json:"completed_sets"`
	PlannedSets          int            `json:"planned_sets"`
	RemainingSets        int            `json:"remaining_sets"`
	MEV                  int            `json:"mev"`
	MAV                  int            `json:"mav"`
	MRV                  int            `json:"mrv"`
	CompletionPercentage float64        `json:"completion_percentage"`
	Zone                 landmarks.Zone `json:"zone"`
	Warning              *string        `json:"warning"`
}

// CurrentWeek is the current-week volume report.
type CurrentWeek struct {
	WeekStart    string                `json:"week_start"`
	WeekEnd      string                `json:"week_end"`
	MuscleGroups []MuscleGroupTracking `json:"muscle_groups"`
}

// warningPtr converts the landmark warning to its nullable JSON form.
func warningPtr(zone landmarks.Zone, muscleGroup string) *string {
	if msg := landmarks.Warning(zone, muscleGroup); msg != "" {
		return &msg
	}
	return nil
}

// weekBounds returns the Monday and Sunday enclosing t. Weeks run Monday
// through Sunday, so a Sunday belongs to the week that started six days
// earlier.
func weekBounds(t time.Time) (time.Time, time.Time) {
	back := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		back = 6
	}
	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -back)
	return monday, monday.AddDate(0, 0, 6)
}

// mergeWeek combines completed and planned per-group counts into tracking
// rows sorted by muscle group name.
func mergeWeek(completed, planned []models.MuscleGroupSets) []MuscleGroupTracking {
	type pair struct{ completed, planned int }
	merged := make(map[string]*pair)
	for _, row := range completed {
		merged[row.MuscleGroup] = &pair{completed: row.Sets}
	}
	for _, row := range planned {
		if p, ok := merged[row.MuscleGroup]; ok {
			p.planned = row.Sets
		} else {
			merged[row.MuscleGroup] = &pair{planned: row.Sets}
		}
	}

	out := make([]MuscleGroupTracking, 0, len(merged))
	for mg, p := range merged {
		lm := landmarks.Lookup(mg)
		pct := 0.0
		if p.planned > 0 {
			pct = math.Round(float64(p.completed)/float64(p.planned)*1000) / 10
		}
		zone := landmarks.ClassifyOnTrack(p.completed, p.planned, lm)
		out = append(out, MuscleGroupTracking{
			MuscleGroup:          mg,
			CompletedSets:        p.completed,
			PlannedSets:          p.planned,
			RemainingSets:        max(0, p.planned-p.completed),
			MEV:                  lm.MEV,
			MAV:                  lm.MAV,
			MRV:                  lm.MRV,
			CompletionPercentage: pct,
			Zone:                 zone,
			Warning:              warningPtr(zone, mg),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MuscleGroup < out[j].MuscleGroup })
	return out
}

// CurrentWeekVolume reports completed versus planned sets per muscle group
// for the week containing now. Planned sets come from the user's active
// program; without one, planned counts are zero.
func (s *Service) CurrentWeekVolume(ctx context.Context, userID int, now time.Time) (*CurrentWeek, error) {
	start, end := weekBounds(now)

	completed, err := s.db.CompletedSetsBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	var planned []models.MuscleGroupSets
	prog, err := s.db.ActiveProgram(ctx, userID)
	switch {
	case err == nil:
		planned, err = s.db.PlannedSetsForProgram(ctx, prog.ID)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, storage.ErrNotFound):
		// no active program, completed sets only
	default:
		return nil, err
	}

	return &CurrentWeek{
		WeekStart:    start.Format("2006-01-02"),
		WeekEnd:      end.Format("2006-01-02"),
		MuscleGroups: mergeWeek(completed, planned),
	}, nil
}

// HistoricalGroup is a muscle group's completed volume in one past week.
type HistoricalGroup struct {
	MuscleGroup   string `json:"muscle_group"`
	CompletedSets int    `json:"completed_sets"`
	MEV           int    `json:"mev"`
	MAV           int    `json:"mav"`
	MRV           int    `json:"mrv"`
}

// HistoryWeek groups completed volume by the Monday starting the week.
type HistoryWeek struct {
	WeekStart    string            `json:"week_start"`
	MuscleGroups []HistoricalGroup `json:"muscle_groups"`
}

// Trends is the volume history response, oldest week first.
type Trends struct {
	Weeks []HistoryWeek `json:"weeks"`
}

// groupByWeek buckets dated counts into Monday-keyed weeks.
func groupByWeek(rows []models.DatedMuscleGroupSets) []HistoryWeek {
	byWeek := make(map[string]map[string]int)
	for _, row := range rows {
		start, _ := weekBounds(row.Date)
		key := start.Format("2006-01-02")
		if byWeek[key] == nil {
			byWeek[key] = make(map[string]int)
		}
		byWeek[key][row.MuscleGroup] += row.Sets
	}

	weeks := make([]HistoryWeek, 0, len(byWeek))
	for key, groups := range byWeek {
		week := HistoryWeek{WeekStart: key}
		for mg, sets := range groups {
			lm := landmarks.Lookup(mg)
			week.MuscleGroups = append(week.MuscleGroups, HistoricalGroup{
				MuscleGroup:   mg,
				CompletedSets: sets,
				MEV:           lm.MEV,
				MAV:           lm.MAV,
				MRV:           lm.MRV,
			})
		}
		sort.Slice(week.MuscleGroups, func(i, j int) bool {
			return week.MuscleGroups[i].MuscleGroup < week.MuscleGroups[j].MuscleGroup
		})
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].WeekStart < weeks[j].WeekStart })
	return weeks
}

// History returns completed volume bucketed by week over the last weeks
// weeks, optionally filtered to one muscle group.
func (s *Service) History(ctx context.Context, userID, weeks int, muscleGroup string, now time.Time) (*Trends, error) {
	if err := validate.Weeks(weeks); err != nil {
		return nil, err
	}
	start := now.AddDate(0, 0, -weeks*7)
	rows, err := s.db.CompletedSetsByDate(ctx, userID, start, now, muscleGroup)
	if err != nil {
		return nil, err
	}
	return &Trends{Weeks: groupByWeek(rows)}, nil
}

// PlannedGroup is a muscle group's planned weekly volume and zone.
type PlannedGroup struct {
	MuscleGroup       string         `json:"muscle_group"`
	PlannedWeeklySets int            `json:"planned_weekly_sets"`
	MEV               int            `json:"mev"`
	MAV               int            `json:"mav"`
	MRV               int            `json:"mrv"`
	Zone              landmarks.Zone `json:"zone"`
	Warning           *string        `json:"warning"`
}

// Analysis classifies the active program's planned weekly volume.
type Analysis struct {
	ProgramID      uuid.UUID      `json:"program_id"`
	MesocyclePhase string         `json:"mesocycle_phase"`
	MuscleGroups   []PlannedGroup `json:"muscle_groups"`
}

// ProgramAnalysis classifies the active program's planned weekly sets per
// muscle group using the strict zones, never on_track.
func (s *Service) ProgramAnalysis(ctx context.Context, userID int) (*Analysis, error) {
	prog, err := s.db.ActiveProgram(ctx, userID)
	if err != nil {
		return nil, err
	}
	groups, err := s.plannedGroups(ctx, prog.ID)
	if err != nil {
		return nil, err
	}
	return &Analysis{
		ProgramID:      prog.ID,
		MesocyclePhase: prog.MesocyclePhase,
		MuscleGroups:   groups,
	}, nil
}

// VolumeIssue flags a muscle group outside its effective range.
type VolumeIssue struct {
	MuscleGroup   string         `json:"muscle_group"`
	Issue         landmarks.Zone `json:"issue"`
	CurrentVolume int            `json:"current_volume"`
	Threshold     int            `json:"threshold"`
}

// ProgramVolumeGroup is one muscle group in the per-program volume report.
type ProgramVolumeGroup struct {
	MuscleGroup string         `json:"muscle_group"`
	PlannedSets int            `json:"planned_sets"`
	MEV         int            `json:"mev"`
	MAV         int            `json:"mav"`
	MRV         int            `json:"mrv"`
	Zone        landmarks.Zone `json:"zone"`
}

// ProgramVolume is the per-program planned volume report with its issues
// broken out.
type ProgramVolume struct {
	MuscleGroups []ProgramVolumeGroup `json:"muscle_groups"`
	Warnings     []VolumeIssue        `json:"warnings"`
}

// ProgramVolumeReport classifies one program's planned weekly sets and lists
// the groups under MEV or over MRV with the threshold they crossed.
func (s *Service) ProgramVolumeReport(ctx context.Context, programID uuid.UUID) (*ProgramVolume, error) {
	if _, err := s.db.GetProgram(ctx, programID); err != nil {
		return nil, err
	}
	groups, err := s.plannedGroups(ctx, programID)
	if err != nil {
		return nil, err
	}

	report := &ProgramVolume{MuscleGroups: make([]ProgramVolumeGroup, 0, len(groups)), Warnings: []VolumeIssue{}}
	for _, g := range groups {
		report.MuscleGroups = append(report.MuscleGroups, ProgramVolumeGroup{
			MuscleGroup: g.MuscleGroup,
			PlannedSets: g.PlannedWeeklySets,
			MEV:         g.MEV,
			MAV:         g.MAV,
			MRV:         g.MRV,
			Zone:        g.Zone,
		})
		switch g.Zone {
		case landmarks.ZoneBelowMEV:
			report.Warnings = append(report.Warnings, VolumeIssue{
				MuscleGroup:   g.MuscleGroup,
				Issue:         g.Zone,
				CurrentVolume: g.PlannedWeeklySets,
				Threshold:     g.MEV,
			})
		case landmarks.ZoneAboveMRV:
			report.Warnings = append(report.Warnings, VolumeIssue{
				MuscleGroup:   g.MuscleGroup,
				Issue:         g.Zone,
				CurrentVolume: g.PlannedWeeklySets,
				Threshold:     g.MRV,
			})
		}
	}
	return report, nil
}

func (s *Service) plannedGroups(ctx context.Context, programID uuid.UUID) ([]PlannedGroup, error) {
	rows, err := s.db.PlannedSetsForProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	groups := make([]PlannedGroup, 0, len(rows))
	for _, row := range rows {
		lm := landmarks.Lookup(row.MuscleGroup)
		zone := landmarks.Classify(row.Sets, lm)
		groups = append(groups, PlannedGroup{
			MuscleGroup:       row.MuscleGroup,
			PlannedWeeklySets: row.Sets,
			MEV:               lm.MEV,
			MAV:               lm.MAV,
			MRV:               lm.MRV,
			Zone:              zone,
			Warning:           warningPtr(zone, row.MuscleGroup),
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].MuscleGroup < groups[j].MuscleGroup })
	return groups, nil
}
