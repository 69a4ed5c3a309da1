// Package seed loads the exercise catalog into the database: the built-in
// library plus any JSON files dropped in a seed directory.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/claude/periodize/internal/models"
	"github.com/claude/periodize/internal/storage"
)

// Seeder applies exercise seed data.
type Seeder struct {
	db    *storage.DB
	state *StateDB
	log   *slog.Logger
}

func New(db *storage.DB, state *StateDB, log *slog.Logger) *Seeder {
	return &Seeder{db: db, state: state, log: log}
}

// SeedLibrary inserts the built-in catalog. Existing exercise names are left
// untouched.
func (s *Seeder) SeedLibrary(ctx context.Context) (int64, error) {
	rows := Library()
	for i := range rows {
		rows[i].ID = uuid.New()
	}
	inserted, err := s.db.InsertExercises(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("seeding exercise library: %w", err)
	}
	s.log.Info("exercise library seeded", "inserted", inserted, "total", len(rows))
	return inserted, nil
}

// exerciseFile is the on-disk JSON shape for extra catalog entries.
type exerciseFile struct {
	Exercises []struct {
		Name         string   `json:"name"`
		MuscleGroups []string `json:"muscle_groups"`
		Equipment    string   `json:"equipment"`
	} `json:"exercises"`
}

// SeedDir applies every *.json file in dir not yet recorded in the state
// database, in name order. Returns the number of files applied.
func (s *Seeder) SeedDir(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading seed dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	applied := 0
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			return applied, err
		}
		hash, err := HashFile(path)
		if err != nil {
			return applied, fmt.Errorf("hashing %s: %w", name, err)
		}

		done, err := s.state.IsApplied(name, info.Size(), hash)
		if err != nil {
			return applied, err
		}
		if done {
			s.log.Debug("seed file already applied", "file", name)
			continue
		}

		if err := s.applyFile(ctx, path); err != nil {
			return applied, fmt.Errorf("applying %s: %w", name, err)
		}
		if err := s.state.MarkApplied(name, info.Size(), hash); err != nil {
			return applied, err
		}
		s.log.Info("seed file applied", "file", name)
		applied++
	}
	return applied, nil
}

func (s *Seeder) applyFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file exerciseFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing seed JSON: %w", err)
	}

	rows := make([]models.ExerciseRow, 0, len(file.Exercises))
	for _, e := range file.Exercises {
		if e.Name == "" || len(e.MuscleGroups) == 0 {
			return fmt.Errorf("exercise entry missing name or muscle_groups")
		}
		rows = append(rows, models.ExerciseRow{
			ID:           uuid.New(),
			Name:         e.Name,
			MuscleGroups: e.MuscleGroups,
			Equipment:    e.Equipment,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	_, err = s.db.InsertExercises(ctx, rows)
	return err
}
