package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// stubExecer stands in for a transaction and lets a chosen statement fail
// or affect zero rows, so the multi-row update loops can be driven through
// their abort paths.
type stubExecer struct {
	args    [][]any
	failAt  int // statement index that errors, -1 for none
	zeroAt  int // statement index reporting zero rows affected, -1 for none
	execErr error
}

func (s *stubExecer) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	i := len(s.args)
	s.args = append(s.args, args)
	if i == s.failAt {
		return pgconn.CommandTag{}, s.execErr
	}
	if i == s.zeroAt {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func TestReorderAllAppliesEveryItem(t *testing.T) {
	ex := &stubExecer{failAt: -1, zeroAt: -1}
	items := []ReorderItem{
		{ProgramExerciseID: uuid.New(), NewOrderIndex: 3},
		{ProgramExerciseID: uuid.New(), NewOrderIndex: 1},
		{ProgramExerciseID: uuid.New(), NewOrderIndex: 2},
	}
	if err := reorderAll(context.Background(), ex, items); err != nil {
		t.Fatalf("reorderAll = %v, want nil", err)
	}
	if len(ex.args) != len(items) {
		t.Fatalf("statements = %d, want %d", len(ex.args), len(items))
	}
	for i, item := range items {
		if ex.args[i][0] != item.ProgramExerciseID || ex.args[i][1] != item.NewOrderIndex {
			t.Errorf("statement %d args = %v, want (%s, %d)",
				i, ex.args[i], item.ProgramExerciseID, item.NewOrderIndex)
		}
	}
}

// A batch naming a missing program exercise must abort at that item, so the
// transaction it runs in rolls back with no reordering applied.
func TestReorderAllAbortsOnMissingRow(t *testing.T) {
	ex := &stubExecer{failAt: -1, zeroAt: 1}
	missing := uuid.New()
	items := []ReorderItem{
		{ProgramExerciseID: uuid.New(), NewOrderIndex: 2},
		{ProgramExerciseID: missing, NewOrderIndex: 1},
		{ProgramExerciseID: uuid.New(), NewOrderIndex: 3},
	}
	err := reorderAll(context.Background(), ex, items)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("reorderAll = %v, want ErrNotFound", err)
	}
	if len(ex.args) != 2 {
		t.Errorf("statements after abort = %d, want 2", len(ex.args))
	}
}

func TestReorderAllAbortsOnExecError(t *testing.T) {
	boom := errors.New("connection reset")
	ex := &stubExecer{failAt: 0, zeroAt: -1, execErr: boom}
	items := []ReorderItem{
		{ProgramExerciseID: uuid.New(), NewOrderIndex: 1},
		{ProgramExerciseID: uuid.New(), NewOrderIndex: 2},
	}
	err := reorderAll(context.Background(), ex, items)
	if !errors.Is(err, boom) {
		t.Fatalf("reorderAll = %v, want wrapped exec error", err)
	}
	if len(ex.args) != 1 {
		t.Errorf("statements after abort = %d, want 1", len(ex.args))
	}
}

func TestRescaleAllWritesRescaledSets(t *testing.T) {
	ex := &stubExecer{failAt: -1, zeroAt: -1}
	targets := []rescaleTarget{
		{id: uuid.New(), sets: 3},
		{id: uuid.New(), sets: 5},
	}
	double := func(sets int) int { return sets * 2 }
	if err := rescaleAll(context.Background(), ex, targets, double); err != nil {
		t.Fatalf("rescaleAll = %v, want nil", err)
	}
	if len(ex.args) != len(targets) {
		t.Fatalf("statements = %d, want %d", len(ex.args), len(targets))
	}
	for i, tgt := range targets {
		if ex.args[i][0] != tgt.id || ex.args[i][1] != tgt.sets*2 {
			t.Errorf("statement %d args = %v, want (%s, %d)", i, ex.args[i], tgt.id, tgt.sets*2)
		}
	}
}

// A failure partway through a rescale must abort the loop so the
// phase-advance transaction rolls back every row, not just the remainder.
func TestRescaleAllAbortsOnExecError(t *testing.T) {
	boom := errors.New("serialization failure")
	ex := &stubExecer{failAt: 1, zeroAt: -1, execErr: boom}
	targets := []rescaleTarget{
		{id: uuid.New(), sets: 3},
		{id: uuid.New(), sets: 4},
		{id: uuid.New(), sets: 5},
	}
	err := rescaleAll(context.Background(), ex, targets, func(sets int) int { return sets })
	if !errors.Is(err, boom) {
		t.Fatalf("rescaleAll = %v, want wrapped exec error", err)
	}
	if len(ex.args) != 2 {
		t.Errorf("statements after abort = %d, want 2", len(ex.args))
	}
}
