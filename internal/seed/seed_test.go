package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/claude/periodize/internal/landmarks"
)

// TestLibraryMuscleGroupsHaveLandmarks verifies every catalog muscle group is
// classifiable, so volume aggregation never hits the zero-landmark fallback
// for built-in exercises.
func TestLibraryMuscleGroupsHaveLandmarks(t *testing.T) {
	for _, ex := range Library() {
		if len(ex.MuscleGroups) == 0 {
			t.Errorf("%s: no muscle groups", ex.Name)
		}
		for _, mg := range ex.MuscleGroups {
			if !landmarks.Defined(mg) {
				t.Errorf("%s: muscle group %q has no landmarks", ex.Name, mg)
			}
		}
	}
}

// TestLibraryNamesUnique verifies catalog names are distinct, since the
// exercises table has a unique name constraint.
func TestLibraryNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, ex := range Library() {
		if seen[ex.Name] {
			t.Errorf("duplicate exercise name %q", ex.Name)
		}
		seen[ex.Name] = true
	}
}

// TestStateDBRoundTrip verifies applied-state tracking survives reopen.
func TestStateDBRoundTrip(t *testing.T) {
	dir := t.TempDir()

	state, err := OpenStateDB(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	applied, err := state.IsApplied("extra.json", 100, "abc")
	if err != nil {
		t.Fatalf("IsApplied: %v", err)
	}
	if applied {
		t.Error("fresh state reports file as applied")
	}

	if err := state.MarkApplied("extra.json", 100, "abc"); err != nil {
		t.Fatalf("MarkApplied: %v", err)
	}
	if err := state.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	state, err = OpenStateDB(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer state.Close()

	applied, err = state.IsApplied("extra.json", 100, "abc")
	if err != nil {
		t.Fatalf("IsApplied after reopen: %v", err)
	}
	if !applied {
		t.Error("applied file not found after reopen")
	}

	// A changed hash means the file must be re-applied.
	applied, err = state.IsApplied("extra.json", 100, "different")
	if err != nil {
		t.Fatalf("IsApplied changed hash: %v", err)
	}
	if applied {
		t.Error("changed hash still reports as applied")
	}
}

// TestHashFile verifies hashing is stable and content-sensitive.
func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")
	if err := os.WriteFile(path, []byte(`{"exercises":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	h1, err := HashFile(path)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashFile(path)
	if err != nil {
		t.Fatalf("rehash: %v", err)
	}
	if h1 != h2 {
		t.Error("hash not stable across reads")
	}

	if err := os.WriteFile(path, []byte(`{"exercises":[{}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	h3, err := HashFile(path)
	if err != nil {
		t.Fatalf("hash after change: %v", err)
	}
	if h3 == h1 {
		t.Error("hash unchanged after content change")
	}
}
