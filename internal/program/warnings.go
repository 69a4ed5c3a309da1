package program

import (
	"fmt"
	"strings"

	"github.com/claude/periodize/internal/landmarks"
	"github.com/claude/periodize/internal/models"
)

// volumeOp is the mutation a volume warning is computed for.
type volumeOp int

const (
	opAdd volumeOp = iota
	opUpdate
	opDelete
)

// volumeWarning predicts the volume impact of a program-exercise mutation.
// volumes is the program's pre-mutation state across all of its days,
// affected lists the muscle groups the mutated exercise trains, and delta is
// the signed set change (+sets on add, new-old on update, -sets on delete).
// Add and update warn when the resulting volume exceeds MRV; delete warns
// when it drops below MEV. Muscle groups without landmarks are skipped.
// Returns "" when nothing is worth flagging.
func volumeWarning(volumes []models.ExerciseVolume, affected []string, delta int, op volumeOp) string {
	totals := make(map[string]int)
	for _, v := range volumes {
		for _, mg := range v.MuscleGroups {
			totals[mg] += v.Sets
		}
	}
	for _, mg := range affected {
		totals[mg] += delta
	}

	var warnings []string
	for _, mg := range affected {
		if !landmarks.Defined(mg) {
			continue
		}
		lm := landmarks.Lookup(mg)
		volume := totals[mg]

		switch op {
		case opAdd, opUpdate:
			if volume > lm.MRV {
				warnings = append(warnings,
					fmt.Sprintf("Adding this exercise will exceed MRV for %s (%d > %d)", mg, volume, lm.MRV))
			}
		case opDelete:
			if volume < lm.MEV {
				warnings = append(warnings,
					fmt.Sprintf("Removing this exercise will drop below MEV for %s (%d < %d)", mg, volume, lm.MEV))
			}
		}
	}
	return strings.Join(warnings, "; ")
}

// sharesMuscleGroup reports whether two muscle-group lists intersect.
func sharesMuscleGroup(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
