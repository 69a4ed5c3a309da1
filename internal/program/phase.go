package program

import (
	"fmt"
	"math"
)

// Phase is a mesocycle training phase. The cycle is fixed:
// mev -> mav -> mrv -> deload -> mev.
type Phase string

const (
	PhaseMEV    Phase = "mev"
	PhaseMAV    Phase = "mav"
	PhaseMRV    Phase = "mrv"
	PhaseDeload Phase = "deload"
)

// InvalidPhaseError reports a target phase outside the four-value enum.
type InvalidPhaseError struct {
	Phase string
}

func (e *InvalidPhaseError) Error() string {
	return fmt.Sprintf("invalid target_phase: %q", e.Phase)
}

// ParsePhase validates a phase string.
func ParsePhase(s string) (Phase, error) {
	switch Phase(s) {
	case PhaseMEV, PhaseMAV, PhaseMRV, PhaseDeload:
		return Phase(s), nil
	default:
		return "", &InvalidPhaseError{Phase: s}
	}
}

// next is the automatic-mode transition table.
var next = map[Phase]Phase{
	PhaseMEV:    PhaseMAV,
	PhaseMAV:    PhaseMRV,
	PhaseMRV:    PhaseDeload,
	PhaseDeload: PhaseMEV,
}

// Next returns the phase that follows p in the cycle.
func (p Phase) Next() Phase {
	return next[p]
}

// adjacentMultipliers holds the canonical multipliers for the four cycle
// transitions.
var adjacentMultipliers = map[[2]Phase]float64{
	{PhaseMEV, PhaseMAV}:    1.20,
	{PhaseMAV, PhaseMRV}:    1.15,
	{PhaseMRV, PhaseDeload}: 0.50,
	{PhaseDeload, PhaseMEV}: 2.00,
}

// volumeIndex is each phase's volume level relative to MEV baseline. Skipping
// phases multiplies by toIndex/fromIndex, so a program lands at the same
// volume regardless of the path taken to reach a phase.
var volumeIndex = map[Phase]float64{
	PhaseMEV:    1.0,
	PhaseMAV:    1.2,
	PhaseMRV:    1.38,
	PhaseDeload: 0.69,
}

// Multiplier returns the prescribed-sets multiplier for a phase transition.
// Adjacent cycle transitions use the canonical table; from == to is a no-op;
// any other pair derives from the relative volume index.
func Multiplier(from, to Phase) float64 {
	if from == to {
		return 1.0
	}
	if m, ok := adjacentMultipliers[[2]Phase{from, to}]; ok {
		return m
	}
	return volumeIndex[to] / volumeIndex[from]
}

// RescaleSets applies a phase multiplier to a prescribed set count. The
// result is rounded half away from zero and never drops below one set.
func RescaleSets(sets int, multiplier float64) int {
	n := int(math.Round(float64(sets) * multiplier))
	if n < 1 {
		return 1
	}
	return n
}
