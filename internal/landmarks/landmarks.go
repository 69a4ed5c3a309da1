// Package landmarks holds the Renaissance Periodization volume landmark
// table and the zone classifier built on it.
//
// MEV is the minimum effective volume, MAV the maximum adaptive volume, and
// MRV the maximum recoverable volume, all in weekly sets per muscle group.
package landmarks

import "fmt"

// Landmark is a per-muscle-group MEV/MAV/MRV triple.
type Landmark struct {
	MEV int `json:"mev"`
	MAV int `json:"mav"`
	MRV int `json:"mrv"`
}

// Zone classifies a weekly set count against a muscle group's landmarks.
type Zone string

const (
	ZoneBelowMEV Zone = "below_mev"
	ZoneAdequate Zone = "adequate"
	ZoneOptimal  Zone = "optimal"
	ZoneAboveMRV Zone = "above_mrv"
	ZoneOnTrack  Zone = "on_track"
)

// OnTrackThreshold is the completed/planned ratio above which an in-progress
// week counts as on track. A policy parameter, not a physiological constant.
const OnTrackThreshold = 0.5

// table is the process-wide landmark table. It is populated once here and
// never mutated.
var table = map[string]Landmark{
	"chest":       {MEV: 8, MAV: 14, MRV: 22},
	"biceps":      {MEV: 6, MAV: 12, MRV: 20},
	"triceps":     {MEV: 6, MAV: 12, MRV: 22},
	"quads":       {MEV: 8, MAV: 14, MRV: 24},
	"hamstrings":  {MEV: 6, MAV: 12, MRV: 20},
	"glutes":      {MEV: 6, MAV: 12, MRV: 20},
	"calves":      {MEV: 8, MAV: 14, MRV: 22},
	"abs":         {MEV: 8, MAV: 16, MRV: 28},
	"lats":        {MEV: 10, MAV: 16, MRV: 26},
	"traps":       {MEV: 6, MAV: 12, MRV: 20},
	"mid_back":    {MEV: 10, MAV: 16, MRV: 26},
	"lower_back":  {MEV: 6, MAV: 12, MRV: 20},
	"front_delts": {MEV: 4, MAV: 8, MRV: 14},
	"side_delts":  {MEV: 8, MAV: 16, MRV: 26},
	"rear_delts":  {MEV: 8, MAV: 14, MRV: 22},
	"core":        {MEV: 8, MAV: 16, MRV: 28},
	"obliques":    {MEV: 6, MAV: 12, MRV: 20},
	"forearms":    {MEV: 4, MAV: 8, MRV: 16},
	"brachialis":  {MEV: 4, MAV: 8, MRV: 14},
	"hip_flexors": {MEV: 4, MAV: 8, MRV: 14},
	"back":        {MEV: 10, MAV: 16, MRV: 26},
	"shoulders":   {MEV: 8, MAV: 14, MRV: 22},
}

// Lookup returns the landmarks for a muscle group. Unknown groups yield the
// zero triple so aggregation over unrecognized groups never fails.
func Lookup(muscleGroup string) Landmark {
	return table[muscleGroup]
}

// Defined reports whether the muscle group has landmarks in the table.
func Defined(muscleGroup string) bool {
	_, ok := table[muscleGroup]
	return ok
}

// Groups returns all muscle group names present in the table.
func Groups() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	return names
}

// Classify maps a weekly set count to its training zone.
func Classify(sets int, lm Landmark) Zone {
	switch {
	case sets < lm.MEV:
		return ZoneBelowMEV
	case sets < lm.MAV:
		return ZoneAdequate
	case sets <= lm.MRV:
		return ZoneOptimal
	default:
		return ZoneAboveMRV
	}
}

// ClassifyOnTrack is the current-week variant: when the planned volume lands
// in a healthy zone and at least half of it is already completed, the week is
// on track rather than below MEV. Only meaningful mid-week; static program
// analysis uses Classify.
func ClassifyOnTrack(completed, planned int, lm Landmark) Zone {
	pace := float64(completed) >= float64(planned)*OnTrackThreshold
	if planned >= lm.MAV && planned <= lm.MRV && pace {
		return ZoneOnTrack
	}
	if planned >= lm.MEV && planned < lm.MAV && pace {
		return ZoneOnTrack
	}
	return Classify(completed, lm)
}

// Warning returns a human-readable message for the two zones worth flagging,
// or "" for every other zone.
func Warning(zone Zone, muscleGroup string) string {
	switch zone {
	case ZoneBelowMEV:
		return fmt.Sprintf("%s volume is below minimum effective volume (MEV). Increase sets for growth.", muscleGroup)
	case ZoneAboveMRV:
		return fmt.Sprintf("%s volume exceeds maximum recoverable volume (MRV). Risk of overtraining.", muscleGroup)
	default:
		return ""
	}
}
