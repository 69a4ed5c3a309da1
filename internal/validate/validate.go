// Package validate holds the shared input validation helpers. All checks run
// before any store mutation and return typed errors naming the offending
// field and its constraint.
package validate

import (
	"fmt"
	"regexp"
)

// Field ranges shared across services.
const (
	TargetSetsMin = 1
	TargetSetsMax = 10
	RIRMin        = 0
	RIRMax        = 4
	WeightKgMin   = 0
	WeightKgMax   = 500
	RepsMin       = 1
	RepsMax       = 50
	WeeksMin      = 1
	WeeksMax      = 52
	RecoveryMin   = 1
	RecoveryMax   = 5
	NotesMaxLen   = 500
)

var (
	isoDateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	repRangeRe = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)
)

// RangeError reports a numeric field outside its allowed range.
type RangeError struct {
	Field string
	Min   float64
	Max   float64
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %g and %g (got %g)", e.Field, e.Min, e.Max, e.Value)
}

// FormatError reports a string field that does not match its expected shape.
type FormatError struct {
	Field string
	Want  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s must match %s", e.Field, e.Want)
}

// IntRange checks an integer field against an inclusive range.
func IntRange(field string, value, min, max int) error {
	if value < min || value > max {
		return &RangeError{Field: field, Min: float64(min), Max: float64(max), Value: float64(value)}
	}
	return nil
}

// FloatRange checks a float field against an inclusive range.
func FloatRange(field string, value, min, max float64) error {
	if value < min || value > max {
		return &RangeError{Field: field, Min: min, Max: max, Value: value}
	}
	return nil
}

// ISODate checks a YYYY-MM-DD date string.
func ISODate(field, date string) error {
	if !isoDateRe.MatchString(date) {
		return &FormatError{Field: field, Want: "ISO format (YYYY-MM-DD)"}
	}
	return nil
}

// RepRange checks an "N-M" rep range string.
func RepRange(reps string) error {
	if !repRangeRe.MatchString(reps) {
		return &FormatError{Field: "target_rep_range", Want: `rep range "N-M"`}
	}
	return nil
}

// SetParams checks the weight/reps/RIR triple logged with a set.
func SetParams(weightKg float64, reps, rir int) error {
	if err := FloatRange("weight_kg", weightKg, WeightKgMin, WeightKgMax); err != nil {
		return err
	}
	if err := IntRange("reps", reps, RepsMin, RepsMax); err != nil {
		return err
	}
	return IntRange("rir", rir, RIRMin, RIRMax)
}

// Notes checks the optional free-text notes field.
func Notes(notes string) error {
	if len(notes) > NotesMaxLen {
		return &FormatError{Field: "notes", Want: fmt.Sprintf("at most %d characters", NotesMaxLen)}
	}
	return nil
}

// RecoveryScore checks a single 1-5 recovery subscore.
func RecoveryScore(field string, score int) error {
	return IntRange(field, score, RecoveryMin, RecoveryMax)
}

// Weeks checks the history window parameter.
func Weeks(weeks int) error {
	return IntRange("weeks", weeks, WeeksMin, WeeksMax)
}
