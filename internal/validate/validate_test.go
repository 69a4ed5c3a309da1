package validate

import (
	"errors"
	"testing"
)

func TestIntRange(t *testing.T) {
	if err := IntRange("target_sets", 5, 1, 10); err != nil {
		t.Errorf("IntRange(5, 1, 10) = %v, want nil", err)
	}
	err := IntRange("target_sets", 11, 1, 10)
	if err == nil {
		t.Fatal("IntRange(11, 1, 10) = nil, want error")
	}
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("error type = %T, want *RangeError", err)
	}
	if re.Field != "target_sets" {
		t.Errorf("field = %q, want target_sets", re.Field)
	}
}

func TestISODate(t *testing.T) {
	tests := []struct {
		date string
		ok   bool
	}{
		{"2025-10-06", true},
		{"2025-1-6", false},
		{"06-10-2025", false},
		{"not a date", false},
	}
	for _, tt := range tests {
		err := ISODate("date", tt.date)
		if (err == nil) != tt.ok {
			t.Errorf("ISODate(%q) = %v, want ok=%v", tt.date, err, tt.ok)
		}
	}
}

func TestRepRange(t *testing.T) {
	tests := []struct {
		reps string
		ok   bool
	}{
		{"6-8", true},
		{"12-15", true},
		{"8", false},
		{"8-", false},
		{"a-b", false},
	}
	for _, tt := range tests {
		err := RepRange(tt.reps)
		if (err == nil) != tt.ok {
			t.Errorf("RepRange(%q) = %v, want ok=%v", tt.reps, err, tt.ok)
		}
	}
}

func TestSetParams(t *testing.T) {
	if err := SetParams(100, 8, 2); err != nil {
		t.Errorf("SetParams(100, 8, 2) = %v, want nil", err)
	}
	if err := SetParams(501, 8, 2); err == nil {
		t.Error("weight 501 accepted, want error")
	}
	if err := SetParams(100, 0, 2); err == nil {
		t.Error("reps 0 accepted, want error")
	}
	if err := SetParams(100, 8, 5); err == nil {
		t.Error("rir 5 accepted, want error")
	}
}

func TestWeeks(t *testing.T) {
	for _, w := range []int{1, 8, 52} {
		if err := Weeks(w); err != nil {
			t.Errorf("Weeks(%d) = %v, want nil", w, err)
		}
	}
	for _, w := range []int{0, 53, -1} {
		if err := Weeks(w); err == nil {
			t.Errorf("Weeks(%d) = nil, want error", w)
		}
	}
}
