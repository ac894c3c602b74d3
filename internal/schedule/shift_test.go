package schedule

import (
	"errors"
	"testing"
)

func TestClassifyShift(t *testing.T) {
	tests := []struct {
		start, end string
		want       Shift
		wantErr    error
	}{
		{"08:00", "12:00", ShiftMorning, nil},
		{"09:00", "11:30", ShiftMorning, nil},
		{"12:00", "18:00", ShiftAfternoon, nil},
		{"14:00", "17:00", ShiftAfternoon, nil},
		{"10:00", "14:00", "", ErrOutsideShiftHours}, // straddles noon
		{"07:00", "11:00", "", ErrOutsideShiftHours},
		{"12:00", "19:00", "", ErrOutsideShiftHours},
		{"12:00", "12:00", "", ErrInvertedWindow},
		{"14:00", "13:00", "", ErrInvertedWindow},
	}

	for _, tt := range tests {
		got, err := ClassifyShift(tt.start, tt.end)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ClassifyShift(%s, %s): expected %v, got %v", tt.start, tt.end, tt.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ClassifyShift(%s, %s): unexpected error: %v", tt.start, tt.end, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ClassifyShift(%s, %s) = %s, want %s", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"08:00", "12:00", "10:00", "11:00", true},
		{"08:00", "12:00", "11:59", "14:00", true},
		{"08:00", "12:00", "12:00", "14:00", false}, // touching bounds do not overlap
		{"12:00", "14:00", "08:00", "12:00", false},
		{"08:00", "09:00", "09:30", "10:00", false},
	}

	for _, tt := range tests {
		if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
			t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v", tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
		}
	}
}
