package schedule

import (
	"errors"
	"fmt"
)

// Shift is the turno an availability window belongs to. The clinic operates
// 08:00-12:00 (mañana) and 12:00-18:00 (tarde); ShiftFull only appears as a
// doctor's declared turn, never on an individual window.
type Shift string

const (
	ShiftMorning   Shift = "mañana"
	ShiftAfternoon Shift = "tarde"
	ShiftFull      Shift = "ambos"
)

const (
	morningStart   = "08:00"
	morningEnd     = "12:00"
	afternoonStart = "12:00"
	afternoonEnd   = "18:00"
)

var (
	ErrInvertedWindow    = errors.New("start time must be strictly before end time")
	ErrOutsideShiftHours = errors.New("window does not fit the allowed shifts (08:00-12:00 morning, 12:00-18:00 afternoon)")
)

// ParseShift validates a declared turn.
func ParseShift(s string) (Shift, bool) {
	switch Shift(s) {
	case ShiftMorning, ShiftAfternoon, ShiftFull:
		return Shift(s), true
	}
	return "", false
}

// ClassifyShift derives the shift of a window from its bounds. Both times must
// already be normalized "HH:MM". A window that straddles noon or leaves the
// 08:00-18:00 envelope is rejected.
func ClassifyShift(start, end string) (Shift, error) {
	if start >= end {
		return "", fmt.Errorf("%w: %s-%s", ErrInvertedWindow, start, end)
	}
	if start >= morningStart && end <= morningEnd {
		return ShiftMorning, nil
	}
	if start >= afternoonStart && end <= afternoonEnd {
		return ShiftAfternoon, nil
	}
	return "", fmt.Errorf("%w: %s-%s", ErrOutsideShiftHours, start, end)
}

// Overlaps reports whether two [start,end) ranges intersect. Inputs must be
// normalized "HH:MM" strings.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}
