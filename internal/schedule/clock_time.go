package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidClockTime = errors.New("invalid time, expected HH:MM in 24-hour format")

// ParseClockTime converts an "HH:MM" wall-clock string to minutes since midnight.
// A missing leading zero ("8:00") is accepted; everything else is rejected.
func ParseClockTime(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	if len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	return hour*60 + minute, nil
}

// FormatClockTime renders minutes since midnight as zero-padded "HH:MM".
func FormatClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeClockTime coerces a time string to the canonical zero-padded form.
// All comparisons in this package are lexicographic over normalized strings,
// which is only sound after this coercion.
func NormalizeClockTime(s string) (string, error) {
	minutes, err := ParseClockTime(s)
	if err != nil {
		return "", err
	}
	return FormatClockTime(minutes), nil
}

// AddMinutes adds a duration to an "HH:MM" time. The wall clock never wraps:
// windows past midnight are rejected at planning time, so a sum beyond 23:59
// indicates invalid input.
func AddMinutes(s string, minutes int) (string, error) {
	start, err := ParseClockTime(s)
	if err != nil {
		return "", err
	}
	end := start + minutes
	if end >= 24*60 {
		return "", fmt.Errorf("%w: %s + %dmin crosses midnight", ErrInvalidClockTime, s, minutes)
	}
	return FormatClockTime(end), nil
}

// IsAligned reports whether a start time sits on the duration grid, i.e.
// its minutes since midnight are a multiple of the slot duration.
func IsAligned(s string, duration int) (bool, error) {
	minutes, err := ParseClockTime(s)
	if err != nil {
		return false, err
	}
	return minutes%duration == 0, nil
}
