package schedule

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Slot state values, kept verbatim on the wire.
const (
	SlotFree     = "LIBRE"
	SlotOccupied = "OCUPADO"
)

// Interval is an occupied [Start,End) range taken by an existing booking.
type Interval struct {
	Start string
	End   string
}

// Slot is a single bookable start time with its free/occupied state.
type Slot struct {
	Time  string
	State string
}

// Validation failures for a requested start time, ordered as checked.
var (
	ErrOutOfRange          = errors.New("start time outside availability")
	ErrUnalignedStart      = errors.New("start time not aligned to the slot grid")
	ErrExceedsAvailability = errors.New("appointment would end after the availability window")
)

// WalkSlots emits the candidate start times of a window spaced by duration
// minutes. A slot is occupied when any occupied interval covers its start.
// The walk stops before window.End, so the last start is always < End.
func WalkSlots(w Window, duration int, occupied []Interval) []Slot {
	start, err := ParseClockTime(w.Start)
	if err != nil {
		return nil
	}
	end, err := ParseClockTime(w.End)
	if err != nil {
		return nil
	}

	var slots []Slot
	for t := start; t < end; t += duration {
		hhmm := FormatClockTime(t)
		state := SlotFree
		for _, iv := range occupied {
			if hhmm >= iv.Start && hhmm < iv.End {
				state = SlotOccupied
				break
			}
		}
		slots = append(slots, Slot{Time: hhmm, State: state})
	}
	return slots
}

// SortWindows orders windows by start time within a day.
func SortWindows(windows []Window) {
	sort.Slice(windows, func(i, j int) bool { return windows[i].Start < windows[j].Start })
}

// ValidateStart checks a requested start time against the doctor's windows for
// the given canonical day name, short-circuiting on the first failure:
//
//  1. a window for that day must exist and contain start in [Start,End)
//  2. start must sit on the duration grid
//  3. start+duration must not exceed the window end
//
// On success it returns the computed end time; the caller persists that value
// as-is and never recomputes it.
func ValidateStart(windows []Window, day string, start string, duration int) (string, error) {
	start, err := NormalizeClockTime(start)
	if err != nil {
		return "", err
	}

	dayWindows := WindowsForDay(windows, day)
	if len(dayWindows) == 0 {
		return "", fmt.Errorf("%w: el médico no atiende los %s, días disponibles: %s",
			ErrOutOfRange, day, strings.Join(availableDays(windows), ", "))
	}

	var window *Window
	for i := range dayWindows {
		if start >= dayWindows[i].Start && start < dayWindows[i].End {
			window = &dayWindows[i]
			break
		}
	}
	if window == nil {
		var ranges []string
		for _, w := range dayWindows {
			ranges = append(ranges, fmt.Sprintf("%s-%s", w.Start, w.End))
		}
		return "", fmt.Errorf("%w: el médico está disponible los %s en los horarios %s",
			ErrOutOfRange, day, strings.Join(ranges, ", "))
	}

	aligned, err := IsAligned(start, duration)
	if err != nil {
		return "", err
	}
	if !aligned {
		return "", fmt.Errorf("%w: la hora de inicio debe estar alineada a intervalos de %d minutos",
			ErrUnalignedStart, duration)
	}

	end, err := AddMinutes(start, duration)
	if err != nil {
		return "", err
	}
	if end > window.End {
		return "", fmt.Errorf("%w: la hora de fin %s excede la disponibilidad del médico, que es hasta %s",
			ErrExceedsAvailability, end, window.End)
	}

	return end, nil
}

func availableDays(windows []Window) []string {
	seen := make(map[string]bool)
	var days []string
	for _, w := range windows {
		if !seen[w.Day] {
			seen[w.Day] = true
			days = append(days, w.Day)
		}
	}
	return days
}
