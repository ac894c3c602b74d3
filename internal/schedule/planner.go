package schedule

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Window is one weekly recurring availability interval of a doctor for a
// specialty. Day is a canonical Spanish day name, times are normalized "HH:MM".
type Window struct {
	Day         string
	Start       string
	End         string
	Shift       Shift
	SpecialtyID uuid.UUID
}

var (
	ErrInvalidDayName = errors.New("invalid day of week")
	// ErrWindowConflict marks two windows of the same doctor overlapping on the
	// same day. The doctor's base schedule can never be double-booked, no matter
	// which specialties are involved.
	ErrWindowConflict = errors.New("availability conflict")
)

// General medicine consultations run Monday through Saturday on fixed blocks.
var generalMedicineDays = []string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado"}

// GeneralMedicineWindows builds the auto-generated weekly windows for the
// general medicine specialty according to the doctor's declared turn.
func GeneralMedicineWindows(specialtyID uuid.UUID, turn Shift) []Window {
	var windows []Window
	for _, day := range generalMedicineDays {
		if turn == ShiftMorning || turn == ShiftFull {
			windows = append(windows, Window{
				Day:         day,
				Start:       morningStart,
				End:         morningEnd,
				Shift:       ShiftMorning,
				SpecialtyID: specialtyID,
			})
		}
		if turn == ShiftAfternoon || turn == ShiftFull {
			windows = append(windows, Window{
				Day:         day,
				Start:       afternoonStart,
				End:         afternoonEnd,
				Shift:       ShiftAfternoon,
				SpecialtyID: specialtyID,
			})
		}
	}
	return windows
}

// PlanWindows normalizes and validates the declared windows and merges them
// with the auto-generated ones. Each declared window gets its day and times
// normalized, its shift derived, and is checked against every window accepted
// so far: same-day overlapping ranges are rejected regardless of specialty.
func PlanWindows(auto []Window, declared []Window) ([]Window, error) {
	planned := make([]Window, 0, len(auto)+len(declared))
	planned = append(planned, auto...)

	for _, w := range declared {
		day := NormalizeDayName(w.Day)
		if !IsValidDayName(day) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDayName, w.Day)
		}

		start, err := NormalizeClockTime(w.Start)
		if err != nil {
			return nil, err
		}
		end, err := NormalizeClockTime(w.End)
		if err != nil {
			return nil, err
		}

		shift, err := ClassifyShift(start, end)
		if err != nil {
			return nil, err
		}

		for _, existing := range planned {
			if existing.Day == day && Overlaps(existing.Start, existing.End, start, end) {
				return nil, fmt.Errorf("%w: el %s de %s a %s choca con %s-%s",
					ErrWindowConflict, day, start, end, existing.Start, existing.End)
			}
		}

		planned = append(planned, Window{
			Day:         day,
			Start:       start,
			End:         end,
			Shift:       shift,
			SpecialtyID: w.SpecialtyID,
		})
	}

	return planned, nil
}

// WindowsForDay filters windows by canonical day name, preserving order.
func WindowsForDay(windows []Window, day string) []Window {
	var matched []Window
	for _, w := range windows {
		if w.Day == day {
			matched = append(matched, w)
		}
	}
	return matched
}
