package schedule

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func mondayMorning(spec uuid.UUID) Window {
	return Window{Day: "lunes", Start: "08:00", End: "12:00", Shift: ShiftMorning, SpecialtyID: spec}
}

func TestWalkSlotsSpacingAndBounds(t *testing.T) {
	slots := WalkSlots(mondayMorning(uuid.New()), 20, nil)

	if len(slots) != 12 {
		t.Fatalf("expected 12 slots for 08:00-12:00 at 20min, got %d", len(slots))
	}
	if slots[0].Time != "08:00" {
		t.Errorf("first slot should be 08:00, got %s", slots[0].Time)
	}
	if slots[len(slots)-1].Time != "11:40" {
		t.Errorf("last slot should be 11:40, got %s", slots[len(slots)-1].Time)
	}

	// Strictly increasing by exactly the duration.
	for i := 1; i < len(slots); i++ {
		prev, _ := ParseClockTime(slots[i-1].Time)
		cur, _ := ParseClockTime(slots[i].Time)
		if cur-prev != 20 {
			t.Errorf("slots %s -> %s are not 20 minutes apart", slots[i-1].Time, slots[i].Time)
		}
	}
	for _, s := range slots {
		if s.Time >= "12:00" {
			t.Errorf("slot %s is not strictly before window end", s.Time)
		}
		if s.State != SlotFree {
			t.Errorf("slot %s should be free, got %s", s.Time, s.State)
		}
	}
}

func TestWalkSlotsMarksOccupied(t *testing.T) {
	occupied := []Interval{{Start: "08:20", End: "08:40"}}
	slots := WalkSlots(mondayMorning(uuid.New()), 20, occupied)

	for _, s := range slots {
		want := SlotFree
		if s.Time == "08:20" {
			want = SlotOccupied
		}
		if s.State != want {
			t.Errorf("slot %s: expected %s, got %s", s.Time, want, s.State)
		}
	}
}

func TestWalkSlotsIdempotent(t *testing.T) {
	w := mondayMorning(uuid.New())
	occupied := []Interval{{Start: "09:00", End: "09:20"}}

	first := WalkSlots(w, 20, occupied)
	second := WalkSlots(w, 20, occupied)

	if len(first) != len(second) {
		t.Fatalf("slot count changed between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestValidateStart(t *testing.T) {
	windows := []Window{mondayMorning(uuid.New())}

	tests := []struct {
		name     string
		day      string
		start    string
		duration int
		wantEnd  string
		wantErr  error
	}{
		{"first slot", "lunes", "08:00", 20, "08:20", nil},
		{"aligned mid-window", "lunes", "10:20", 20, "10:40", nil},
		{"thirty minute grid", "lunes", "08:30", 30, "09:00", nil},
		{"unaligned start", "lunes", "08:10", 20, "", ErrUnalignedStart},
		{"unaligned near window end", "lunes", "11:50", 20, "", ErrUnalignedStart},
		{"unaligned with spilling end", "lunes", "11:55", 20, "", ErrUnalignedStart},
		{"last fitting slot", "lunes", "11:40", 20, "12:00", nil},
		{"before window", "lunes", "07:00", 20, "", ErrOutOfRange},
		{"at window end", "lunes", "12:00", 20, "", ErrOutOfRange},
		{"wrong day", "martes", "08:00", 20, "", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, err := ValidateStart(windows, tt.day, tt.start, tt.duration)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if end != tt.wantEnd {
				t.Errorf("expected end %s, got %s", tt.wantEnd, end)
			}
		})
	}
}

func TestValidateStartAlignedEndExceedsWindow(t *testing.T) {
	// The window end is off the 30-minute grid, so an aligned start can still
	// produce an end past it.
	windows := []Window{
		{Day: "lunes", Start: "08:00", End: "11:45", Shift: ShiftMorning, SpecialtyID: uuid.New()},
	}

	_, err := ValidateStart(windows, "lunes", "11:30", 30)
	if !errors.Is(err, ErrExceedsAvailability) {
		t.Fatalf("expected ErrExceedsAvailability, got %v", err)
	}
}

func TestValidateStartEndMatchesDuration(t *testing.T) {
	windows := []Window{mondayMorning(uuid.New())}

	for _, duration := range []int{20, 30} {
		end, err := ValidateStart(windows, "lunes", "09:00", duration)
		if err != nil {
			t.Fatalf("duration %d: unexpected error: %v", duration, err)
		}
		startMin, _ := ParseClockTime("09:00")
		endMin, _ := ParseClockTime(end)
		if endMin-startMin != duration {
			t.Errorf("duration %d: end-start = %d", duration, endMin-startMin)
		}
	}
}

func TestSlotDurationPolicy(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"Medicina General", 20},
		{"medicina general", 20},
		{"MEDICINA GENERAL", 20},
		{"Medicina General y Familiar", 20},
		{"Cardiología", 30},
		{"Pediatría", 30},
	}

	for _, tt := range tests {
		if got := SlotDuration(tt.name); got != tt.want {
			t.Errorf("SlotDuration(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}
