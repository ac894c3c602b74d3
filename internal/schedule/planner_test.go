package schedule

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestGeneralMedicineWindows(t *testing.T) {
	id := uuid.New()

	morning := GeneralMedicineWindows(id, ShiftMorning)
	if len(morning) != 6 {
		t.Fatalf("expected 6 morning windows, got %d", len(morning))
	}
	for _, w := range morning {
		if w.Start != "08:00" || w.End != "12:00" || w.Shift != ShiftMorning {
			t.Errorf("unexpected morning window: %+v", w)
		}
		if w.Day == "domingo" {
			t.Error("general medicine must not include Sundays")
		}
	}

	full := GeneralMedicineWindows(id, ShiftFull)
	if len(full) != 12 {
		t.Fatalf("expected 12 windows for turno ambos, got %d", len(full))
	}
}

func TestPlanWindowsNormalizesDeclared(t *testing.T) {
	spec := uuid.New()
	planned, err := PlanWindows(nil, []Window{
		{Day: "Miércoles", Start: "8:00", End: "10:00", SpecialtyID: spec},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(planned) != 1 {
		t.Fatalf("expected 1 window, got %d", len(planned))
	}
	w := planned[0]
	if w.Day != "miercoles" {
		t.Errorf("expected normalized day miercoles, got %s", w.Day)
	}
	if w.Start != "08:00" {
		t.Errorf("expected zero-padded start 08:00, got %s", w.Start)
	}
	if w.Shift != ShiftMorning {
		t.Errorf("expected derived shift mañana, got %s", w.Shift)
	}
}

func TestPlanWindowsRejectsInvertedWindow(t *testing.T) {
	_, err := PlanWindows(nil, []Window{
		{Day: "lunes", Start: "10:00", End: "09:00", SpecialtyID: uuid.New()},
	})
	if !errors.Is(err, ErrInvertedWindow) {
		t.Errorf("expected ErrInvertedWindow, got %v", err)
	}
}

func TestPlanWindowsRejectsSameDayOverlapAcrossSpecialties(t *testing.T) {
	gm := uuid.New()
	other := uuid.New()

	auto := GeneralMedicineWindows(gm, ShiftMorning)
	_, err := PlanWindows(auto, []Window{
		{Day: "lunes", Start: "11:00", End: "12:00", SpecialtyID: other},
	})
	if !errors.Is(err, ErrWindowConflict) {
		t.Errorf("expected ErrWindowConflict, got %v", err)
	}
}

func TestPlanWindowsAllowsDisjointWindows(t *testing.T) {
	gm := uuid.New()
	other := uuid.New()

	auto := GeneralMedicineWindows(gm, ShiftMorning)
	planned, err := PlanWindows(auto, []Window{
		{Day: "lunes", Start: "12:00", End: "14:00", SpecialtyID: other},
		{Day: "domingo", Start: "08:00", End: "10:00", SpecialtyID: other},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(planned) != 8 {
		t.Errorf("expected 8 planned windows, got %d", len(planned))
	}
}

func TestPlanWindowsRejectsUnknownDay(t *testing.T) {
	_, err := PlanWindows(nil, []Window{
		{Day: "finde", Start: "08:00", End: "09:00", SpecialtyID: uuid.New()},
	})
	if !errors.Is(err, ErrInvalidDayName) {
		t.Errorf("expected ErrInvalidDayName, got %v", err)
	}
}
