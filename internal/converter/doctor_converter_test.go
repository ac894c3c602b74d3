package converter

import (
	"testing"

	"backend-clinica/internal/domain/entity"

	"github.com/google/uuid"
)

func TestDoctorToResponseGroupsWindowsBySpecialty(t *testing.T) {
	general := entity.Specialty{ID: uuid.New(), Name: "Medicina General"}
	cardio := entity.Specialty{ID: uuid.New(), Name: "Cardiología"}

	doctor := &entity.User{
		ID:          uuid.New(),
		FirstName:   "Ana",
		LastName:    "Flores",
		Specialties: []entity.Specialty{general, cardio},
		Availability: []entity.AvailabilityWindow{
			{SpecialtyID: general.ID, Day: "lunes", StartTime: "08:00", EndTime: "12:00", Shift: "mañana"},
			{SpecialtyID: cardio.ID, Day: "martes", StartTime: "14:00", EndTime: "18:00", Shift: "tarde"},
			{SpecialtyID: general.ID, Day: "martes", StartTime: "08:00", EndTime: "12:00", Shift: "mañana"},
		},
	}

	resp := DoctorToResponse(doctor)
	if resp == nil {
		t.Fatal("expected a response")
	}

	if len(resp.Availability) != 2 {
		t.Fatalf("expected 2 specialty groups, got %d", len(resp.Availability))
	}

	first := resp.Availability[0]
	if first.SpecialtyID != general.ID || first.SpecialtyName != "Medicina General" {
		t.Errorf("unexpected first group: %+v", first)
	}
	if len(first.Windows) != 2 {
		t.Errorf("expected 2 windows for general medicine, got %d", len(first.Windows))
	}

	second := resp.Availability[1]
	if second.SpecialtyID != cardio.ID || len(second.Windows) != 1 {
		t.Errorf("unexpected second group: %+v", second)
	}
	if second.Windows[0].Day != "martes" || second.Windows[0].Shift != "tarde" {
		t.Errorf("unexpected cardiology window: %+v", second.Windows[0])
	}
}

func TestDoctorToResponseNil(t *testing.T) {
	if resp := DoctorToResponse(nil); resp != nil {
		t.Errorf("expected nil, got %+v", resp)
	}
}
