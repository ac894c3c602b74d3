package schedule

import (
	"testing"
	"time"
)

func TestWeekdayName(t *testing.T) {
	// 2025-01-06 is a Monday.
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	want := []string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo"}
	for i, name := range want {
		got := WeekdayName(monday.AddDate(0, 0, i))
		if got != name {
			t.Errorf("day %d: expected %s, got %s", i, name, got)
		}
	}
}

func TestNormalizeDayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Miércoles", "miercoles"},
		{"miercoles", "miercoles"},
		{"MIERCOLES", "miercoles"},
		{"Sábado", "sabado"},
		{"  Lunes ", "lunes"},
		{"Domingo", "domingo"},
	}

	for _, tt := range tests {
		if got := NormalizeDayName(tt.in); got != tt.want {
			t.Errorf("NormalizeDayName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidDayName(t *testing.T) {
	if !IsValidDayName("Miércoles") {
		t.Error("expected Miércoles to be valid")
	}
	if IsValidDayName("feriado") {
		t.Error("expected feriado to be invalid")
	}
}
