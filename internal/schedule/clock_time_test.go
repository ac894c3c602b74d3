package schedule

import (
	"errors"
	"testing"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"8:00", 480, false},
		{"23:59", 1439, false},
		{"12:30", 750, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12:5", 0, true},
		{"1230", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClockTime(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClockTime(%q): expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClockTime(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.minutes {
			t.Errorf("ParseClockTime(%q) = %d, want %d", tt.in, got, tt.minutes)
		}
	}
}

func TestNormalizeClockTime(t *testing.T) {
	got, err := NormalizeClockTime("8:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "08:05" {
		t.Errorf("expected 08:05, got %s", got)
	}
}

func TestAddMinutes(t *testing.T) {
	got, err := AddMinutes("11:50", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "12:10" {
		t.Errorf("expected 12:10, got %s", got)
	}

	if _, err := AddMinutes("23:50", 30); err == nil {
		t.Error("expected error when crossing midnight")
	}
}

func TestIsAligned(t *testing.T) {
	tests := []struct {
		in       string
		duration int
		want     bool
	}{
		{"08:00", 20, true},
		{"08:20", 20, true},
		{"08:10", 20, false},
		{"08:30", 30, true},
		{"08:15", 30, false},
		{"11:50", 20, false},
	}

	for _, tt := range tests {
		got, err := IsAligned(tt.in, tt.duration)
		if err != nil {
			t.Fatalf("IsAligned(%q, %d): unexpected error: %v", tt.in, tt.duration, err)
		}
		if got != tt.want {
			t.Errorf("IsAligned(%q, %d) = %v, want %v", tt.in, tt.duration, got, tt.want)
		}
	}
}

func TestParseClockTimeSentinel(t *testing.T) {
	_, err := ParseClockTime("25:00")
	if !errors.Is(err, ErrInvalidClockTime) {
		t.Errorf("expected ErrInvalidClockTime, got %v", err)
	}
}
