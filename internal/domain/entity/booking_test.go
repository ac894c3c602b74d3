package entity

import (
	"testing"
	"time"
)

func pendingBookingAt(start time.Time) *Booking {
	return &Booking{
		BookingDate: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()),
		StartTime:   start.Format("15:04"),
		Status:      BookingStatusPending,
	}
}

func TestStartInstant(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		startTime string
		want      time.Time
	}{
		{"normalized", "08:20", time.Date(2025, 3, 10, 8, 20, 0, 0, time.UTC)},
		{"unpadded hour", "8:20", time.Date(2025, 3, 10, 8, 20, 0, 0, time.UTC)},
		{"late slot", "11:50", time.Date(2025, 3, 10, 11, 50, 0, 0, time.UTC)},
		{"corrupted", "garbage", date},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{BookingDate: date, StartTime: tt.startTime}
			if got := b.StartInstant(time.UTC); !got.Equal(tt.want) {
				t.Errorf("StartInstant(%q) = %v, want %v", tt.startTime, got, tt.want)
			}
		})
	}
}

func TestCanAttend(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	b := pendingBookingAt(start)

	if b.CanAttend(start.Add(-time.Minute)) {
		t.Error("attend must be rejected before the scheduled start")
	}
	if !b.CanAttend(start) {
		t.Error("attend must be allowed exactly at the scheduled start")
	}
	if !b.CanAttend(start.Add(2 * time.Hour)) {
		t.Error("attend must be allowed after the scheduled start")
	}

	b.Status = BookingStatusCancelled
	if b.CanAttend(start.Add(time.Hour)) {
		t.Error("a cancelled booking can never be attended")
	}
}

func TestCanCancel(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	b := pendingBookingAt(start)

	if b.CanCancel(start.Add(-23 * time.Hour)) {
		t.Error("cancel must be rejected with only 23h of notice")
	}
	if !b.CanCancel(start.Add(-24*time.Hour - time.Minute)) {
		t.Error("cancel must be allowed with 24h1m of notice")
	}
	if !b.CanCancel(start.Add(-24 * time.Hour)) {
		t.Error("cancel must be allowed with exactly 24h of notice")
	}

	b.Status = BookingStatusAttended
	if b.CanCancel(start.Add(-48 * time.Hour)) {
		t.Error("an attended booking can never be cancelled")
	}
}

func TestCanDelete(t *testing.T) {
	b := &Booking{Status: BookingStatusPending}
	if b.CanDelete() {
		t.Error("pending bookings must not be deletable")
	}

	b.Status = BookingStatusAttended
	if b.CanDelete() {
		t.Error("attended bookings must not be deletable")
	}

	b.Status = BookingStatusCancelled
	if !b.CanDelete() {
		t.Error("cancelled bookings must be deletable")
	}
}
