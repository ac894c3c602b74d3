package repository

import (
	"time"

	"backend-clinica/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusCount is one row of the bookings-by-status report.
type StatusCount struct {
	Status entity.BookingStatus
	Total  int64
}

// DailyStatusCount is one row of the per-day bookings report.
type DailyStatusCount struct {
	Date   string
	Status entity.BookingStatus
	Total  int64
}

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindAll(db *gorm.DB) ([]entity.Booking, error)
	// FindConflict returns a non-cancelled booking occupying exactly the given
	// slot, or nil.
	FindConflict(db *gorm.DB, doctorID uuid.UUID, date time.Time, start, end string) (*entity.Booking, error)
	// FindOccupied returns the occupied time ranges of a doctor+specialty on a date.
	FindOccupied(db *gorm.DB, doctorID, specialtyID uuid.UUID, date time.Time) ([]entity.Booking, error)
	// UpdateStatusIf atomically moves a booking from one status to another,
	// adjusting the slot state in the same statement. Returns affected rows;
	// 0 means the booking was no longer in the expected status.
	UpdateStatusIf(db *gorm.DB, id uuid.UUID, from, to entity.BookingStatus, slotState string) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	ExistsByDoctorID(db *gorm.DB, doctorID uuid.UUID) (bool, error)
	FindBetween(db *gorm.DB, from, to time.Time) ([]entity.Booking, error)
	CountByStatus(db *gorm.DB) ([]StatusCount, error)
	CountByDay(db *gorm.DB, from, to time.Time) ([]DailyStatusCount, error)
}
