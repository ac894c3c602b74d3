package entity

import (
	"time"

	"backend-clinica/internal/schedule"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pendiente"
	BookingStatusAttended  BookingStatus = "atendido"
	BookingStatusCancelled BookingStatus = "cancelado"
)

// Slot state of a booking's time range
const (
	SlotStateFree     = "LIBRE"
	SlotStateOccupied = "OCUPADO"
)

// CancellationNotice is the minimum time before the scheduled start at which
// a booking may still be cancelled.
const CancellationNotice = 24 * time.Hour

// Booking links patient, doctor and specialty to a concrete date and time
// range. EndTime is computed once at validation time and never recomputed.
// The partial unique index over (doctor, date, start, end) excludes cancelled
// rows and is the storage-level guard against double booking.
type Booking struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"paciente_id"`
	DoctorID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_doctor_slot,where:status <> 'cancelado'" json:"medico_id"`
	SpecialtyID uuid.UUID     `gorm:"type:uuid;not null;index" json:"especialidad_id"`
	BookingDate time.Time     `gorm:"type:date;not null;uniqueIndex:idx_doctor_slot,where:status <> 'cancelado'" json:"fechaReserva"`
	StartTime   string        `gorm:"type:varchar(5);not null;uniqueIndex:idx_doctor_slot,where:status <> 'cancelado'" json:"horaInicio"`
	EndTime     string        `gorm:"type:varchar(5);not null;uniqueIndex:idx_doctor_slot,where:status <> 'cancelado'" json:"horaFin"`
	Status      BookingStatus `gorm:"type:varchar(10);not null;default:'pendiente';index" json:"estado"`
	SlotState   string        `gorm:"type:varchar(10);not null;default:'LIBRE'" json:"estado_horario"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   User      `gorm:"foreignKey:PatientID" json:"paciente,omitempty"`
	Doctor    User      `gorm:"foreignKey:DoctorID" json:"medico,omitempty"`
	Specialty Specialty `gorm:"foreignKey:SpecialtyID" json:"especialidad,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

func (b *Booking) IsAttended() bool {
	return b.Status == BookingStatusAttended
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// StartInstant combines the booking date and start time into a single instant
// in the given location. StartTime is normalized at validation time; a value
// that no longer parses resolves to midnight.
func (b *Booking) StartInstant(loc *time.Location) time.Time {
	minutes, err := schedule.ParseClockTime(b.StartTime)
	if err != nil {
		minutes = 0
	}
	d := b.BookingDate
	return time.Date(d.Year(), d.Month(), d.Day(), 0, minutes, 0, 0, loc)
}

// CanAttend reports whether the booking may transition to atendido: only a
// pending booking whose scheduled start has been reached.
func (b *Booking) CanAttend(now time.Time) bool {
	return b.IsPending() && !now.Before(b.StartInstant(now.Location()))
}

// CanCancel reports whether the booking may transition to cancelado: only a
// pending booking with at least the cancellation notice remaining.
func (b *Booking) CanCancel(now time.Time) bool {
	return b.IsPending() && b.StartInstant(now.Location()).Sub(now) >= CancellationNotice
}

// CanDelete reports whether the booking may be removed permanently; only
// cancelled bookings ever are.
func (b *Booking) CanDelete() bool {
	return b.IsCancelled()
}
