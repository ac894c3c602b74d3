package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateBookingRequest carries references as plain strings so that malformed
// identifiers reach the validator chain instead of failing JSON decoding.
type CreateBookingRequest struct {
	PatientID   string `json:"pacienteId" validate:"required"`
	DoctorID    string `json:"medicoId" validate:"required"`
	SpecialtyID string `json:"especialidadId" validate:"required"`
	BookingDate string `json:"fechaReserva" validate:"required"`
	StartTime   string `json:"horaInicio" validate:"required"`
}

type FreeSlotsRequest struct {
	DoctorID    string `json:"medicoId" validate:"required"`
	SpecialtyID string `json:"especialidadId" validate:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"estado" validate:"required,oneof=atendido cancelado"`
}

// Response DTOs

type UserSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"nombre"`
	LastName  string    `json:"apellido"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"telefono,omitempty"`
}

type BookingResponse struct {
	ID          uuid.UUID            `json:"id"`
	PatientID   uuid.UUID            `json:"pacienteId"`
	DoctorID    uuid.UUID            `json:"medicoId"`
	SpecialtyID uuid.UUID            `json:"especialidadId"`
	BookingDate string               `json:"fechaReserva"`
	StartTime   string               `json:"horaInicio"`
	EndTime     string               `json:"horaFin"`
	Status      string               `json:"estado"`
	SlotState   string               `json:"estadoHorario"`
	Patient     *UserSummaryResponse `json:"paciente,omitempty"`
	Doctor      *UserSummaryResponse `json:"medico,omitempty"`
	Specialty   *SpecialtyResponse   `json:"especialidad,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type SlotResponse struct {
	Time  string `json:"hora"`
	State string `json:"estado"`
}

// DaySlotsResponse is one day of the free-slot listing; days without an
// availability window are omitted entirely.
type DaySlotsResponse struct {
	Date  string         `json:"fecha"`
	Slots []SlotResponse `json:"horas"`
}
