package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateConsultationRequest struct {
	BookingID       string `json:"citaMedicaId" validate:"required"`
	Reason          string `json:"motivoConsulta" validate:"required"`
	HeartRate       string `json:"fc" validate:"omitempty,max=20"`
	RespiratoryRate string `json:"fr" validate:"omitempty,max=20"`
	Temperature     string `json:"temperatura" validate:"omitempty,max=20"`
	Weight          string `json:"peso" validate:"omitempty,max=20"`
	Height          string `json:"talla" validate:"omitempty,max=20"`
	PhysicalExam    string `json:"examenFisico" validate:"omitempty"`
	Diagnosis       string `json:"diagnostico" validate:"required"`
	Treatment       string `json:"conducta" validate:"required"`
	Prescription    string `json:"receta" validate:"omitempty"`
}

type UpdateConsultationRequest struct {
	Reason          string `json:"motivoConsulta" validate:"required"`
	HeartRate       string `json:"fc" validate:"omitempty,max=20"`
	RespiratoryRate string `json:"fr" validate:"omitempty,max=20"`
	Temperature     string `json:"temperatura" validate:"omitempty,max=20"`
	Weight          string `json:"peso" validate:"omitempty,max=20"`
	Height          string `json:"talla" validate:"omitempty,max=20"`
	PhysicalExam    string `json:"examenFisico" validate:"omitempty"`
	Diagnosis       string `json:"diagnostico" validate:"required"`
	Treatment       string `json:"conducta" validate:"required"`
	Prescription    string `json:"receta" validate:"omitempty"`
}

// Response DTOs

type ConsultationResponse struct {
	ID              uuid.UUID        `json:"id"`
	BookingID       uuid.UUID        `json:"citaMedicaId"`
	Reason          string           `json:"motivoConsulta"`
	HeartRate       string           `json:"fc,omitempty"`
	RespiratoryRate string           `json:"fr,omitempty"`
	Temperature     string           `json:"temperatura,omitempty"`
	Weight          string           `json:"peso,omitempty"`
	Height          string           `json:"talla,omitempty"`
	PhysicalExam    string           `json:"examenFisico,omitempty"`
	Diagnosis       string           `json:"diagnostico"`
	Treatment       string           `json:"conducta"`
	Prescription    string           `json:"receta,omitempty"`
	Booking         *BookingResponse `json:"citaMedica,omitempty"`
	CreatedAt       time.Time        `json:"fechaHora"`
}
