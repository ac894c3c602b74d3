package dto

import "github.com/google/uuid"

// Request DTOs

// DeclaredWindowRequest is one manually declared availability window. Day
// accepts localized names with or without diacritics ("Miércoles",
// "miercoles"); times are 24-hour HH:MM.
type DeclaredWindowRequest struct {
	SpecialtyID string `json:"especialidadId" validate:"required,uuid"`
	Day         string `json:"dia" validate:"required"`
	StartTime   string `json:"horaInicio" validate:"required"`
	EndTime     string `json:"horaFin" validate:"required"`
}

type RegisterDoctorRequest struct {
	FirstName    string                  `json:"nombre" validate:"required,max=100"`
	LastName     string                  `json:"apellido" validate:"required,max=100"`
	Email        string                  `json:"email" validate:"required,email"`
	Password     string                  `json:"password" validate:"required,min=8"`
	CI           string                  `json:"ci" validate:"required,max=20"`
	Phone        string                  `json:"telefono" validate:"required,max=20"`
	Turn         string                  `json:"turno" validate:"omitempty,oneof=mañana tarde ambos"`
	SpecialtyIDs []string                `json:"especialidades" validate:"required,min=1,dive,uuid"`
	Availability []DeclaredWindowRequest `json:"disponibilidad" validate:"omitempty,dive"`
}

type UpdateDoctorRequest struct {
	FirstName    string                  `json:"nombre" validate:"required,max=100"`
	LastName     string                  `json:"apellido" validate:"required,max=100"`
	Phone        string                  `json:"telefono" validate:"required,max=20"`
	Turn         string                  `json:"turno" validate:"omitempty,oneof=mañana tarde ambos"`
	SpecialtyIDs []string                `json:"especialidades" validate:"required,min=1,dive,uuid"`
	Availability []DeclaredWindowRequest `json:"disponibilidad" validate:"omitempty,dive"`
}

// Response DTOs

type AvailabilityWindowResponse struct {
	Day       string `json:"dia"`
	StartTime string `json:"horaInicio"`
	EndTime   string `json:"horaFin"`
	Shift     string `json:"turno"`
}

// SpecialtyAvailabilityResponse groups a doctor's windows under the specialty
// they belong to.
type SpecialtyAvailabilityResponse struct {
	SpecialtyID   uuid.UUID                    `json:"especialidadId"`
	SpecialtyName string                       `json:"especialidad"`
	Windows       []AvailabilityWindowResponse `json:"horarios"`
}

type DoctorResponse struct {
	ID           uuid.UUID                       `json:"id"`
	FirstName    string                          `json:"nombre"`
	LastName     string                          `json:"apellido"`
	Email        string                          `json:"email"`
	CI           string                          `json:"ci,omitempty"`
	Phone        string                          `json:"telefono,omitempty"`
	Specialties  []SpecialtyResponse             `json:"especialidades"`
	Availability []SpecialtyAvailabilityResponse `json:"disponibilidad"`
}
