package entity

import (
	"time"

	"github.com/google/uuid"
)

// Consultation is the medical record produced when a booking is attended.
// Registering one against a still-pending booking flips that booking to
// atendido in the same transaction.
type Consultation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;index" json:"cita_medica_id"`
	Reason    string    `gorm:"type:text;not null" json:"motivo_consulta"`

	// Vital signs taken at the start of the consultation.
	HeartRate       string `gorm:"type:varchar(20)" json:"fc,omitempty"`
	RespiratoryRate string `gorm:"type:varchar(20)" json:"fr,omitempty"`
	Temperature     string `gorm:"type:varchar(20)" json:"temperatura,omitempty"`
	Weight          string `gorm:"type:varchar(20)" json:"peso,omitempty"`
	Height          string `gorm:"type:varchar(20)" json:"talla,omitempty"`

	PhysicalExam string    `gorm:"type:text" json:"examen_fisico,omitempty"`
	Diagnosis    string    `gorm:"type:text;not null" json:"diagnostico"`
	Treatment    string    `gorm:"type:text;not null" json:"conducta"`
	Prescription string    `gorm:"type:text" json:"receta,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"fechaHora"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Booking Booking `gorm:"foreignKey:BookingID" json:"citaMedica,omitempty"`
}

func (Consultation) TableName() string {
	return "consultations"
}
