package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityWindow is one weekly recurring interval during which a doctor
// may be booked for a specialty. Day is stored in canonical form (lowercase,
// no diacritics), times as zero-padded "HH:MM". Windows of the same doctor
// never overlap on the same day, regardless of specialty.
type AvailabilityWindow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"medico_id"`
	SpecialtyID uuid.UUID `gorm:"type:uuid;not null;index" json:"especialidad_id"`
	Day         string    `gorm:"type:varchar(10);not null" json:"dia"`
	StartTime   string    `gorm:"type:varchar(5);not null" json:"inicio"`
	EndTime     string    `gorm:"type:varchar(5);not null" json:"fin"`
	Shift       string    `gorm:"type:varchar(10);not null" json:"turno"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor    User      `gorm:"foreignKey:DoctorID" json:"-"`
	Specialty Specialty `gorm:"foreignKey:SpecialtyID" json:"especialidad,omitempty"`
}

func (AvailabilityWindow) TableName() string {
	return "availability_windows"
}
