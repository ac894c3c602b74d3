package entity

import (
	"time"

	"github.com/google/uuid"
)

// Specialty is a medical specialty offered by the clinic. Its name drives the
// slot duration policy, so callers must always look the record up fresh.
type Specialty struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Specialty) TableName() string {
	return "specialties"
}
