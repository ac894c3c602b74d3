package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the single account table; doctors additionally carry specialties
// and availability windows, patients carry only the base fields.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"lastname"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	CI        string    `gorm:"type:varchar(20);uniqueIndex" json:"ci,omitempty"`
	Gender    string    `gorm:"type:varchar(10)" json:"sexo,omitempty"`
	BirthDate time.Time `gorm:"type:date" json:"fechaNacimiento,omitempty"`
	Phone     string    `gorm:"type:varchar(20)" json:"telefono,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role         Role                 `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Specialties  []Specialty          `gorm:"many2many:doctor_specialties" json:"especialidades,omitempty"`
	Availability []AvailabilityWindow `gorm:"foreignKey:DoctorID" json:"disponibilidad,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// HasSpecialty reports whether the doctor is assigned the given specialty.
func (u *User) HasSpecialty(specialtyID uuid.UUID) bool {
	for _, s := range u.Specialties {
		if s.ID == specialtyID {
			return true
		}
	}
	return false
}

// FullName joins first and last name for display and messages.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
