package repository

import (
	"backend-clinica/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	// FindDoctorByID loads a doctor with specialties and availability preloaded.
	FindDoctorByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByRole(db *gorm.DB, roleID int) ([]entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	ReplaceSpecialties(db *gorm.DB, user *entity.User, specialties []entity.Specialty) error
}
