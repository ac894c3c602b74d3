package repository

import (
	"backend-clinica/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	// ReplaceForDoctor swaps the doctor's whole availability set in one go.
	ReplaceForDoctor(db *gorm.DB, doctorID uuid.UUID, windows []entity.AvailabilityWindow) error
	FindByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilityWindow, error)
	FindByDoctorAndSpecialty(db *gorm.DB, doctorID, specialtyID uuid.UUID) ([]entity.AvailabilityWindow, error)
}
