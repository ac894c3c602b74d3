package repository

import (
	"backend-clinica/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(db *gorm.DB, consultation *entity.Consultation) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error)
	FindAll(db *gorm.DB) ([]entity.Consultation, error)
	Update(db *gorm.DB, consultation *entity.Consultation) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
