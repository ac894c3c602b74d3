package repository

import (
	"errors"

	"backend-clinica/internal/domain/entity"
	domainRepo "backend-clinica/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(db *gorm.DB, consultation *entity.Consultation) error {
	return db.Create(consultation).Error
}

func (r *consultationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.Preload("Booking.Patient").Preload("Booking.Doctor").Preload("Booking.Specialty").
		Where("id = ?", id).First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindAll(db *gorm.DB) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	err := db.Preload("Booking.Patient").Preload("Booking.Doctor").Preload("Booking.Specialty").
		Order("created_at DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *consultationRepository) Update(db *gorm.DB, consultation *entity.Consultation) error {
	return db.Omit("Booking").Save(consultation).Error
}

func (r *consultationRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Consultation{})
	return result.RowsAffected, result.Error
}
