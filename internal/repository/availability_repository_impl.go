package repository

import (
	"backend-clinica/internal/domain/entity"
	domainRepo "backend-clinica/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

func (r *availabilityRepository) ReplaceForDoctor(db *gorm.DB, doctorID uuid.UUID, windows []entity.AvailabilityWindow) error {
	if err := db.Where("doctor_id = ?", doctorID).Delete(&entity.AvailabilityWindow{}).Error; err != nil {
		return err
	}
	if len(windows) == 0 {
		return nil
	}
	for i := range windows {
		windows[i].DoctorID = doctorID
	}
	return db.Create(&windows).Error
}

func (r *availabilityRepository) FindByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilityWindow, error) {
	var windows []entity.AvailabilityWindow
	err := db.Where("doctor_id = ?", doctorID).
		Order("day ASC, start_time ASC").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *availabilityRepository) FindByDoctorAndSpecialty(db *gorm.DB, doctorID, specialtyID uuid.UUID) ([]entity.AvailabilityWindow, error) {
	var windows []entity.AvailabilityWindow
	err := db.Where("doctor_id = ? AND specialty_id = ?", doctorID, specialtyID).
		Order("day ASC, start_time ASC").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}
