package repository

import (
	"errors"
	"time"

	"backend-clinica/internal/domain/entity"
	domainRepo "backend-clinica/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Patient").Preload("Doctor").Preload("Specialty").
		Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(db *gorm.DB) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Patient").Preload("Doctor").Preload("Specialty").
		Order("booking_date ASC, start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindConflict(db *gorm.DB, doctorID uuid.UUID, date time.Time, start, end string) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Where(
		"doctor_id = ? AND booking_date = ? AND start_time = ? AND end_time = ? AND status <> ?",
		doctorID, date, start, end, entity.BookingStatusCancelled,
	).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindOccupied(db *gorm.DB, doctorID, specialtyID uuid.UUID, date time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Where(
		"doctor_id = ? AND specialty_id = ? AND booking_date = ? AND slot_state = ?",
		doctorID, specialtyID, date, entity.SlotStateOccupied,
	).Order("start_time ASC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatusIf(db *gorm.DB, id uuid.UUID, from, to entity.BookingStatus, slotState string) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{"status": to, "slot_state": slotState})
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Booking{})
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) ExistsByDoctorID(db *gorm.DB, doctorID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Booking{}).Where("doctor_id = ?", doctorID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *bookingRepository) FindBetween(db *gorm.DB, from, to time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Patient").Preload("Doctor").Preload("Specialty").
		Where("booking_date >= ? AND booking_date <= ?", from, to).
		Order("booking_date ASC, start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) CountByStatus(db *gorm.DB) ([]domainRepo.StatusCount, error) {
	var counts []domainRepo.StatusCount
	err := db.Model(&entity.Booking{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *bookingRepository) CountByDay(db *gorm.DB, from, to time.Time) ([]domainRepo.DailyStatusCount, error) {
	var counts []domainRepo.DailyStatusCount
	err := db.Model(&entity.Booking{}).
		Select("TO_CHAR(booking_date, 'YYYY-MM-DD') as date, status, COUNT(*) as total").
		Where("booking_date >= ? AND booking_date <= ?", from, to).
		Group("booking_date, status").
		Order("booking_date ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
