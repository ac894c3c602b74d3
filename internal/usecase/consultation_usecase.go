package usecase

import (
	"context"
	"errors"

	"backend-clinica/internal/converter"
	"backend-clinica/internal/delivery/dto"
	"backend-clinica/internal/domain/entity"
	"backend-clinica/internal/domain/repository"
	"backend-clinica/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrBookingCancelled     = errors.New("booking is cancelled")
)

type ConsultationUsecase interface {
	Create(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ConsultationResponse, error)
	GetAll(ctx context.Context) ([]dto.ConsultationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error)
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	consultationRepo repository.ConsultationRepository
	bookingRepo      repository.BookingRepository
	clk              clock.Clock
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	consultationRepo repository.ConsultationRepository,
	bookingRepo repository.BookingRepository,
	clk clock.Clock,
) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		consultationRepo: consultationRepo,
		bookingRepo:      bookingRepo,
		clk:              clk,
	}
}

// Create registers the medical record for a booking. A still-pending booking
// is flipped to atendido in the same transaction, so the record and the
// status change land together or not at all.
func (u *consultationUsecase) Create(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, ErrInvalidReference
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.IsCancelled() {
		return nil, ErrBookingCancelled
	}

	if booking.IsPending() {
		if !booking.CanAttend(u.clk.Now()) {
			return nil, ErrTooEarlyToAttend
		}
		affected, err := u.bookingRepo.UpdateStatusIf(tx, bookingID,
			entity.BookingStatusPending, entity.BookingStatusAttended, entity.SlotStateOccupied)
		if err != nil {
			u.log.Warnf("Failed to mark booking attended: %+v", err)
			return nil, err
		}
		if affected == 0 {
			return nil, ErrInvalidTransition
		}
		booking.Status = entity.BookingStatusAttended
	}

	consultation := &entity.Consultation{
		BookingID:       bookingID,
		Reason:          req.Reason,
		HeartRate:       req.HeartRate,
		RespiratoryRate: req.RespiratoryRate,
		Temperature:     req.Temperature,
		Weight:          req.Weight,
		Height:          req.Height,
		PhysicalExam:    req.PhysicalExam,
		Diagnosis:       req.Diagnosis,
		Treatment:       req.Treatment,
		Prescription:    req.Prescription,
	}

	if err := u.consultationRepo.Create(tx, consultation); err != nil {
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	consultation.Booking = *booking

	return converter.ConsultationToResponse(consultation), nil
}

func (u *consultationUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.ConsultationResponse, error) {
	consultation, err := u.consultationRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	return converter.ConsultationToResponse(consultation), nil
}

func (u *consultationUsecase) GetAll(ctx context.Context) ([]dto.ConsultationResponse, error) {
	consultations, err := u.consultationRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list consultations: %+v", err)
		return nil, err
	}

	return converter.ConsultationsToResponses(consultations), nil
}

func (u *consultationUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error) {
	consultation, err := u.consultationRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	consultation.Reason = req.Reason
	consultation.HeartRate = req.HeartRate
	consultation.RespiratoryRate = req.RespiratoryRate
	consultation.Temperature = req.Temperature
	consultation.Weight = req.Weight
	consultation.Height = req.Height
	consultation.PhysicalExam = req.PhysicalExam
	consultation.Diagnosis = req.Diagnosis
	consultation.Treatment = req.Treatment
	consultation.Prescription = req.Prescription

	if err := u.consultationRepo.Update(u.db.WithContext(ctx), consultation); err != nil {
		u.log.Warnf("Failed to update consultation: %+v", err)
		return nil, err
	}

	return converter.ConsultationToResponse(consultation), nil
}
