package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend-clinica/internal/converter"
	"backend-clinica/internal/delivery/dto"
	"backend-clinica/internal/domain/entity"
	"backend-clinica/internal/domain/repository"
	"backend-clinica/internal/schedule"
	"backend-clinica/internal/service"
	"backend-clinica/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidReference          = errors.New("invalid reference identifier")
	ErrInvalidDate               = errors.New("invalid date, use YYYY-MM-DD")
	ErrPatientNotFound           = errors.New("patient not found")
	ErrNoAvailability            = errors.New("doctor has no availability for this specialty")
	ErrSlotTaken                 = errors.New("slot is already booked")
	ErrBookingNotFound           = errors.New("booking not found")
	ErrInvalidTransition         = errors.New("booking status transition not allowed")
	ErrTooEarlyToAttend          = errors.New("booking cannot be attended before its scheduled start")
	ErrCancellationWindowExpired = errors.New("booking can only be cancelled at least 24 hours in advance")
	ErrNotCancellable            = errors.New("only cancelled bookings can be deleted")
)

type BookingUsecase interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error)
	GetAll(ctx context.Context) ([]dto.BookingResponse, error)
	GetFreeSlots(ctx context.Context, req *dto.FreeSlotsRequest) ([]dto.DaySlotsResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	specialtyRepo    repository.SpecialtyRepository
	availabilityRepo repository.AvailabilityRepository
	bookingRepo      repository.BookingRepository
	slotLock         *service.SlotLockService
	notifications    *service.NotificationService
	clk              clock.Clock
	horizonDays      int
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	specialtyRepo repository.SpecialtyRepository,
	availabilityRepo repository.AvailabilityRepository,
	bookingRepo repository.BookingRepository,
	slotLock *service.SlotLockService,
	notifications *service.NotificationService,
	clk clock.Clock,
	horizonDays int,
) BookingUsecase {
	return &bookingUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		specialtyRepo:    specialtyRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		slotLock:         slotLock,
		notifications:    notifications,
		clk:              clk,
		horizonDays:      horizonDays,
	}
}

// Create validates a booking request against the doctor's availability and
// existing bookings, then persists it as pendiente with its slot occupied.
// The checks run in a fixed order and short-circuit on the first failure,
// each with its own error. The per-slot lock plus the partial unique index
// ensure two concurrent requests for the same slot produce exactly one
// booking.
func (u *bookingUsecase) Create(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrInvalidReference
	}
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrInvalidReference
	}
	specialtyID, err := uuid.Parse(req.SpecialtyID)
	if err != nil {
		return nil, ErrInvalidReference
	}

	date, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	start, err := schedule.NormalizeClockTime(req.StartTime)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	patient, err := u.userRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil || patient.RoleID != entity.RoleIDPatient {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.userRepo.FindDoctorByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Specialty data drives the slot duration, so it is always read fresh.
	specialty, err := u.specialtyRepo.FindByID(db, specialtyID)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	if !doctor.HasSpecialty(specialtyID) {
		return nil, ErrSpecialtyNotAssigned
	}

	windows, err := u.availabilityRepo.FindByDoctorAndSpecialty(db, doctorID, specialtyID)
	if err != nil {
		u.log.Warnf("Failed to load availability: %+v", err)
		return nil, err
	}
	if len(windows) == 0 {
		return nil, ErrNoAvailability
	}

	duration := schedule.SlotDuration(specialty.Name)
	day := schedule.WeekdayName(date)

	end, err := schedule.ValidateStart(toScheduleWindows(windows), day, start, duration)
	if err != nil {
		return nil, err
	}

	token, err := u.slotLock.Acquire(ctx, doctorID, date, start)
	if err != nil {
		return nil, err
	}
	defer u.slotLock.Release(ctx, doctorID, date, start, token)

	conflict, err := u.bookingRepo.FindConflict(db, doctorID, date, start, end)
	if err != nil {
		u.log.Warnf("Failed to check slot conflict: %+v", err)
		return nil, err
	}
	if conflict != nil {
		return nil, ErrSlotTaken
	}

	booking := &entity.Booking{
		PatientID:   patientID,
		DoctorID:    doctorID,
		SpecialtyID: specialtyID,
		BookingDate: date,
		StartTime:   start,
		EndTime:     end,
		Status:      entity.BookingStatusPending,
		SlotState:   entity.SlotStateOccupied,
	}

	if err := u.bookingRepo.Create(db, booking); err != nil {
		if isDuplicateKeyError(err, "idx_doctor_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	u.notifyBookingCreated(booking, patient, doctor, specialty)

	booking.Patient = *patient
	booking.Doctor = *doctor
	booking.Specialty = *specialty

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) GetAll(ctx context.Context) ([]dto.BookingResponse, error) {
	bookings, err := u.bookingRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	return converter.BookingsToResponses(bookings), nil
}

// GetFreeSlots walks the booking horizon day by day and emits, for each day
// the doctor has an availability window for the specialty, the candidate
// start times with their free/occupied state. Days without a window are
// omitted. The walk is recomputed on every call.
func (u *bookingUsecase) GetFreeSlots(ctx context.Context, req *dto.FreeSlotsRequest) ([]dto.DaySlotsResponse, error) {
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrInvalidReference
	}
	specialtyID, err := uuid.Parse(req.SpecialtyID)
	if err != nil {
		return nil, ErrInvalidReference
	}

	db := u.db.WithContext(ctx)

	doctor, err := u.userRepo.FindDoctorByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	specialty, err := u.specialtyRepo.FindByID(db, specialtyID)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	windows, err := u.availabilityRepo.FindByDoctorAndSpecialty(db, doctorID, specialtyID)
	if err != nil {
		u.log.Warnf("Failed to load availability: %+v", err)
		return nil, err
	}

	scheduleWindows := toScheduleWindows(windows)
	schedule.SortWindows(scheduleWindows)
	duration := schedule.SlotDuration(specialty.Name)

	today := u.clk.Now()
	days := make([]dto.DaySlotsResponse, 0, u.horizonDays)

	for i := 0; i <= u.horizonDays; i++ {
		date := today.AddDate(0, 0, i)
		dayWindows := schedule.WindowsForDay(scheduleWindows, schedule.WeekdayName(date))
		if len(dayWindows) == 0 {
			continue
		}

		occupied, err := u.occupiedIntervals(db, doctorID, specialtyID, date)
		if err != nil {
			return nil, err
		}

		slots := make([]dto.SlotResponse, 0)
		for _, w := range dayWindows {
			for _, s := range schedule.WalkSlots(w, duration, occupied) {
				slots = append(slots, dto.SlotResponse{Time: s.Time, State: s.State})
			}
		}

		if len(slots) > 0 {
			days = append(days, dto.DaySlotsResponse{
				Date:  date.Format("2006-01-02"),
				Slots: slots,
			})
		}
	}

	return days, nil
}

// UpdateStatus applies one lifecycle transition: pendiente to atendido once
// the scheduled start has been reached, or pendiente to cancelado while at
// least 24 hours remain. The status flip is a single conditional UPDATE, so
// a concurrent transition on the same booking loses cleanly.
func (u *bookingUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	db := u.db.WithContext(ctx)

	booking, err := u.bookingRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	now := u.clk.Now()

	var slotState string
	target := entity.BookingStatus(req.Status)

	switch target {
	case entity.BookingStatusAttended:
		if !booking.IsPending() {
			return nil, ErrInvalidTransition
		}
		if !booking.CanAttend(now) {
			return nil, ErrTooEarlyToAttend
		}
		slotState = entity.SlotStateOccupied
	case entity.BookingStatusCancelled:
		if !booking.IsPending() {
			return nil, ErrInvalidTransition
		}
		if !booking.CanCancel(now) {
			return nil, ErrCancellationWindowExpired
		}
		// Cancelling frees the slot for other patients.
		slotState = entity.SlotStateFree
	default:
		return nil, ErrInvalidTransition
	}

	affected, err := u.bookingRepo.UpdateStatusIf(db, id, entity.BookingStatusPending, target, slotState)
	if err != nil {
		u.log.Warnf("Failed to update booking status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}

	booking.Status = target
	booking.SlotState = slotState

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	booking, err := u.bookingRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	if !booking.CanDelete() {
		return ErrNotCancellable
	}

	if _, err := u.bookingRepo.Delete(db, id); err != nil {
		u.log.Warnf("Failed to delete booking: %+v", err)
		return err
	}

	return nil
}

func (u *bookingUsecase) occupiedIntervals(db *gorm.DB, doctorID, specialtyID uuid.UUID, date time.Time) ([]schedule.Interval, error) {
	bookings, err := u.bookingRepo.FindOccupied(db, doctorID, specialtyID, date)
	if err != nil {
		u.log.Warnf("Failed to load occupied slots: %+v", err)
		return nil, err
	}

	intervals := make([]schedule.Interval, 0, len(bookings))
	for _, b := range bookings {
		intervals = append(intervals, schedule.Interval{Start: b.StartTime, End: b.EndTime})
	}
	return intervals, nil
}

// notifyBookingCreated hands the confirmation messages to the background
// worker. Delivery is best-effort and never affects the committed booking.
func (u *bookingUsecase) notifyBookingCreated(booking *entity.Booking, patient, doctor *entity.User, specialty *entity.Specialty) {
	date := booking.BookingDate.Format("2006-01-02")

	if patient.Phone != "" {
		u.notifications.Enqueue(service.Notification{
			To: patient.Phone,
			Message: fmt.Sprintf(
				"Hola %s, su reserva de %s con %s fue registrada para el %s a las %s.",
				patient.FirstName, specialty.Name, doctor.FullName(), date, booking.StartTime,
			),
		})
	}

	if doctor.Phone != "" {
		u.notifications.Enqueue(service.Notification{
			To: doctor.Phone,
			Message: fmt.Sprintf(
				"Nueva cita de %s: paciente %s el %s a las %s.",
				specialty.Name, patient.FullName(), date, booking.StartTime,
			),
		})
	}
}

func toScheduleWindows(windows []entity.AvailabilityWindow) []schedule.Window {
	out := make([]schedule.Window, 0, len(windows))
	for _, w := range windows {
		out = append(out, schedule.Window{
			Day:         w.Day,
			Start:       w.StartTime,
			End:         w.EndTime,
			Shift:       schedule.Shift(w.Shift),
			SpecialtyID: w.SpecialtyID,
		})
	}
	return out
}
