package usecase

import (
	"context"
	"errors"
	"strings"

	"backend-clinica/internal/converter"
	"backend-clinica/internal/delivery/dto"
	"backend-clinica/internal/domain/entity"
	"backend-clinica/internal/domain/repository"
	"backend-clinica/internal/schedule"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrUnknownSpecialty     = errors.New("one or more specialties do not exist")
	ErrSpecialtyNotAssigned = errors.New("specialty is not assigned to the doctor")
	ErrTurnRequired         = errors.New("turn is required for general medicine")
	ErrDoctorHasBookings    = errors.New("doctor has bookings and cannot be deleted")
)

type DoctorUsecase interface {
	Register(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	GetAll(ctx context.Context) ([]dto.DoctorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	specialtyRepo    repository.SpecialtyRepository
	availabilityRepo repository.AvailabilityRepository
	bookingRepo      repository.BookingRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	specialtyRepo repository.SpecialtyRepository,
	availabilityRepo repository.AvailabilityRepository,
	bookingRepo repository.BookingRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		specialtyRepo:    specialtyRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
	}
}

func (u *doctorUsecase) Register(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	specialties, err := u.resolveSpecialties(tx, req.SpecialtyIDs)
	if err != nil {
		return nil, err
	}

	windows, err := u.planWindows(specialties, req.Turn, req.Availability)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	doctor := &entity.User{
		RoleID:    entity.RoleIDDoctor,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashedPassword),
		CI:        req.CI,
		Phone:     req.Phone,
	}

	if err := u.userRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "ci") {
			return nil, ErrCIAlreadyExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := u.userRepo.ReplaceSpecialties(tx, doctor, specialties); err != nil {
		u.log.Warnf("Failed to assign specialties: %+v", err)
		return nil, err
	}

	entityWindows := windowsToEntities(doctor.ID, windows)
	if err := u.availabilityRepo.ReplaceForDoctor(tx, doctor.ID, entityWindows); err != nil {
		u.log.Warnf("Failed to store availability: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	doctor.Specialties = specialties
	doctor.Availability = entityWindows

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.userRepo.FindDoctorByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAll(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.userRepo.FindByRole(u.db.WithContext(ctx), entity.RoleIDDoctor)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.userRepo.FindDoctorByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	specialties, err := u.resolveSpecialties(tx, req.SpecialtyIDs)
	if err != nil {
		return nil, err
	}

	windows, err := u.planWindows(specialties, req.Turn, req.Availability)
	if err != nil {
		return nil, err
	}

	doctor.FirstName = req.FirstName
	doctor.LastName = req.LastName
	doctor.Phone = req.Phone

	if err := u.userRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	if err := u.userRepo.ReplaceSpecialties(tx, doctor, specialties); err != nil {
		u.log.Warnf("Failed to replace specialties: %+v", err)
		return nil, err
	}

	// The availability set is replaced wholesale, never patched in place.
	entityWindows := windowsToEntities(doctor.ID, windows)
	if err := u.availabilityRepo.ReplaceForDoctor(tx, doctor.ID, entityWindows); err != nil {
		u.log.Warnf("Failed to replace availability: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	doctor.Specialties = specialties
	doctor.Availability = entityWindows

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.userRepo.FindDoctorByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	hasBookings, err := u.bookingRepo.ExistsByDoctorID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to check doctor bookings: %+v", err)
		return err
	}
	if hasBookings {
		return ErrDoctorHasBookings
	}

	if _, err := u.userRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}

	return tx.Commit().Error
}

// resolveSpecialties loads the referenced specialties and fails when any of
// them is missing.
func (u *doctorUsecase) resolveSpecialties(db *gorm.DB, rawIDs []string) ([]entity.Specialty, error) {
	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, ErrInvalidReference
		}
		ids = append(ids, id)
	}

	specialties, err := u.specialtyRepo.FindByIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to load specialties: %+v", err)
		return nil, err
	}
	if len(specialties) != len(ids) {
		return nil, ErrUnknownSpecialty
	}

	return specialties, nil
}

// planWindows builds the doctor's full availability set: auto-generated
// general medicine windows first, then the manually declared ones, with the
// same-day overlap invariant enforced across the union.
func (u *doctorUsecase) planWindows(specialties []entity.Specialty, turn string, declared []dto.DeclaredWindowRequest) ([]schedule.Window, error) {
	assigned := make(map[uuid.UUID]entity.Specialty, len(specialties))
	for _, s := range specialties {
		assigned[s.ID] = s
	}

	var auto []schedule.Window
	for _, s := range specialties {
		if !strings.Contains(strings.ToLower(s.Name), schedule.GeneralMedicine) {
			continue
		}
		shift, ok := schedule.ParseShift(turn)
		if !ok {
			return nil, ErrTurnRequired
		}
		auto = append(auto, schedule.GeneralMedicineWindows(s.ID, shift)...)
	}

	declaredWindows := make([]schedule.Window, 0, len(declared))
	for _, d := range declared {
		specialtyID, err := uuid.Parse(d.SpecialtyID)
		if err != nil {
			return nil, ErrInvalidReference
		}
		if _, ok := assigned[specialtyID]; !ok {
			return nil, ErrSpecialtyNotAssigned
		}
		declaredWindows = append(declaredWindows, schedule.Window{
			Day:         d.Day,
			Start:       d.StartTime,
			End:         d.EndTime,
			SpecialtyID: specialtyID,
		})
	}

	return schedule.PlanWindows(auto, declaredWindows)
}

func windowsToEntities(doctorID uuid.UUID, windows []schedule.Window) []entity.AvailabilityWindow {
	entities := make([]entity.AvailabilityWindow, 0, len(windows))
	for _, w := range windows {
		entities = append(entities, entity.AvailabilityWindow{
			DoctorID:    doctorID,
			SpecialtyID: w.SpecialtyID,
			Day:         w.Day,
			StartTime:   w.Start,
			EndTime:     w.End,
			Shift:       string(w.Shift),
		})
	}
	return entities
}
