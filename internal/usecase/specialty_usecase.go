package usecase

import (
	"context"
	"errors"

	"backend-clinica/internal/converter"
	"backend-clinica/internal/delivery/dto"
	"backend-clinica/internal/domain/entity"
	"backend-clinica/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSpecialtyNotFound  = errors.New("specialty not found")
	ErrSpecialtyNameTaken = errors.New("specialty name already exists")
	ErrSpecialtyInUse     = errors.New("specialty is referenced by doctors or bookings")
)

type SpecialtyUsecase interface {
	Create(ctx context.Context, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SpecialtyResponse, error)
	GetAll(ctx context.Context) ([]dto.SpecialtyResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSpecialtyRequest) (*dto.SpecialtyResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type specialtyUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
}

func NewSpecialtyUsecase(db *gorm.DB, log *logrus.Logger, specialtyRepo repository.SpecialtyRepository) SpecialtyUsecase {
	return &specialtyUsecase{
		db:            db,
		log:           log,
		specialtyRepo: specialtyRepo,
	}
}

func (u *specialtyUsecase) Create(ctx context.Context, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	specialty := &entity.Specialty{Name: req.Name}

	if err := u.specialtyRepo.Create(u.db.WithContext(ctx), specialty); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialtyNameTaken
		}
		u.log.Warnf("Failed to create specialty: %+v", err)
		return nil, err
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.SpecialtyResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) GetAll(ctx context.Context) ([]dto.SpecialtyResponse, error) {
	specialties, err := u.specialtyRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list specialties: %+v", err)
		return nil, err
	}

	return converter.SpecialtiesToResponses(specialties), nil
}

func (u *specialtyUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	specialty.Name = req.Name

	if err := u.specialtyRepo.Update(u.db.WithContext(ctx), specialty); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialtyNameTaken
		}
		u.log.Warnf("Failed to update specialty: %+v", err)
		return nil, err
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.specialtyRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err, "specialty") {
			return ErrSpecialtyInUse
		}
		u.log.Warnf("Failed to delete specialty: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSpecialtyNotFound
	}

	return nil
}
