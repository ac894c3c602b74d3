package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"backend-clinica/internal/delivery/dto"
	"backend-clinica/internal/schedule"
	"backend-clinica/internal/usecase"
	"backend-clinica/pkg/response"
	"backend-clinica/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// RegisterDoctor handles doctor registration with specialties and availability
// @Summary Register a doctor
// @Description Create a doctor account with specialties and weekly availability windows
// @Tags Doctors
// @Accept json
// @Produce json
// @Param request body dto.RegisterDoctorRequest true "Doctor"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /medicos [post]
func (h *DoctorHandler) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.Register(r.Context(), &req)
	if err != nil {
		h.writeDoctorError(w, err, "Failed to register doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor registered successfully", doctor)
}

// GetAllDoctors lists doctors with their specialties and availability
// @Summary List doctors
// @Tags Doctors
// @Produce json
// @Success 200 {object} response.Response
// @Router /medicos [get]
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GetDoctor returns one doctor with availability grouped per specialty
// @Summary Get a doctor
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medicos/{id} [get]
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// UpdateDoctor replaces a doctor's profile, specialties and availability
// @Summary Update a doctor
// @Tags Doctors
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param request body dto.UpdateDoctorRequest true "Doctor"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medicos/{id} [put]
func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeDoctorError(w, err, "Failed to update doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

// DeleteDoctor removes a doctor without bookings
// @Summary Delete a doctor
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /medicos/{id} [delete]
func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	if err := h.doctorUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDoctorHasBookings:
			response.Error(w, http.StatusConflict, "Doctor has bookings and cannot be deleted", nil)
		default:
			response.InternalServerError(w, "Failed to delete doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}

// writeDoctorError maps registration/update failures, including availability
// planning errors, onto HTTP responses.
func (h *DoctorHandler) writeDoctorError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		response.Error(w, http.StatusConflict, "Email already exists", nil)
	case errors.Is(err, usecase.ErrCIAlreadyExists):
		response.Error(w, http.StatusConflict, "CI already exists", nil)
	case errors.Is(err, usecase.ErrInvalidReference):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrUnknownSpecialty):
		response.NotFound(w, "One or more specialties do not exist")
	case errors.Is(err, usecase.ErrSpecialtyNotAssigned):
		response.Error(w, http.StatusBadRequest, "Availability references a specialty not assigned to the doctor", nil)
	case errors.Is(err, usecase.ErrTurnRequired):
		response.Error(w, http.StatusBadRequest, "A valid turn (mañana, tarde, ambos) is required for general medicine", nil)
	case errors.Is(err, schedule.ErrWindowConflict):
		response.Error(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, schedule.ErrInvalidDayName),
		errors.Is(err, schedule.ErrInvertedWindow),
		errors.Is(err, schedule.ErrOutsideShiftHours),
		errors.Is(err, schedule.ErrInvalidClockTime):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
