package handler

import (
	"encoding/json"
	"net/http"

	"backend-clinica/internal/delivery/dto"
	"backend-clinica/internal/usecase"
	"backend-clinica/pkg/response"
	"backend-clinica/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SpecialtyHandler struct {
	specialtyUsecase usecase.SpecialtyUsecase
	validator        *validator.CustomValidator
}

func NewSpecialtyHandler(specialtyUsecase usecase.SpecialtyUsecase, validator *validator.CustomValidator) *SpecialtyHandler {
	return &SpecialtyHandler{
		specialtyUsecase: specialtyUsecase,
		validator:        validator,
	}
}

// CreateSpecialty handles specialty creation
// @Summary Create a specialty
// @Tags Specialties
// @Accept json
// @Produce json
// @Param request body dto.CreateSpecialtyRequest true "Specialty"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /especialidades [post]
func (h *SpecialtyHandler) CreateSpecialty(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSpecialtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialty, err := h.specialtyUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSpecialtyNameTaken:
			response.Error(w, http.StatusConflict, "Specialty name already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create specialty")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Specialty created successfully", specialty)
}

// GetAllSpecialties lists the specialty catalog
// @Summary List specialties
// @Tags Specialties
// @Produce json
// @Success 200 {object} response.Response
// @Router /especialidades [get]
func (h *SpecialtyHandler) GetAllSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.specialtyUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

// GetSpecialty returns one specialty
// @Summary Get a specialty
// @Tags Specialties
// @Produce json
// @Param id path string true "Specialty ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /especialidades/{id} [get]
func (h *SpecialtyHandler) GetSpecialty(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialty ID", nil)
		return
	}

	specialty, err := h.specialtyUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrSpecialtyNotFound:
			response.NotFound(w, "Specialty not found")
		default:
			response.InternalServerError(w, "Failed to get specialty")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialty retrieved successfully", specialty)
}

// UpdateSpecialty renames a specialty
// @Summary Update a specialty
// @Tags Specialties
// @Accept json
// @Produce json
// @Param id path string true "Specialty ID"
// @Param request body dto.UpdateSpecialtyRequest true "Specialty"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /especialidades/{id} [put]
func (h *SpecialtyHandler) UpdateSpecialty(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialty ID", nil)
		return
	}

	var req dto.UpdateSpecialtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialty, err := h.specialtyUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSpecialtyNotFound:
			response.NotFound(w, "Specialty not found")
		case usecase.ErrSpecialtyNameTaken:
			response.Error(w, http.StatusConflict, "Specialty name already exists", nil)
		default:
			response.InternalServerError(w, "Failed to update specialty")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialty updated successfully", specialty)
}

// DeleteSpecialty removes a specialty that is not referenced anywhere
// @Summary Delete a specialty
// @Tags Specialties
// @Produce json
// @Param id path string true "Specialty ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /especialidades/{id} [delete]
func (h *SpecialtyHandler) DeleteSpecialty(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialty ID", nil)
		return
	}

	if err := h.specialtyUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrSpecialtyNotFound:
			response.NotFound(w, "Specialty not found")
		case usecase.ErrSpecialtyInUse:
			response.Error(w, http.StatusConflict, "Specialty is in use and cannot be deleted", nil)
		default:
			response.InternalServerError(w, "Failed to delete specialty")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialty deleted successfully", nil)
}
