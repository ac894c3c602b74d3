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

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
	}
}

// CreateConsultation registers a medical record against a booking
// @Summary Create a consultation
// @Description Register a consultation; a pending booking is marked attended in the same transaction
// @Tags Consultations
// @Accept json
// @Produce json
// @Param request body dto.CreateConsultationRequest true "Consultation"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /consultas [post]
func (h *ConsultationHandler) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidReference:
			response.Error(w, http.StatusBadRequest, "Invalid booking reference", nil)
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingCancelled:
			response.Error(w, http.StatusConflict, "Booking is cancelled", nil)
		case usecase.ErrTooEarlyToAttend:
			response.Error(w, http.StatusBadRequest, "Booking cannot be attended before its scheduled start", nil)
		case usecase.ErrInvalidTransition:
			response.Error(w, http.StatusConflict, "Booking status transition not allowed", nil)
		default:
			response.InternalServerError(w, "Failed to create consultation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Consultation created successfully", consultation)
}

// GetAllConsultations lists consultations
// @Summary List consultations
// @Tags Consultations
// @Produce json
// @Success 200 {object} response.Response
// @Router /consultas [get]
func (h *ConsultationHandler) GetAllConsultations(w http.ResponseWriter, r *http.Request) {
	consultations, err := h.consultationUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get consultations")
		return
	}

	response.Success(w, http.StatusOK, "Consultations retrieved successfully", consultations)
}

// GetConsultation returns one consultation
// @Summary Get a consultation
// @Tags Consultations
// @Produce json
// @Param id path string true "Consultation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /consultas/{id} [get]
func (h *ConsultationHandler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultation ID", nil)
		return
	}

	consultation, err := h.consultationUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrConsultationNotFound:
			response.NotFound(w, "Consultation not found")
		default:
			response.InternalServerError(w, "Failed to get consultation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation retrieved successfully", consultation)
}

// UpdateConsultation edits a consultation record
// @Summary Update a consultation
// @Tags Consultations
// @Accept json
// @Produce json
// @Param id path string true "Consultation ID"
// @Param request body dto.UpdateConsultationRequest true "Consultation"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /consultas/{id} [put]
func (h *ConsultationHandler) UpdateConsultation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultation ID", nil)
		return
	}

	var req dto.UpdateConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrConsultationNotFound:
			response.NotFound(w, "Consultation not found")
		default:
			response.InternalServerError(w, "Failed to update consultation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation updated successfully", consultation)
}
