package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"backend-clinica/internal/delivery/dto"
	"backend-clinica/internal/schedule"
	"backend-clinica/internal/service"
	"backend-clinica/internal/usecase"
	"backend-clinica/pkg/response"
	"backend-clinica/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// CreateBooking handles booking creation
// @Summary Create a booking
// @Description Book a doctor's slot for a patient on a given date and start time
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /reservas [post]
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeBookingError(w, err, "Failed to create booking")
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

// GetFreeSlots lists free and occupied slots over the booking horizon
// @Summary List available slots
// @Description Walk the coming days and return each bookable start time with its state
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body dto.FreeSlotsRequest true "Doctor and specialty"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reservas/dialibre [post]
func (h *BookingHandler) GetFreeSlots(w http.ResponseWriter, r *http.Request) {
	var req dto.FreeSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	days, err := h.bookingUsecase.GetFreeSlots(r.Context(), &req)
	if err != nil {
		h.writeBookingError(w, err, "Failed to get available slots")
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", days)
}

// GetAllBookings lists bookings
// @Summary List bookings
// @Tags Bookings
// @Produce json
// @Success 200 {object} response.Response
// @Router /reservas [get]
func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// GetBooking returns one booking
// @Summary Get a booking
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reservas/{id} [get]
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		default:
			response.InternalServerError(w, "Failed to get booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

// UpdateBookingStatus applies a lifecycle transition to a booking
// @Summary Update booking status
// @Description Move a pending booking to atendido or cancelado under the temporal rules
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /reservas/{id} [put]
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrTooEarlyToAttend:
			response.Error(w, http.StatusBadRequest, "Booking cannot be attended before its scheduled start", nil)
		case usecase.ErrCancellationWindowExpired:
			response.Error(w, http.StatusBadRequest, "Bookings can only be cancelled at least 24 hours in advance", nil)
		case usecase.ErrInvalidTransition:
			response.Error(w, http.StatusConflict, "Booking status transition not allowed", nil)
		default:
			response.InternalServerError(w, "Failed to update booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking updated successfully", booking)
}

// DeleteBooking removes a cancelled booking
// @Summary Delete a booking
// @Description Permanently remove a booking; only cancelled bookings qualify
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reservas/{id} [delete]
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	if err := h.bookingUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrNotCancellable:
			response.Error(w, http.StatusBadRequest, "Only cancelled bookings can be deleted", nil)
		default:
			response.InternalServerError(w, "Failed to delete booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking deleted successfully", nil)
}

// writeBookingError maps validator-chain failures onto HTTP responses, one
// distinct reason per failed check.
func (h *BookingHandler) writeBookingError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidReference),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, schedule.ErrInvalidClockTime):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrSpecialtyNotFound):
		response.NotFound(w, "Specialty not found")
	case errors.Is(err, usecase.ErrSpecialtyNotAssigned):
		response.Error(w, http.StatusBadRequest, "Specialty is not assigned to the doctor", nil)
	case errors.Is(err, usecase.ErrNoAvailability):
		response.Error(w, http.StatusBadRequest, "Doctor has no availability for this specialty", nil)
	case errors.Is(err, schedule.ErrOutOfRange),
		errors.Is(err, schedule.ErrUnalignedStart),
		errors.Is(err, schedule.ErrExceedsAvailability):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrSlotTaken):
		response.Error(w, http.StatusConflict, "Slot is already booked", nil)
	case errors.Is(err, service.ErrSlotLocked):
		response.Error(w, http.StatusConflict, "Slot is being booked by another request, try again", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
