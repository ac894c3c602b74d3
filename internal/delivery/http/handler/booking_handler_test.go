package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend-clinica/internal/delivery/dto"
	"backend-clinica/internal/schedule"
	"backend-clinica/internal/service"
	"backend-clinica/internal/usecase"
	"backend-clinica/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// stubBookingUsecase returns canned results so the handler's status mapping
// can be exercised without storage.
type stubBookingUsecase struct {
	createErr error
	booking   *dto.BookingResponse
	days      []dto.DaySlotsResponse
	slotsErr  error
	updateErr error
	deleteErr error
}

func (s *stubBookingUsecase) Create(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.booking, nil
}

func (s *stubBookingUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error) {
	if s.booking == nil {
		return nil, usecase.ErrBookingNotFound
	}
	return s.booking, nil
}

func (s *stubBookingUsecase) GetAll(ctx context.Context) ([]dto.BookingResponse, error) {
	return nil, nil
}

func (s *stubBookingUsecase) GetFreeSlots(ctx context.Context, req *dto.FreeSlotsRequest) ([]dto.DaySlotsResponse, error) {
	if s.slotsErr != nil {
		return nil, s.slotsErr
	}
	return s.days, nil
}

func (s *stubBookingUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.booking, nil
}

func (s *stubBookingUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteErr
}

func validCreateBody() []byte {
	body, _ := json.Marshal(dto.CreateBookingRequest{
		PatientID:   uuid.New().String(),
		DoctorID:    uuid.New().String(),
		SpecialtyID: uuid.New().String(),
		BookingDate: "2025-01-06",
		StartTime:   "08:00",
	})
	return body
}

func TestCreateBookingStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"created", nil, http.StatusCreated},
		{"invalid reference", usecase.ErrInvalidReference, http.StatusBadRequest},
		{"invalid date", usecase.ErrInvalidDate, http.StatusBadRequest},
		{"patient missing", usecase.ErrPatientNotFound, http.StatusNotFound},
		{"doctor missing", usecase.ErrDoctorNotFound, http.StatusNotFound},
		{"specialty missing", usecase.ErrSpecialtyNotFound, http.StatusNotFound},
		{"specialty not assigned", usecase.ErrSpecialtyNotAssigned, http.StatusBadRequest},
		{"no availability", usecase.ErrNoAvailability, http.StatusBadRequest},
		{"out of range", fmt.Errorf("%w: fuera de horario", schedule.ErrOutOfRange), http.StatusBadRequest},
		{"unaligned", fmt.Errorf("%w: 20 minutos", schedule.ErrUnalignedStart), http.StatusBadRequest},
		{"exceeds availability", fmt.Errorf("%w: hasta 12:00", schedule.ErrExceedsAvailability), http.StatusBadRequest},
		{"slot taken", usecase.ErrSlotTaken, http.StatusConflict},
		{"slot locked", service.ErrSlotLocked, http.StatusConflict},
		{"storage down", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubBookingUsecase{
				createErr: tt.err,
				booking:   &dto.BookingResponse{ID: uuid.New()},
			}
			h := NewBookingHandler(stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPost, "/reservas", bytes.NewReader(validCreateBody()))
			rec := httptest.NewRecorder()

			h.CreateBooking(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d (body %s)", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCreateBookingRejectsMissingFields(t *testing.T) {
	h := NewBookingHandler(&stubBookingUsecase{}, validator.NewValidator())

	body, _ := json.Marshal(map[string]string{"medicoId": uuid.New().String()})
	req := httptest.NewRequest(http.MethodPost, "/reservas", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateBooking(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing fields, got %d", rec.Code)
	}
}

func TestGetFreeSlotsReturnsDays(t *testing.T) {
	stub := &stubBookingUsecase{
		days: []dto.DaySlotsResponse{
			{Date: "2025-01-06", Slots: []dto.SlotResponse{{Time: "08:00", State: "LIBRE"}}},
		},
	}
	h := NewBookingHandler(stub, validator.NewValidator())

	body, _ := json.Marshal(dto.FreeSlotsRequest{
		DoctorID:    uuid.New().String(),
		SpecialtyID: uuid.New().String(),
	})
	req := httptest.NewRequest(http.MethodPost, "/reservas/dialibre", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.GetFreeSlots(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool                   `json:"success"`
		Data    []dto.DaySlotsResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || len(resp.Data) != 1 || resp.Data[0].Date != "2025-01-06" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestUpdateBookingStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"updated", nil, http.StatusOK},
		{"not found", usecase.ErrBookingNotFound, http.StatusNotFound},
		{"too early", usecase.ErrTooEarlyToAttend, http.StatusBadRequest},
		{"window expired", usecase.ErrCancellationWindowExpired, http.StatusBadRequest},
		{"bad transition", usecase.ErrInvalidTransition, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubBookingUsecase{
				updateErr: tt.err,
				booking:   &dto.BookingResponse{ID: uuid.New()},
			}
			h := NewBookingHandler(stub, validator.NewValidator())

			body, _ := json.Marshal(dto.UpdateBookingStatusRequest{Status: "cancelado"})
			req := httptest.NewRequest(http.MethodPut, "/reservas/"+uuid.New().String(), bytes.NewReader(body))
			req = mux.SetURLVars(req, map[string]string{"id": uuid.New().String()})
			rec := httptest.NewRecorder()

			h.UpdateBookingStatus(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestDeleteBookingOnlyCancelled(t *testing.T) {
	stub := &stubBookingUsecase{deleteErr: usecase.ErrNotCancellable}
	h := NewBookingHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/reservas/"+uuid.New().String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.New().String()})
	rec := httptest.NewRecorder()

	h.DeleteBooking(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-cancelled delete, got %d", rec.Code)
	}
}
