package converter

import (
	"backend-clinica/internal/delivery/dto"
	"backend-clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// ConsultationToResponse converts a Consultation entity to DTO
func ConsultationToResponse(consultation *entity.Consultation) *dto.ConsultationResponse {
	if consultation == nil {
		return nil
	}

	response := &dto.ConsultationResponse{
		ID:              consultation.ID,
		BookingID:       consultation.BookingID,
		Reason:          consultation.Reason,
		HeartRate:       consultation.HeartRate,
		RespiratoryRate: consultation.RespiratoryRate,
		Temperature:     consultation.Temperature,
		Weight:          consultation.Weight,
		Height:          consultation.Height,
		PhysicalExam:    consultation.PhysicalExam,
		Diagnosis:       consultation.Diagnosis,
		Treatment:       consultation.Treatment,
		Prescription:    consultation.Prescription,
		CreatedAt:       consultation.CreatedAt,
	}

	if consultation.Booking.ID != uuid.Nil {
		response.Booking = BookingToResponse(&consultation.Booking)
	}

	return response
}

// ConsultationsToResponses converts a slice of Consultation entities to DTOs
func ConsultationsToResponses(consultations []entity.Consultation) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, 0, len(consultations))
	for i := range consultations {
		if resp := ConsultationToResponse(&consultations[i]); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}
