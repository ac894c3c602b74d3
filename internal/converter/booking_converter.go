package converter

import (
	"backend-clinica/internal/delivery/dto"
	"backend-clinica/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:          booking.ID,
		PatientID:   booking.PatientID,
		DoctorID:    booking.DoctorID,
		SpecialtyID: booking.SpecialtyID,
		BookingDate: booking.BookingDate.Format("2006-01-02"),
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Status:      string(booking.Status),
		SlotState:   booking.SlotState,
		Patient:     UserToSummary(&booking.Patient),
		Doctor:      UserToSummary(&booking.Doctor),
		Specialty:   SpecialtyToResponse(&booking.Specialty),
		CreatedAt:   booking.CreatedAt,
	}
}

// BookingsToResponses converts a slice of Booking entities to DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		if resp := BookingToResponse(&bookings[i]); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}
