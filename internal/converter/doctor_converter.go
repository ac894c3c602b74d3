package converter

import (
	"backend-clinica/internal/delivery/dto"
	"backend-clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorToResponse converts a doctor User entity, with specialties and
// availability preloaded, to DoctorResponse DTO. Windows are grouped under
// the specialty they belong to, in the stored order.
func DoctorToResponse(doctor *entity.User) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:           doctor.ID,
		FirstName:    doctor.FirstName,
		LastName:     doctor.LastName,
		Email:        doctor.Email,
		CI:           doctor.CI,
		Phone:        doctor.Phone,
		Specialties:  SpecialtiesToResponses(doctor.Specialties),
		Availability: groupAvailability(doctor),
	}

	return response
}

// DoctorsToResponses converts a slice of doctor User entities to DTOs
func DoctorsToResponses(doctors []entity.User) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		if resp := DoctorToResponse(&doctors[i]); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}

func groupAvailability(doctor *entity.User) []dto.SpecialtyAvailabilityResponse {
	names := make(map[uuid.UUID]string, len(doctor.Specialties))
	for _, s := range doctor.Specialties {
		names[s.ID] = s.Name
	}

	groups := make([]dto.SpecialtyAvailabilityResponse, 0, len(doctor.Specialties))
	index := make(map[uuid.UUID]int)

	for _, w := range doctor.Availability {
		i, ok := index[w.SpecialtyID]
		if !ok {
			i = len(groups)
			index[w.SpecialtyID] = i
			groups = append(groups, dto.SpecialtyAvailabilityResponse{
				SpecialtyID:   w.SpecialtyID,
				SpecialtyName: names[w.SpecialtyID],
				Windows:       []dto.AvailabilityWindowResponse{},
			})
		}
		groups[i].Windows = append(groups[i].Windows, dto.AvailabilityWindowResponse{
			Day:       w.Day,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			Shift:     w.Shift,
		})
	}

	return groups
}
