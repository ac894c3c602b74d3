package converter

import (
	"backend-clinica/internal/delivery/dto"
	"backend-clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// SpecialtyToResponse converts a Specialty entity to SpecialtyResponse DTO
func SpecialtyToResponse(specialty *entity.Specialty) *dto.SpecialtyResponse {
	if specialty == nil || specialty.ID == uuid.Nil {
		return nil
	}

	return &dto.SpecialtyResponse{
		ID:   specialty.ID,
		Name: specialty.Name,
	}
}

// SpecialtiesToResponses converts a slice of Specialty entities to DTOs
func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, 0, len(specialties))
	for i := range specialties {
		if resp := SpecialtyToResponse(&specialties[i]); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}
