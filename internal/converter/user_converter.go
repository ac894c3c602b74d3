package converter

import (
	"backend-clinica/internal/delivery/dto"
	"backend-clinica/internal/domain/entity"

	"github.com/google/uuid"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User, roleName string) *dto.UserResponse {
	if user == nil {
		return nil
	}

	birthDate := ""
	if !user.BirthDate.IsZero() {
		birthDate = user.BirthDate.Format("2006-01-02")
	}

	return &dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      roleName,
		CI:        user.CI,
		Gender:    user.Gender,
		BirthDate: birthDate,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UserToSummary converts a User entity to the compact form embedded in
// booking and consultation responses.
func UserToSummary(user *entity.User) *dto.UserSummaryResponse {
	if user == nil || user.ID == uuid.Nil {
		return nil
	}

	return &dto.UserSummaryResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
	}
}
