package dto

import "github.com/google/uuid"

// Request DTOs

type CreateSpecialtyRequest struct {
	Name string `json:"nombre" validate:"required,max=100"`
}

type UpdateSpecialtyRequest struct {
	Name string `json:"nombre" validate:"required,max=100"`
}

// Response DTOs

type SpecialtyResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"nombre"`
}
