package dto

import "github.com/google/uuid"

// Request DTOs

type CreateMedecinRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FullName       string `json:"full_name" validate:"required,min=2,max=255"`
	LicenseNumber  string `json:"license_number" validate:"required,max=50"`
	Specialization string `json:"specialization" validate:"required,max=100"`
	Biography      string `json:"biography" validate:"omitempty"`
}

type UpdateMedecinRequest struct {
	FullName       string `json:"full_name" validate:"omitempty,min=2,max=255"`
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
	Biography      string `json:"biography" validate:"omitempty"`
	IsActive       *bool  `json:"is_active" validate:"omitempty"`
}

type SetStatusRequest struct {
	Status     string `json:"status" validate:"required,oneof=AVAILABLE BUSY UNAVAILABLE"`
	StatusMode string `json:"status_mode" validate:"required,oneof=AUTO MANUAL"`
}

// Response DTOs

type MedecinResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	LicenseNumber  string    `json:"license_number"`
	Specialization string    `json:"specialization"`
	Biography      string    `json:"biography,omitempty"`
	Status         string    `json:"status"`
	StatusMode     string    `json:"status_mode"`
	IsActive       bool      `json:"is_active"`
}

type MedecinListResponse struct {
	Medecins []MedecinResponse `json:"medecins"`
	Total    int               `json:"total"`
}

type MedecinStatusResponse struct {
	MedecinID  uuid.UUID `json:"medecin_id"`
	Status     string    `json:"status"`
	StatusMode string    `json:"status_mode"`
}
