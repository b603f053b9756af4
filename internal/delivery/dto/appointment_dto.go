package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	MedecinID uuid.UUID `json:"medecin_id" validate:"required"`
	Date      string    `json:"date" validate:"required"`      // Format: YYYY-MM-DD
	Time      string    `json:"time" validate:"required"`      // Format: HH:MM, a slot start
	Reason    string    `json:"reason" validate:"omitempty,max=1000"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        uuid.UUID        `json:"id"`
	PatientID uuid.UUID        `json:"patient_id"`
	MedecinID uuid.UUID        `json:"medecin_id"`
	Medecin   *MedecinResponse `json:"medecin,omitempty"`
	Patient   *UserResponse    `json:"patient,omitempty"`
	Date      time.Time        `json:"date"`
	Status    string           `json:"status"`
	Reason    string           `json:"reason,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
