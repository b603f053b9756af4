package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateWorkingHourRequest struct {
	DayOfWeek *int   `json:"day_of_week" validate:"required,min=0,max=6"` // 0 = Sunday .. 6 = Saturday
	StartTime string `json:"start_time" validate:"required"`              // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required"`                // Format: HH:MM
}

type UpdateWorkingHourRequest struct {
	DayOfWeek *int   `json:"day_of_week" validate:"omitempty,min=0,max=6"`
	StartTime string `json:"start_time" validate:"omitempty"`
	EndTime   string `json:"end_time" validate:"omitempty"`
}

// Response DTOs

type WorkingHourResponse struct {
	ID        int       `json:"id"`
	MedecinID uuid.UUID `json:"medecin_id"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WorkingHourListResponse struct {
	WorkingHours []WorkingHourResponse `json:"working_hours"`
	Total        int                   `json:"total"`
}
