package dto

import "github.com/google/uuid"

// Response DTOs

type AvailableDatesResponse struct {
	MedecinID   uuid.UUID `json:"medecin_id"`
	HorizonDays int       `json:"horizon_days"`
	Dates       []string  `json:"dates"`        // Format: YYYY-MM-DD
}

type AvailableSlotsResponse struct {
	MedecinID   uuid.UUID `json:"medecin_id"`
	Date        string    `json:"date"`         // Format: YYYY-MM-DD
	SlotMinutes int       `json:"slot_minutes"`
	Slots       []string  `json:"slots"`        // Format: HH:MM, ascending
}
