package handler

import (
	"net/http"
	"strconv"

	"github.com/LaCsoN00/medapp-sub000/internal/availability"
	"github.com/LaCsoN00/medapp-sub000/internal/usecase"
	"github.com/LaCsoN00/medapp-sub000/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

// GetAvailableDates lists the bookable dates of a medecin within the horizon.
// Optional query param `days` overrides the default horizon.
func (h *AvailabilityHandler) GetAvailableDates(w http.ResponseWriter, r *http.Request) {
	medecinID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medecin ID", nil)
		return
	}

	horizonDays := 0
	if days := r.URL.Query().Get("days"); days != "" {
		horizonDays, err = strconv.Atoi(days)
		if err != nil || horizonDays < 1 {
			response.Error(w, http.StatusBadRequest, "Invalid days parameter", nil)
			return
		}
	}

	dates, err := h.availabilityUsecase.AvailableDates(r.Context(), medecinID, horizonDays)
	if err != nil {
		switch err {
		case usecase.ErrMedecinNotFound:
			response.NotFound(w, "Medecin not found")
		default:
			response.InternalServerError(w, "Failed to get available dates")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available dates retrieved successfully", dates)
}

// GetAvailableSlots lists the free slot start times of a medecin for one
// date. Required query param `date` (YYYY-MM-DD); optional `duration` in
// minutes overrides the default slot step.
func (h *AvailabilityHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	medecinID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medecin ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter 'date' is required", nil)
		return
	}

	slotMinutes := 0
	if duration := r.URL.Query().Get("duration"); duration != "" {
		slotMinutes, err = strconv.Atoi(duration)
		if err != nil || slotMinutes < 1 {
			response.Error(w, http.StatusBadRequest, "Invalid duration parameter", nil)
			return
		}
	}

	slots, err := h.availabilityUsecase.AvailableTimeSlots(r.Context(), medecinID, date, slotMinutes)
	if err != nil {
		switch err {
		case usecase.ErrMedecinNotFound:
			response.NotFound(w, "Medecin not found")
		case usecase.ErrInvalidSlotDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case availability.ErrInvalidTimeFormat, availability.ErrInvalidTemplate:
			response.Error(w, http.StatusUnprocessableEntity, "Medecin working hours are malformed", nil)
		default:
			response.InternalServerError(w, "Failed to get available slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}
