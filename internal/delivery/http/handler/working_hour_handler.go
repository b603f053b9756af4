package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/LaCsoN00/medapp-sub000/internal/availability"
	"github.com/LaCsoN00/medapp-sub000/internal/delivery/dto"
	"github.com/LaCsoN00/medapp-sub000/internal/usecase"
	"github.com/LaCsoN00/medapp-sub000/pkg/response"
	"github.com/LaCsoN00/medapp-sub000/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type WorkingHourHandler struct {
	workingHourUsecase usecase.WorkingHourUsecase
	validator          *validator.CustomValidator
}

func NewWorkingHourHandler(workingHourUsecase usecase.WorkingHourUsecase, validator *validator.CustomValidator) *WorkingHourHandler {
	return &WorkingHourHandler{
		workingHourUsecase: workingHourUsecase,
		validator:          validator,
	}
}

func (h *WorkingHourHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWorkingHourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hour, err := h.workingHourUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case availability.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Time must be in HH:MM format", nil)
		case availability.ErrInvalidTemplate:
			response.Error(w, http.StatusBadRequest, "End time must be after start time", nil)
		case usecase.ErrMedecinNotFound:
			response.NotFound(w, "Medecin profile not found")
		default:
			response.InternalServerError(w, "Failed to create working hour")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Working hour created successfully", hour)
}

func (h *WorkingHourHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	hours, err := h.workingHourUsecase.GetMine(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get working hours")
		return
	}

	response.Success(w, http.StatusOK, "Working hours retrieved successfully", hours)
}

// GetByMedecin is public: patients inspect a medecin's weekly template.
func (h *WorkingHourHandler) GetByMedecin(w http.ResponseWriter, r *http.Request) {
	medecinID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medecin ID", nil)
		return
	}

	hours, err := h.workingHourUsecase.GetByMedecin(r.Context(), medecinID)
	if err != nil {
		response.InternalServerError(w, "Failed to get working hours")
		return
	}

	response.Success(w, http.StatusOK, "Working hours retrieved successfully", hours)
}

func (h *WorkingHourHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid working hour ID", nil)
		return
	}

	var req dto.UpdateWorkingHourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hour, err := h.workingHourUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrWorkingHourNotFound:
			response.NotFound(w, "Working hour not found")
		case usecase.ErrWorkingHourNotOwned:
			response.Forbidden(w, "Working hour does not belong to you")
		case availability.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Time must be in HH:MM format", nil)
		case availability.ErrInvalidTemplate:
			response.Error(w, http.StatusBadRequest, "End time must be after start time", nil)
		default:
			response.InternalServerError(w, "Failed to update working hour")
		}
		return
	}

	response.Success(w, http.StatusOK, "Working hour updated successfully", hour)
}

func (h *WorkingHourHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid working hour ID", nil)
		return
	}

	if err := h.workingHourUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrWorkingHourNotFound:
			response.NotFound(w, "Working hour not found")
		case usecase.ErrWorkingHourNotOwned:
			response.Forbidden(w, "Working hour does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete working hour")
		}
		return
	}

	response.Success(w, http.StatusOK, "Working hour deleted successfully", nil)
}
