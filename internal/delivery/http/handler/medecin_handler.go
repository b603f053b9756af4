package handler

import (
	"encoding/json"
	"net/http"

	"github.com/LaCsoN00/medapp-sub000/internal/delivery/dto"
	"github.com/LaCsoN00/medapp-sub000/internal/delivery/http/middleware"
	"github.com/LaCsoN00/medapp-sub000/internal/usecase"
	"github.com/LaCsoN00/medapp-sub000/pkg/response"
	"github.com/LaCsoN00/medapp-sub000/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MedecinHandler struct {
	medecinUsecase usecase.MedecinProfileUsecase
	statusUsecase  usecase.MedecinStatusUsecase
	validator      *validator.CustomValidator
}

func NewMedecinHandler(medecinUsecase usecase.MedecinProfileUsecase, statusUsecase usecase.MedecinStatusUsecase, validator *validator.CustomValidator) *MedecinHandler {
	return &MedecinHandler{
		medecinUsecase: medecinUsecase,
		statusUsecase:  statusUsecase,
		validator:      validator,
	}
}

// GetAllMedecins is the public directory, filterable by name and specialization.
func (h *MedecinHandler) GetAllMedecins(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	specialization := r.URL.Query().Get("specialization")

	medecins, err := h.medecinUsecase.GetAllMedecins(r.Context(), name, specialization)
	if err != nil {
		response.InternalServerError(w, "Failed to get medecins")
		return
	}

	response.Success(w, http.StatusOK, "Medecins retrieved successfully", medecins)
}

func (h *MedecinHandler) GetMedecin(w http.ResponseWriter, r *http.Request) {
	medecinID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medecin ID", nil)
		return
	}

	medecin, err := h.medecinUsecase.GetMedecin(r.Context(), medecinID)
	if err != nil {
		switch err {
		case usecase.ErrMedecinNotFound:
			response.NotFound(w, "Medecin not found")
		default:
			response.InternalServerError(w, "Failed to get medecin")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medecin retrieved successfully", medecin)
}

func (h *MedecinHandler) CreateMedecin(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedecinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medecin, err := h.medecinUsecase.CreateMedecin(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already registered")
		case usecase.ErrLicenseAlreadyExists:
			response.Conflict(w, "License number already registered")
		default:
			response.InternalServerError(w, "Failed to create medecin")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medecin created successfully", medecin)
}

func (h *MedecinHandler) UpdateMedecin(w http.ResponseWriter, r *http.Request) {
	medecinID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medecin ID", nil)
		return
	}

	var req dto.UpdateMedecinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medecin, err := h.medecinUsecase.UpdateMedecin(r.Context(), medecinID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedecinNotFound:
			response.NotFound(w, "Medecin not found")
		default:
			response.InternalServerError(w, "Failed to update medecin")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medecin updated successfully", medecin)
}

// UpdateSelfProfile lets the logged-in medecin edit their own profile.
func (h *MedecinHandler) UpdateSelfProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateMedecinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medecin, err := h.medecinUsecase.UpdateSelfProfile(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrMedecinNotFound:
			response.NotFound(w, "Medecin profile not found")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", medecin)
}

func (h *MedecinHandler) DeleteMedecin(w http.ResponseWriter, r *http.Request) {
	medecinID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medecin ID", nil)
		return
	}

	if err := h.medecinUsecase.DeleteMedecin(r.Context(), medecinID); err != nil {
		switch err {
		case usecase.ErrMedecinNotFound:
			response.NotFound(w, "Medecin not found")
		default:
			response.InternalServerError(w, "Failed to delete medecin")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medecin deleted successfully", nil)
}

// GetStatus returns the live status of a medecin. Public: patients check
// this before booking.
func (h *MedecinHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	medecinID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medecin ID", nil)
		return
	}

	status, err := h.statusUsecase.ResolveStatus(r.Context(), medecinID)
	if err != nil {
		switch err {
		case usecase.ErrMedecinNotFound:
			response.NotFound(w, "Medecin not found")
		default:
			response.InternalServerError(w, "Failed to resolve status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Status retrieved successfully", status)
}

// SetStatus lets the logged-in medecin declare their own status pair.
func (h *MedecinHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	medecinID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	status, err := h.statusUsecase.SetStatus(r.Context(), medecinID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedecinNotFound:
			response.NotFound(w, "Medecin profile not found")
		default:
			response.InternalServerError(w, "Failed to set status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Status updated successfully", status)
}
