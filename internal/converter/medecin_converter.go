package converter

import (
	"github.com/LaCsoN00/medapp-sub000/internal/delivery/dto"
	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"
)

// MedecinProfileToResponse converts a MedecinProfile entity to MedecinResponse DTO
func MedecinProfileToResponse(profile *entity.MedecinProfile) *dto.MedecinResponse {
	if profile == nil {
		return nil
	}

	return &dto.MedecinResponse{
		ID:             profile.UserID,
		Email:          profile.User.Email,
		FullName:       profile.User.FullName,
		LicenseNumber:  profile.LicenseNumber,
		Specialization: profile.Specialization,
		Biography:      profile.Biography,
		Status:         string(profile.Status),
		StatusMode:     string(profile.StatusMode),
		IsActive:       profile.User.IsActive,
	}
}

// MedecinProfilesToResponses converts a slice of MedecinProfile entities to slice of MedecinResponse DTOs
func MedecinProfilesToResponses(profiles []entity.MedecinProfile) []dto.MedecinResponse {
	responses := make([]dto.MedecinResponse, len(profiles))
	for i, profile := range profiles {
		resp := MedecinProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// MedecinStatusToResponse extracts the status pair from a profile
func MedecinStatusToResponse(profile *entity.MedecinProfile) *dto.MedecinStatusResponse {
	if profile == nil {
		return nil
	}

	return &dto.MedecinStatusResponse{
		MedecinID:  profile.UserID,
		Status:     string(profile.Status),
		StatusMode: string(profile.StatusMode),
	}
}
