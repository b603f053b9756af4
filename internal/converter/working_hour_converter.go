package converter

import (
	"github.com/LaCsoN00/medapp-sub000/internal/delivery/dto"
	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"
)

// WorkingHourToResponse converts a WorkingHour entity to WorkingHourResponse DTO
func WorkingHourToResponse(hour *entity.WorkingHour) *dto.WorkingHourResponse {
	if hour == nil {
		return nil
	}

	return &dto.WorkingHourResponse{
		ID:        hour.ID,
		MedecinID: hour.MedecinID,
		DayOfWeek: hour.DayOfWeek,
		StartTime: hour.StartTime,
		EndTime:   hour.EndTime,
		CreatedAt: hour.CreatedAt,
		UpdatedAt: hour.UpdatedAt,
	}
}

// WorkingHoursToResponses converts a slice of WorkingHour entities to slice of WorkingHourResponse DTOs
func WorkingHoursToResponses(hours []entity.WorkingHour) []dto.WorkingHourResponse {
	responses := make([]dto.WorkingHourResponse, len(hours))
	for i, hour := range hours {
		resp := WorkingHourToResponse(&hour)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
