package converter

import (
	"github.com/LaCsoN00/medapp-sub000/internal/delivery/dto"
	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		MedecinID: appointment.MedecinID,
		Date:      appointment.Date,
		Status:    string(appointment.Status),
		Reason:    appointment.Reason,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}

	// Include medecin info if available
	if appointment.Medecin.UserID != uuid.Nil {
		response.Medecin = MedecinProfileToResponse(&appointment.Medecin)
	}

	// Include patient info if available
	if appointment.Patient.UserID != uuid.Nil {
		response.Patient = &dto.UserResponse{
			ID:       appointment.Patient.UserID,
			Email:    appointment.Patient.User.Email,
			FullName: appointment.Patient.User.FullName,
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
