package repository

import (
	"time"

	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByMedecinID(db *gorm.DB, medecinID uuid.UUID) ([]entity.Appointment, error)
	// FindConfirmedByMedecinID feeds the automatic status computation.
	FindConfirmedByMedecinID(db *gorm.DB, medecinID uuid.UUID) ([]entity.Appointment, error)
	// FindActiveByMedecinBetween returns pending and confirmed appointments
	// with from <= date < to, used to exclude booked slots.
	FindActiveByMedecinBetween(db *gorm.DB, medecinID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	// FindActiveByMedecinAt looks up a pending or confirmed appointment at
	// an exact start time, the duplicate-booking check.
	FindActiveByMedecinAt(db *gorm.DB, medecinID uuid.UUID, at time.Time) (*entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
}
