package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LaCsoN00/medapp-sub000/internal/converter"
	"github.com/LaCsoN00/medapp-sub000/internal/delivery/dto"
	"github.com/LaCsoN00/medapp-sub000/internal/delivery/http/middleware"
	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"
	"github.com/LaCsoN00/medapp-sub000/internal/domain/repository"
	"github.com/LaCsoN00/medapp-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound          = errors.New("appointment not found")
	ErrAppointmentNotOwned          = errors.New("appointment does not belong to you")
	ErrAppointmentInPast            = errors.New("appointment date must be in the future")
	ErrAppointmentSlotTaken         = errors.New("the requested slot is already booked")
	ErrInvalidAppointmentTransition = errors.New("invalid appointment status transition")
	ErrInvalidAppointmentDate       = errors.New("invalid appointment date or time format")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetMedecinAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	Confirm(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Complete(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	appointmentRepo    repository.AppointmentRepository
	medecinProfileRepo repository.MedecinProfileRepository
	auditService       service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	medecinProfileRepo repository.MedecinProfileRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                 db,
		log:                log,
		appointmentRepo:    appointmentRepo,
		medecinProfileRepo: medecinProfileRepo,
		auditService:       auditService,
	}
}

// Create books a new PENDING appointment for the logged-in patient. The
// slot must be in the future and not already held by a pending or
// confirmed appointment with the same medecin.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	date, err := time.ParseInLocation("2006-01-02 15:04", fmt.Sprintf("%s %s", req.Date, req.Time), time.Local)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}
	if !date.After(time.Now()) {
		return nil, ErrAppointmentInPast
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.medecinProfileRepo.FindByUserID(tx, req.MedecinID)
	if err != nil {
		u.log.Warnf("Failed to find medecin profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrMedecinNotFound
	}

	existing, err := u.appointmentRepo.FindActiveByMedecinAt(tx, req.MedecinID, date)
	if err != nil {
		u.log.Warnf("Failed to check slot availability: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAppointmentSlotTaken
	}

	appointment := &entity.Appointment{
		PatientID: patientID,
		MedecinID: req.MedecinID,
		Date:      date,
		Status:    entity.AppointmentStatusPending,
		Reason:    req.Reason,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isForeignKeyError(err) {
			return nil, ErrMedecinNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &patientID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// GetMyAppointments lists the logged-in patient's appointments.
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// GetMedecinAppointments lists the logged-in medecin's appointments.
func (u *appointmentUsecase) GetMedecinAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	medecinID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByMedecinID(u.db.WithContext(ctx), medecinID)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Confirm moves a PENDING appointment to CONFIRMED. Only the owning
// medecin may confirm.
func (u *appointmentUsecase) Confirm(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentStatusConfirmed, func(a *entity.Appointment, userID uuid.UUID) error {
		if a.MedecinID != userID {
			return ErrAppointmentNotOwned
		}
		if !a.IsPending() {
			return ErrInvalidAppointmentTransition
		}
		return nil
	})
}

// Complete moves a CONFIRMED appointment to COMPLETED. Only the owning
// medecin may complete.
func (u *appointmentUsecase) Complete(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentStatusCompleted, func(a *entity.Appointment, userID uuid.UUID) error {
		if a.MedecinID != userID {
			return ErrAppointmentNotOwned
		}
		if !a.IsConfirmed() {
			return ErrInvalidAppointmentTransition
		}
		return nil
	})
}

// Cancel moves a PENDING or CONFIRMED appointment to CANCELLED. Either
// side of the booking may cancel; a cancelled slot becomes free again.
func (u *appointmentUsecase) Cancel(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AppointmentStatusCancelled, func(a *entity.Appointment, userID uuid.UUID) error {
		if a.MedecinID != userID && a.PatientID != userID {
			return ErrAppointmentNotOwned
		}
		if !a.IsActive() {
			return ErrInvalidAppointmentTransition
		}
		return nil
	})
}

func (u *appointmentUsecase) transition(ctx context.Context, id uuid.UUID, target entity.AppointmentStatus, authorize func(*entity.Appointment, uuid.UUID) error) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := authorize(appointment, userID); err != nil {
		return nil, err
	}

	oldStatus := appointment.Status

	if err := u.appointmentRepo.UpdateStatus(tx, id, target); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	appointment.Status = target

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentStatus, "appointment", id.String(), string(oldStatus), string(target)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}
