package usecase

import (
	"context"
	"time"

	"github.com/LaCsoN00/medapp-sub000/internal/availability"
	"github.com/LaCsoN00/medapp-sub000/internal/converter"
	"github.com/LaCsoN00/medapp-sub000/internal/delivery/dto"
	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"
	"github.com/LaCsoN00/medapp-sub000/internal/domain/repository"
	"github.com/LaCsoN00/medapp-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MedecinStatusUsecase interface {
	ResolveStatus(ctx context.Context, medecinID uuid.UUID) (*dto.MedecinStatusResponse, error)
	SetStatus(ctx context.Context, medecinID uuid.UUID, req *dto.SetStatusRequest) (*dto.MedecinStatusResponse, error)
	OnSessionStart(ctx context.Context, medecinID uuid.UUID) error
	OnSessionEnd(ctx context.Context, medecinID uuid.UUID) error
}

type medecinStatusUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	medecinProfileRepo repository.MedecinProfileRepository
	appointmentRepo    repository.AppointmentRepository
	auditService       service.AuditService
}

func NewMedecinStatusUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medecinProfileRepo repository.MedecinProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) MedecinStatusUsecase {
	return &medecinStatusUsecase{
		db:                 db,
		log:                log,
		medecinProfileRepo: medecinProfileRepo,
		appointmentRepo:    appointmentRepo,
		auditService:       auditService,
	}
}

// ResolveStatus returns the medecin's live status. In MANUAL mode the
// stored value is returned untouched. In AUTO mode the status is recomputed
// from confirmed appointments near now and written back only when it
// changed, so repeated reads stay cheap.
func (u *medecinStatusUsecase) ResolveStatus(ctx context.Context, medecinID uuid.UUID) (*dto.MedecinStatusResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.medecinProfileRepo.FindByUserID(db, medecinID)
	if err != nil {
		u.log.Warnf("Failed to find medecin profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrMedecinNotFound
	}

	if profile.StatusMode == entity.StatusModeManual {
		return converter.MedecinStatusToResponse(profile), nil
	}

	appointments, err := u.appointmentRepo.FindConfirmedByMedecinID(db, medecinID)
	if err != nil {
		// Degrade to the previous known status instead of failing the read.
		u.log.Warnf("Failed to load confirmed appointments for %s, keeping stored status: %+v", medecinID, err)
		return converter.MedecinStatusToResponse(profile), nil
	}

	dates := make([]time.Time, len(appointments))
	for i, a := range appointments {
		dates[i] = a.Date
	}

	resolved := entity.StatusAvailable
	if availability.Busy(dates, time.Now()) {
		resolved = entity.StatusBusy
	}

	if resolved != profile.Status {
		if err := u.medecinProfileRepo.UpdateStatus(db, medecinID, resolved, entity.StatusModeAuto); err != nil {
			u.log.Warnf("Failed to persist recomputed status for %s: %+v", medecinID, err)
			return converter.MedecinStatusToResponse(profile), nil
		}
		profile.Status = resolved
	}

	return converter.MedecinStatusToResponse(profile), nil
}

// SetStatus overwrites both status fields unconditionally. No validation
// against appointment conflicts happens here: the signal is advisory, a
// medecin may declare UNAVAILABLE with confirmed appointments on the books.
func (u *medecinStatusUsecase) SetStatus(ctx context.Context, medecinID uuid.UUID, req *dto.SetStatusRequest) (*dto.MedecinStatusResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.medecinProfileRepo.FindByUserID(tx, medecinID)
	if err != nil {
		u.log.Warnf("Failed to find medecin profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrMedecinNotFound
	}

	oldValue := converter.MedecinStatusToResponse(profile)

	status := entity.MedecinStatus(req.Status)
	mode := entity.StatusMode(req.StatusMode)
	if err := u.medecinProfileRepo.UpdateStatus(tx, medecinID, status, mode); err != nil {
		u.log.Warnf("Failed to set status for %s: %+v", medecinID, err)
		return nil, err
	}
	profile.Status = status
	profile.StatusMode = mode

	if err := u.auditService.LogUpdate(ctx, tx, &medecinID, entity.AuditActionStatusSet, "medecin_profile", medecinID.String(), oldValue, converter.MedecinStatusToResponse(profile)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedecinStatusToResponse(profile), nil
}

// OnSessionStart resets the status pair to (AVAILABLE, AUTO), the default
// on login. The next ResolveStatus read recomputes from the calendar.
func (u *medecinStatusUsecase) OnSessionStart(ctx context.Context, medecinID uuid.UUID) error {
	return u.setIfMedecin(ctx, medecinID, entity.StatusAvailable, entity.StatusModeAuto)
}

// OnSessionEnd marks the medecin (UNAVAILABLE, MANUAL) so that reads while
// logged out do not flip the status back through the automatic path.
func (u *medecinStatusUsecase) OnSessionEnd(ctx context.Context, medecinID uuid.UUID) error {
	return u.setIfMedecin(ctx, medecinID, entity.StatusUnavailable, entity.StatusModeManual)
}

func (u *medecinStatusUsecase) setIfMedecin(ctx context.Context, medecinID uuid.UUID, status entity.MedecinStatus, mode entity.StatusMode) error {
	db := u.db.WithContext(ctx)

	profile, err := u.medecinProfileRepo.FindByUserID(db, medecinID)
	if err != nil {
		u.log.Warnf("Failed to find medecin profile: %+v", err)
		return err
	}
	if profile == nil {
		// Session hooks fire for every user; only medecins carry a status.
		return nil
	}

	if err := u.medecinProfileRepo.UpdateStatus(db, medecinID, status, mode); err != nil {
		u.log.Warnf("Failed to update session status for %s: %+v", medecinID, err)
		return err
	}
	return nil
}
