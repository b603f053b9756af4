package usecase

import (
	"context"
	"errors"

	"github.com/LaCsoN00/medapp-sub000/internal/availability"
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
	ErrWorkingHourNotFound = errors.New("working hour not found")
	ErrWorkingHourNotOwned = errors.New("working hour does not belong to you")
)

type WorkingHourUsecase interface {
	Create(ctx context.Context, req *dto.CreateWorkingHourRequest) (*dto.WorkingHourResponse, error)
	GetMine(ctx context.Context) (*dto.WorkingHourListResponse, error)
	GetByMedecin(ctx context.Context, medecinID uuid.UUID) (*dto.WorkingHourListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateWorkingHourRequest) (*dto.WorkingHourResponse, error)
	Delete(ctx context.Context, id int) error
}

type workingHourUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	workingHourRepo    repository.WorkingHourRepository
	medecinProfileRepo repository.MedecinProfileRepository
	auditService       service.AuditService
}

func NewWorkingHourUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	workingHourRepo repository.WorkingHourRepository,
	medecinProfileRepo repository.MedecinProfileRepository,
	auditService service.AuditService,
) WorkingHourUsecase {
	return &workingHourUsecase{
		db:                 db,
		log:                log,
		workingHourRepo:    workingHourRepo,
		medecinProfileRepo: medecinProfileRepo,
		auditService:       auditService,
	}
}

// Create adds a template entry for the logged-in medecin. Several entries
// per day are allowed (morning and afternoon shifts); overlaps are accepted
// since slot generation unions and de-duplicates them.
func (u *workingHourUsecase) Create(ctx context.Context, req *dto.CreateWorkingHourRequest) (*dto.WorkingHourResponse, error) {
	medecinID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if err := availability.ValidateShift(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

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

	hour := &entity.WorkingHour{
		MedecinID: medecinID,
		DayOfWeek: *req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := u.workingHourRepo.Create(tx, hour); err != nil {
		u.log.Warnf("Failed to create working hour: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &medecinID, entity.AuditActionWorkingHourCreate, "working_hour", "", converter.WorkingHourToResponse(hour)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.WorkingHourToResponse(hour), nil
}

func (u *workingHourUsecase) GetMine(ctx context.Context) (*dto.WorkingHourListResponse, error) {
	medecinID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	return u.GetByMedecin(ctx, medecinID)
}

func (u *workingHourUsecase) GetByMedecin(ctx context.Context, medecinID uuid.UUID) (*dto.WorkingHourListResponse, error) {
	hours, err := u.workingHourRepo.FindByMedecinID(u.db.WithContext(ctx), medecinID)
	if err != nil {
		u.log.Warnf("Failed to find working hours: %+v", err)
		return nil, err
	}

	return &dto.WorkingHourListResponse{
		WorkingHours: converter.WorkingHoursToResponses(hours),
		Total:        len(hours),
	}, nil
}

func (u *workingHourUsecase) Update(ctx context.Context, id int, req *dto.UpdateWorkingHourRequest) (*dto.WorkingHourResponse, error) {
	medecinID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hour, err := u.workingHourRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find working hour: %+v", err)
		return nil, err
	}
	if hour == nil {
		return nil, ErrWorkingHourNotFound
	}
	if hour.MedecinID != medecinID {
		return nil, ErrWorkingHourNotOwned
	}

	oldValue := converter.WorkingHourToResponse(hour)

	if req.DayOfWeek != nil {
		hour.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != "" {
		hour.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		hour.EndTime = req.EndTime
	}
	if err := availability.ValidateShift(hour.StartTime, hour.EndTime); err != nil {
		return nil, err
	}

	if err := u.workingHourRepo.Update(tx, hour); err != nil {
		u.log.Warnf("Failed to update working hour: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &medecinID, entity.AuditActionWorkingHourUpdate, "working_hour", "", oldValue, converter.WorkingHourToResponse(hour)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.WorkingHourToResponse(hour), nil
}

func (u *workingHourUsecase) Delete(ctx context.Context, id int) error {
	medecinID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hour, err := u.workingHourRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find working hour: %+v", err)
		return err
	}
	if hour == nil {
		return ErrWorkingHourNotFound
	}
	if hour.MedecinID != medecinID {
		return ErrWorkingHourNotOwned
	}

	if _, err := u.workingHourRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete working hour: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &medecinID, entity.AuditActionWorkingHourDelete, "working_hour", "", converter.WorkingHourToResponse(hour)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
