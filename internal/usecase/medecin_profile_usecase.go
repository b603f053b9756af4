package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/LaCsoN00/medapp-sub000/internal/availability"
	"github.com/LaCsoN00/medapp-sub000/internal/converter"
	"github.com/LaCsoN00/medapp-sub000/internal/delivery/dto"
	"github.com/LaCsoN00/medapp-sub000/internal/delivery/http/middleware"
	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"
	"github.com/LaCsoN00/medapp-sub000/internal/domain/repository"
	"github.com/LaCsoN00/medapp-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrLicenseAlreadyExists = errors.New("license number already registered")
)

type MedecinProfileUsecase interface {
	CreateMedecin(ctx context.Context, req *dto.CreateMedecinRequest) (*dto.MedecinResponse, error)
	GetMedecin(ctx context.Context, medecinID uuid.UUID) (*dto.MedecinResponse, error)
	GetAllMedecins(ctx context.Context, name, specialization string) (*dto.MedecinListResponse, error)
	UpdateMedecin(ctx context.Context, medecinID uuid.UUID, req *dto.UpdateMedecinRequest) (*dto.MedecinResponse, error)
	UpdateSelfProfile(ctx context.Context, req *dto.UpdateMedecinRequest) (*dto.MedecinResponse, error)
	DeleteMedecin(ctx context.Context, medecinID uuid.UUID) error
}

type medecinProfileUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	medecinProfileRepo repository.MedecinProfileRepository
	appointmentRepo    repository.AppointmentRepository
	auditService       service.AuditService
}

func NewMedecinProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	medecinProfileRepo repository.MedecinProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) MedecinProfileUsecase {
	return &medecinProfileUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		medecinProfileRepo: medecinProfileRepo,
		appointmentRepo:    appointmentRepo,
		auditService:       auditService,
	}
}

// CreateMedecin provisions a medecin account (admin operation): the user row
// and its profile in one transaction.
func (u *medecinProfileUsecase) CreateMedecin(ctx context.Context, req *dto.CreateMedecinRequest) (*dto.MedecinResponse, error) {
	adminID, _ := middleware.GetUserIDFromContext(ctx)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		RoleID:   entity.RoleIDMedecin,
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		IsActive: true,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.MedecinProfile{
		UserID:         user.ID,
		LicenseNumber:  req.LicenseNumber,
		Specialization: req.Specialization,
		Biography:      req.Biography,
		Status:         entity.StatusAvailable,
		StatusMode:     entity.StatusModeAuto,
		User:           *user,
	}

	if err := u.medecinProfileRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create medecin profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &adminID, entity.AuditActionMedecinCreate, "medecin_profile", user.ID.String(), converter.MedecinProfileToResponse(profile)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedecinProfileToResponse(profile), nil
}

func (u *medecinProfileUsecase) GetMedecin(ctx context.Context, medecinID uuid.UUID) (*dto.MedecinResponse, error) {
	profile, err := u.medecinProfileRepo.FindByUserID(u.db.WithContext(ctx), medecinID)
	if err != nil {
		u.log.Warnf("Failed to find medecin profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrMedecinNotFound
	}

	return converter.MedecinProfileToResponse(profile), nil
}

// GetAllMedecins is the public directory: active medecins only, optionally
// filtered by name or specialization. AUTO-mode statuses are recomputed per
// row so the listing shows the live signal; the listing never writes back,
// persistence belongs to the per-medecin status read.
func (u *medecinProfileUsecase) GetAllMedecins(ctx context.Context, name, specialization string) (*dto.MedecinListResponse, error) {
	db := u.db.WithContext(ctx)
	filter := &entity.MedecinFilter{
		Name:           name,
		Specialization: specialization,
	}

	profiles, err := u.medecinProfileRepo.FindAllActive(db, filter)
	if err != nil {
		u.log.Warnf("Failed to list medecins: %+v", err)
		return nil, err
	}

	now := time.Now()
	for i := range profiles {
		if profiles[i].StatusMode != entity.StatusModeAuto {
			continue
		}
		appointments, err := u.appointmentRepo.FindConfirmedByMedecinID(db, profiles[i].UserID)
		if err != nil {
			u.log.Warnf("Failed to load confirmed appointments for %s, keeping stored status: %+v", profiles[i].UserID, err)
			continue
		}
		dates := make([]time.Time, len(appointments))
		for j, a := range appointments {
			dates[j] = a.Date
		}
		if availability.Busy(dates, now) {
			profiles[i].Status = entity.StatusBusy
		} else {
			profiles[i].Status = entity.StatusAvailable
		}
	}

	return &dto.MedecinListResponse{
		Medecins: converter.MedecinProfilesToResponses(profiles),
		Total:    len(profiles),
	}, nil
}

func (u *medecinProfileUsecase) UpdateMedecin(ctx context.Context, medecinID uuid.UUID, req *dto.UpdateMedecinRequest) (*dto.MedecinResponse, error) {
	return u.update(ctx, medecinID, req, true)
}

// UpdateSelfProfile lets a medecin edit their own profile. Deactivation is
// reserved for admins.
func (u *medecinProfileUsecase) UpdateSelfProfile(ctx context.Context, req *dto.UpdateMedecinRequest) (*dto.MedecinResponse, error) {
	medecinID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	return u.update(ctx, medecinID, req, false)
}

func (u *medecinProfileUsecase) update(ctx context.Context, medecinID uuid.UUID, req *dto.UpdateMedecinRequest, allowActivation bool) (*dto.MedecinResponse, error) {
	actorID, _ := middleware.GetUserIDFromContext(ctx)

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

	oldValue := converter.MedecinProfileToResponse(profile)

	if req.FullName != "" {
		profile.User.FullName = req.FullName
	}
	if req.Specialization != "" {
		profile.Specialization = req.Specialization
	}
	if req.Biography != "" {
		profile.Biography = req.Biography
	}
	if allowActivation && req.IsActive != nil {
		profile.User.IsActive = *req.IsActive
	}

	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}
	if err := u.medecinProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update medecin profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionMedecinUpdate, "medecin_profile", medecinID.String(), oldValue, converter.MedecinProfileToResponse(profile)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedecinProfileToResponse(profile), nil
}

// DeleteMedecin deactivates the account rather than removing rows, so past
// appointments keep their references.
func (u *medecinProfileUsecase) DeleteMedecin(ctx context.Context, medecinID uuid.UUID) error {
	adminID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.medecinProfileRepo.FindByUserID(tx, medecinID)
	if err != nil {
		u.log.Warnf("Failed to find medecin profile: %+v", err)
		return err
	}
	if profile == nil {
		return ErrMedecinNotFound
	}

	oldValue := converter.MedecinProfileToResponse(profile)

	profile.User.IsActive = false
	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		u.log.Warnf("Failed to deactivate user: %+v", err)
		return err
	}

	if err := u.medecinProfileRepo.UpdateStatus(tx, medecinID, entity.StatusUnavailable, entity.StatusModeManual); err != nil {
		u.log.Warnf("Failed to reset status on delete: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &adminID, entity.AuditActionMedecinDelete, "medecin_profile", medecinID.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
