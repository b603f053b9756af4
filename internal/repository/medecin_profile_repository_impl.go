package repository

import (
	"errors"

	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"
	domainRepo "github.com/LaCsoN00/medapp-sub000/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medecinProfileRepository struct{}

func NewMedecinProfileRepository() domainRepo.MedecinProfileRepository {
	return &medecinProfileRepository{}
}

func (r *medecinProfileRepository) Create(db *gorm.DB, profile *entity.MedecinProfile) error {
	return db.Create(profile).Error
}

func (r *medecinProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.MedecinProfile, error) {
	var profile entity.MedecinProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindAllActive returns profiles only for medecins whose user account is
// active. Supports optional filters: name and specialization.
func (r *medecinProfileRepository) FindAllActive(db *gorm.DB, filter *entity.MedecinFilter) ([]entity.MedecinProfile, error) {
	var profiles []entity.MedecinProfile
	query := db.
		Joins("JOIN users ON users.id = medecin_profiles.user_id").
		Where("users.is_active = ?", true)

	if filter != nil {
		if filter.Name != "" {
			query = query.Where("users.full_name ILIKE ?", "%"+filter.Name+"%")
		}
		if filter.Specialization != "" {
			query = query.Where("medecin_profiles.specialization ILIKE ?", "%"+filter.Specialization+"%")
		}
	}

	err := query.
		Preload("User").
		Order("users.full_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *medecinProfileRepository) Update(db *gorm.DB, profile *entity.MedecinProfile) error {
	return db.Omit("User").Save(profile).Error
}

func (r *medecinProfileRepository) UpdateStatus(db *gorm.DB, userID uuid.UUID, status entity.MedecinStatus, mode entity.StatusMode) error {
	return db.Model(&entity.MedecinProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"status":      status,
			"status_mode": mode,
		}).Error
}
