package repository

import (
	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedecinProfileRepository interface {
	Create(db *gorm.DB, profile *entity.MedecinProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.MedecinProfile, error)
	FindAllActive(db *gorm.DB, filter *entity.MedecinFilter) ([]entity.MedecinProfile, error)
	Update(db *gorm.DB, profile *entity.MedecinProfile) error
	// UpdateStatus writes the advisory status pair only, leaving the rest of
	// the profile untouched. Last write wins; no compare-and-swap.
	UpdateStatus(db *gorm.DB, userID uuid.UUID, status entity.MedecinStatus, mode entity.StatusMode) error
}
