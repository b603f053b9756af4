package repository

import (
	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkingHourRepository interface {
	Create(db *gorm.DB, hour *entity.WorkingHour) error
	FindByID(db *gorm.DB, id int) (*entity.WorkingHour, error)
	FindByMedecinID(db *gorm.DB, medecinID uuid.UUID) ([]entity.WorkingHour, error)
	Update(db *gorm.DB, hour *entity.WorkingHour) error
	Delete(db *gorm.DB, id int) (int64, error)
}
