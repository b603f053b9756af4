package repository

import (
	"errors"

	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"
	domainRepo "github.com/LaCsoN00/medapp-sub000/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type workingHourRepository struct{}

func NewWorkingHourRepository() domainRepo.WorkingHourRepository {
	return &workingHourRepository{}
}

func (r *workingHourRepository) Create(db *gorm.DB, hour *entity.WorkingHour) error {
	return db.Create(hour).Error
}

func (r *workingHourRepository) FindByID(db *gorm.DB, id int) (*entity.WorkingHour, error) {
	var hour entity.WorkingHour
	err := db.Where("id = ?", id).First(&hour).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hour, nil
}

func (r *workingHourRepository) FindByMedecinID(db *gorm.DB, medecinID uuid.UUID) ([]entity.WorkingHour, error) {
	var hours []entity.WorkingHour
	err := db.Where("medecin_id = ?", medecinID).
		Order("day_of_week ASC, start_time ASC").
		Find(&hours).Error
	if err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *workingHourRepository) Update(db *gorm.DB, hour *entity.WorkingHour) error {
	return db.Omit("Medecin").Save(hour).Error
}

func (r *workingHourRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.WorkingHour{})
	return affected.RowsAffected, affected.Error
}
