package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkingHour is one entry of a medecin's weekly recurring template.
// Several rows may exist for the same day (morning and afternoon shifts);
// slot generation unions them.
type WorkingHour struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	MedecinID uuid.UUID `gorm:"type:uuid;not null;index" json:"medecin_id"`
	DayOfWeek int       `gorm:"not null" json:"day_of_week"` // 0 = Sunday .. 6 = Saturday
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Medecin MedecinProfile `gorm:"foreignKey:MedecinID" json:"medecin,omitempty"`
}

func (WorkingHour) TableName() string {
	return "working_hours"
}
