package entity

import "github.com/google/uuid"

// MedecinStatus is the live availability signal shown to patients.
type MedecinStatus string

const (
	StatusAvailable   MedecinStatus = "AVAILABLE"
	StatusBusy        MedecinStatus = "BUSY"
	StatusUnavailable MedecinStatus = "UNAVAILABLE"
)

// StatusMode controls whether the status is computed from the calendar
// or declared by the medecin.
type StatusMode string

const (
	StatusModeAuto   StatusMode = "AUTO"
	StatusModeManual StatusMode = "MANUAL"
)

// IsValid reports whether s is one of the known status values.
func (s MedecinStatus) IsValid() bool {
	return s == StatusAvailable || s == StatusBusy || s == StatusUnavailable
}

// IsValid reports whether m is one of the known mode values.
func (m StatusMode) IsValid() bool {
	return m == StatusModeAuto || m == StatusModeManual
}

// MedecinProfile represents medecin-specific profile data, including the
// live availability status. The status pair is advisory: in MANUAL mode it
// is whatever the medecin last declared, in AUTO mode it is recomputed from
// confirmed appointments on read.
type MedecinProfile struct {
	UserID         uuid.UUID     `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNumber  string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialization string        `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Biography      string        `gorm:"type:text" json:"biography,omitempty"`
	Status         MedecinStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE'" json:"status"`
	StatusMode     StatusMode    `gorm:"type:varchar(10);not null;default:'AUTO'" json:"status_mode"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	WorkingHours []WorkingHour `gorm:"foreignKey:MedecinID" json:"working_hours,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:MedecinID" json:"appointments,omitempty"`
}

func (MedecinProfile) TableName() string {
	return "medecin_profiles"
}
