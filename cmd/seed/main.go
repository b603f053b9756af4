// Seeds the database with demo data: one admin, a set of medecins with
// weekly working-hour templates, patients, and appointments spread over
// the coming weeks.
package main

import (
	"fmt"
	"time"

	"github.com/LaCsoN00/medapp-sub000/config"
	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"
	"github.com/LaCsoN00/medapp-sub000/internal/infrastructure/database"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	medecinCount     = 10
	patientCount     = 50
	appointmentCount = 120
	seedPassword     = "password123"
)

var specializations = []string{
	"Cardiologie",
	"Dermatologie",
	"Médecine générale",
	"Pédiatrie",
	"Neurologie",
	"Ophtalmologie",
	"Psychiatrie",
	"ORL",
}

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.Info("Seed starting")

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, cfg.DB); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("Failed to hash seed password: %v", err)
	}
	password := string(hashed)

	if err := seedAdmin(db, password); err != nil {
		logrus.Fatalf("Failed to seed admin: %v", err)
	}

	medecins, err := seedMedecins(db, password)
	if err != nil {
		logrus.Fatalf("Failed to seed medecins: %v", err)
	}

	patients, err := seedPatients(db, password)
	if err != nil {
		logrus.Fatalf("Failed to seed patients: %v", err)
	}

	if err := seedAppointments(db, medecins, patients); err != nil {
		logrus.Fatalf("Failed to seed appointments: %v", err)
	}

	logrus.Info("Seed complete")
}

func seedAdmin(db *gorm.DB, password string) error {
	admin := &entity.User{
		RoleID:   entity.RoleIDAdmin,
		Email:    "admin@medapp.local",
		Password: password,
		FullName: "Administrateur",
		IsActive: true,
	}
	return db.Create(admin).Error
}

func seedMedecins(db *gorm.DB, password string) ([]entity.MedecinProfile, error) {
	logrus.Infof("Seeding %d medecins", medecinCount)

	var medecins []entity.MedecinProfile
	for i := 0; i < medecinCount; i++ {
		err := db.Transaction(func(tx *gorm.DB) error {
			user := &entity.User{
				RoleID:   entity.RoleIDMedecin,
				Email:    gofakeit.Email(),
				Password: password,
				FullName: fmt.Sprintf("Dr %s", gofakeit.Name()),
				IsActive: true,
			}
			if err := tx.Create(user).Error; err != nil {
				return err
			}

			profile := &entity.MedecinProfile{
				UserID:         user.ID,
				LicenseNumber:  fmt.Sprintf("LIC-%06d", gofakeit.Number(100000, 999999)),
				Specialization: specializations[gofakeit.Number(0, len(specializations)-1)],
				Biography:      gofakeit.Paragraph(1, 3, 12, " "),
				Status:         entity.StatusAvailable,
				StatusMode:     entity.StatusModeAuto,
			}
			if err := tx.Create(profile).Error; err != nil {
				return err
			}

			// Monday through Friday, morning and afternoon shifts.
			for day := 1; day <= 5; day++ {
				hours := []entity.WorkingHour{
					{MedecinID: user.ID, DayOfWeek: day, StartTime: "08:00", EndTime: "12:00"},
					{MedecinID: user.ID, DayOfWeek: day, StartTime: "14:00", EndTime: "18:00"},
				}
				if err := tx.Create(&hours).Error; err != nil {
					return err
				}
			}

			medecins = append(medecins, *profile)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return medecins, nil
}

func seedPatients(db *gorm.DB, password string) ([]entity.PatientProfile, error) {
	logrus.Infof("Seeding %d patients", patientCount)

	var patients []entity.PatientProfile
	for i := 0; i < patientCount; i++ {
		err := db.Transaction(func(tx *gorm.DB) error {
			user := &entity.User{
				RoleID:   entity.RoleIDPatient,
				Email:    gofakeit.Email(),
				Password: password,
				FullName: gofakeit.Name(),
				IsActive: true,
			}
			if err := tx.Create(user).Error; err != nil {
				return err
			}

			gender := entity.GenderMale
			if gofakeit.Bool() {
				gender = entity.GenderFemale
			}

			profile := &entity.PatientProfile{
				UserID:      user.ID,
				PhoneNumber: gofakeit.Phone(),
				DateOfBirth: gofakeit.DateRange(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2007, 12, 31, 0, 0, 0, 0, time.UTC)),
				Gender:      gender,
				Address:     gofakeit.Address().Address,
			}
			if err := tx.Create(profile).Error; err != nil {
				return err
			}

			patients = append(patients, *profile)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return patients, nil
}

func seedAppointments(db *gorm.DB, medecins []entity.MedecinProfile, patients []entity.PatientProfile) error {
	logrus.Infof("Seeding %d appointments", appointmentCount)

	statuses := []entity.AppointmentStatus{
		entity.AppointmentStatusPending,
		entity.AppointmentStatusConfirmed,
		entity.AppointmentStatusConfirmed,
		entity.AppointmentStatusCancelled,
	}

	created := 0
	for created < appointmentCount {
		medecin := medecins[gofakeit.Number(0, len(medecins)-1)]
		patient := patients[gofakeit.Number(0, len(patients)-1)]

		// Weekday slot start within the next two weeks, aligned to 30 minutes.
		day := time.Now().AddDate(0, 0, gofakeit.Number(1, 14))
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		hour := gofakeit.Number(8, 17)
		minute := 30 * gofakeit.Number(0, 1)
		date := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)

		appointment := &entity.Appointment{
			PatientID: patient.UserID,
			MedecinID: medecin.UserID,
			Date:      date,
			Status:    statuses[gofakeit.Number(0, len(statuses)-1)],
			Reason:    gofakeit.Sentence(8),
		}

		// Duplicate slots happen with random picks; skip instead of failing.
		var count int64
		if err := db.Model(&entity.Appointment{}).
			Where("medecin_id = ? AND date = ? AND status IN ?", medecin.UserID, date, []entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed}).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 && appointment.IsActive() {
			continue
		}

		if err := db.Create(appointment).Error; err != nil {
			return err
		}
		created++
	}

	return nil
}
