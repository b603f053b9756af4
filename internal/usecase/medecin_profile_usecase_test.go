package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

type fakeUserRepo struct{}

func (f *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error { return nil }
func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(db *gorm.DB, user *entity.User) error              { return nil }

func TestDirectoryListingResolvesAutoStatus(t *testing.T) {
	autoID := uuid.New()
	manualID := uuid.New()
	profileRepo := &fakeMedecinProfileRepo{list: []entity.MedecinProfile{
		{
			UserID:     autoID,
			Status:     entity.StatusAvailable,
			StatusMode: entity.StatusModeAuto,
			User:       entity.User{ID: autoID, FullName: "Dr Auto", IsActive: true},
		},
		{
			UserID:     manualID,
			Status:     entity.StatusUnavailable,
			StatusMode: entity.StatusModeManual,
			User:       entity.User{ID: manualID, FullName: "Dr Manual", IsActive: true},
		},
	}}
	apptRepo := &fakeAppointmentRepo{confirmed: []entity.Appointment{{Date: time.Now().Add(5 * time.Minute)}}}

	db, _ := gorm.Open(tests.DummyDialector{})
	log := logrus.New()
	log.SetOutput(io.Discard)
	uc := NewMedecinProfileUsecase(db, log, &fakeUserRepo{}, profileRepo, apptRepo, nil)

	got, err := uc.GetAllMedecins(context.Background(), "", "")
	if err != nil {
		t.Fatalf("GetAllMedecins returned error: %v", err)
	}
	if got.Total != 2 {
		t.Fatalf("expected 2 medecins, got %d", got.Total)
	}
	if got.Medecins[0].Status != "BUSY" {
		t.Fatalf("auto medecin with a nearby appointment must list as BUSY, got %s", got.Medecins[0].Status)
	}
	if got.Medecins[1].Status != "UNAVAILABLE" {
		t.Fatalf("manual medecin must keep the declared status, got %s", got.Medecins[1].Status)
	}
	if len(profileRepo.writes) != 0 {
		t.Fatalf("listing must not write status back, got %d writes", len(profileRepo.writes))
	}
	if apptRepo.confirmedCalls != 1 {
		t.Fatalf("only the auto medecin should be recomputed, got %d appointment reads", apptRepo.confirmedCalls)
	}
}
