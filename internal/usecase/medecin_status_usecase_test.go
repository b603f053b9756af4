package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

type statusWrite struct {
	status entity.MedecinStatus
	mode   entity.StatusMode
}

type fakeMedecinProfileRepo struct {
	profile  *entity.MedecinProfile
	list     []entity.MedecinProfile
	findErr  error
	writeErr error
	writes   []statusWrite
}

func (f *fakeMedecinProfileRepo) Create(db *gorm.DB, profile *entity.MedecinProfile) error {
	return nil
}

func (f *fakeMedecinProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.MedecinProfile, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.profile, nil
}

func (f *fakeMedecinProfileRepo) FindAllActive(db *gorm.DB, filter *entity.MedecinFilter) ([]entity.MedecinProfile, error) {
	return f.list, nil
}

func (f *fakeMedecinProfileRepo) Update(db *gorm.DB, profile *entity.MedecinProfile) error {
	return nil
}

func (f *fakeMedecinProfileRepo) UpdateStatus(db *gorm.DB, userID uuid.UUID, status entity.MedecinStatus, mode entity.StatusMode) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, statusWrite{status, mode})
	return nil
}

type fakeAppointmentRepo struct {
	confirmed      []entity.Appointment
	confirmedErr   error
	confirmedCalls int
}

func (f *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return nil
}

func (f *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByMedecinID(db *gorm.DB, medecinID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindConfirmedByMedecinID(db *gorm.DB, medecinID uuid.UUID) ([]entity.Appointment, error) {
	f.confirmedCalls++
	if f.confirmedErr != nil {
		return nil, f.confirmedErr
	}
	return f.confirmed, nil
}

func (f *fakeAppointmentRepo) FindActiveByMedecinBetween(db *gorm.DB, medecinID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindActiveByMedecinAt(db *gorm.DB, medecinID uuid.UUID, at time.Time) (*entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return nil
}

func newStatusTestUsecase(profileRepo *fakeMedecinProfileRepo, apptRepo *fakeAppointmentRepo) MedecinStatusUsecase {
	db, _ := gorm.Open(tests.DummyDialector{})
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewMedecinStatusUsecase(db, log, profileRepo, apptRepo, nil)
}

func TestResolveStatusManualPassthrough(t *testing.T) {
	id := uuid.New()
	profileRepo := &fakeMedecinProfileRepo{profile: &entity.MedecinProfile{
		UserID:     id,
		Status:     entity.StatusUnavailable,
		StatusMode: entity.StatusModeManual,
	}}
	apptRepo := &fakeAppointmentRepo{confirmed: []entity.Appointment{{Date: time.Now()}}}
	uc := newStatusTestUsecase(profileRepo, apptRepo)

	got, err := uc.ResolveStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("ResolveStatus returned error: %v", err)
	}
	if got.Status != "UNAVAILABLE" || got.StatusMode != "MANUAL" {
		t.Fatalf("manual mode must return the stored pair, got %s/%s", got.Status, got.StatusMode)
	}
	if apptRepo.confirmedCalls != 0 {
		t.Fatalf("manual mode must not consult appointments, got %d calls", apptRepo.confirmedCalls)
	}
	if len(profileRepo.writes) != 0 {
		t.Fatalf("manual mode must not write, got %d writes", len(profileRepo.writes))
	}
}

func TestResolveStatusAutoFlipsToBusy(t *testing.T) {
	id := uuid.New()
	profileRepo := &fakeMedecinProfileRepo{profile: &entity.MedecinProfile{
		UserID:     id,
		Status:     entity.StatusAvailable,
		StatusMode: entity.StatusModeAuto,
	}}
	apptRepo := &fakeAppointmentRepo{confirmed: []entity.Appointment{{Date: time.Now().Add(10 * time.Minute)}}}
	uc := newStatusTestUsecase(profileRepo, apptRepo)

	got, err := uc.ResolveStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("ResolveStatus returned error: %v", err)
	}
	if got.Status != "BUSY" {
		t.Fatalf("appointment 10min away must flip auto status to BUSY, got %s", got.Status)
	}
	if len(profileRepo.writes) != 1 {
		t.Fatalf("changed status must be written back exactly once, got %d writes", len(profileRepo.writes))
	}
	if w := profileRepo.writes[0]; w.status != entity.StatusBusy || w.mode != entity.StatusModeAuto {
		t.Fatalf("write-back must keep AUTO mode, got %s/%s", w.status, w.mode)
	}
}

func TestResolveStatusAutoStaysAvailable(t *testing.T) {
	id := uuid.New()
	profileRepo := &fakeMedecinProfileRepo{profile: &entity.MedecinProfile{
		UserID:     id,
		Status:     entity.StatusAvailable,
		StatusMode: entity.StatusModeAuto,
	}}
	apptRepo := &fakeAppointmentRepo{confirmed: []entity.Appointment{{Date: time.Now().Add(2 * time.Hour)}}}
	uc := newStatusTestUsecase(profileRepo, apptRepo)

	got, err := uc.ResolveStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("ResolveStatus returned error: %v", err)
	}
	if got.Status != "AVAILABLE" {
		t.Fatalf("appointment 2h away must leave status AVAILABLE, got %s", got.Status)
	}
	if len(profileRepo.writes) != 0 {
		t.Fatalf("unchanged status must not be written back, got %d writes", len(profileRepo.writes))
	}
}

func TestResolveStatusAutoPersistsOnlyOnChange(t *testing.T) {
	id := uuid.New()
	profileRepo := &fakeMedecinProfileRepo{profile: &entity.MedecinProfile{
		UserID:     id,
		Status:     entity.StatusBusy,
		StatusMode: entity.StatusModeAuto,
	}}
	apptRepo := &fakeAppointmentRepo{confirmed: []entity.Appointment{{Date: time.Now().Add(-10 * time.Minute)}}}
	uc := newStatusTestUsecase(profileRepo, apptRepo)

	got, err := uc.ResolveStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("ResolveStatus returned error: %v", err)
	}
	if got.Status != "BUSY" {
		t.Fatalf("expected BUSY, got %s", got.Status)
	}
	if len(profileRepo.writes) != 0 {
		t.Fatalf("recomputing the already-stored value must not write, got %d writes", len(profileRepo.writes))
	}
}

func TestResolveStatusKeepsStoredOnAppointmentReadFailure(t *testing.T) {
	id := uuid.New()
	profileRepo := &fakeMedecinProfileRepo{profile: &entity.MedecinProfile{
		UserID:     id,
		Status:     entity.StatusBusy,
		StatusMode: entity.StatusModeAuto,
	}}
	apptRepo := &fakeAppointmentRepo{confirmedErr: errors.New("connection refused")}
	uc := newStatusTestUsecase(profileRepo, apptRepo)

	got, err := uc.ResolveStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("read failure must degrade, not fail, got error: %v", err)
	}
	if got.Status != "BUSY" {
		t.Fatalf("read failure must return the stored status, got %s", got.Status)
	}
	if len(profileRepo.writes) != 0 {
		t.Fatalf("degraded read must not write, got %d writes", len(profileRepo.writes))
	}
}

func TestResolveStatusKeepsStoredOnWriteFailure(t *testing.T) {
	id := uuid.New()
	profileRepo := &fakeMedecinProfileRepo{
		profile: &entity.MedecinProfile{
			UserID:     id,
			Status:     entity.StatusAvailable,
			StatusMode: entity.StatusModeAuto,
		},
		writeErr: errors.New("connection refused"),
	}
	apptRepo := &fakeAppointmentRepo{confirmed: []entity.Appointment{{Date: time.Now()}}}
	uc := newStatusTestUsecase(profileRepo, apptRepo)

	got, err := uc.ResolveStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("write failure must degrade, not fail, got error: %v", err)
	}
	if got.Status != "AVAILABLE" {
		t.Fatalf("failed write-back must return the stored status, got %s", got.Status)
	}
}

func TestResolveStatusUnknownMedecin(t *testing.T) {
	profileRepo := &fakeMedecinProfileRepo{}
	apptRepo := &fakeAppointmentRepo{}
	uc := newStatusTestUsecase(profileRepo, apptRepo)

	if _, err := uc.ResolveStatus(context.Background(), uuid.New()); !errors.Is(err, ErrMedecinNotFound) {
		t.Fatalf("expected ErrMedecinNotFound, got %v", err)
	}
}

func TestSessionHooksSetStatusPair(t *testing.T) {
	id := uuid.New()
	profileRepo := &fakeMedecinProfileRepo{profile: &entity.MedecinProfile{
		UserID:     id,
		Status:     entity.StatusBusy,
		StatusMode: entity.StatusModeManual,
	}}
	uc := newStatusTestUsecase(profileRepo, &fakeAppointmentRepo{})

	if err := uc.OnSessionStart(context.Background(), id); err != nil {
		t.Fatalf("OnSessionStart returned error: %v", err)
	}
	if err := uc.OnSessionEnd(context.Background(), id); err != nil {
		t.Fatalf("OnSessionEnd returned error: %v", err)
	}

	if len(profileRepo.writes) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(profileRepo.writes))
	}
	if w := profileRepo.writes[0]; w.status != entity.StatusAvailable || w.mode != entity.StatusModeAuto {
		t.Fatalf("session start must reset to AVAILABLE/AUTO, got %s/%s", w.status, w.mode)
	}
	if w := profileRepo.writes[1]; w.status != entity.StatusUnavailable || w.mode != entity.StatusModeManual {
		t.Fatalf("session end must pin UNAVAILABLE/MANUAL, got %s/%s", w.status, w.mode)
	}
}

func TestSessionHooksIgnoreNonMedecins(t *testing.T) {
	profileRepo := &fakeMedecinProfileRepo{}
	uc := newStatusTestUsecase(profileRepo, &fakeAppointmentRepo{})

	if err := uc.OnSessionStart(context.Background(), uuid.New()); err != nil {
		t.Fatalf("session hook for a non-medecin must be a no-op, got %v", err)
	}
	if len(profileRepo.writes) != 0 {
		t.Fatalf("expected no writes, got %d", len(profileRepo.writes))
	}
}
