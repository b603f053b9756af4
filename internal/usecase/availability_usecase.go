package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/LaCsoN00/medapp-sub000/internal/availability"
	"github.com/LaCsoN00/medapp-sub000/internal/delivery/dto"
	"github.com/LaCsoN00/medapp-sub000/internal/domain/entity"
	"github.com/LaCsoN00/medapp-sub000/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedecinNotFound = errors.New("medecin not found")
	ErrInvalidSlotDate = errors.New("invalid date format, use YYYY-MM-DD")
)

type AvailabilityUsecase interface {
	AvailableDates(ctx context.Context, medecinID uuid.UUID, horizonDays int) (*dto.AvailableDatesResponse, error)
	AvailableTimeSlots(ctx context.Context, medecinID uuid.UUID, date string, slotMinutes int) (*dto.AvailableSlotsResponse, error)
}

type availabilityUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	medecinProfileRepo repository.MedecinProfileRepository
	workingHourRepo    repository.WorkingHourRepository
	appointmentRepo    repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medecinProfileRepo repository.MedecinProfileRepository,
	workingHourRepo repository.WorkingHourRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:                 db,
		log:                log,
		medecinProfileRepo: medecinProfileRepo,
		workingHourRepo:    workingHourRepo,
		appointmentRepo:    appointmentRepo,
	}
}

// AvailableDates lists the bookable calendar dates within the horizon.
// Booking starts tomorrow at the earliest; a medecin with no working-hour
// template yields an empty list.
func (u *availabilityUsecase) AvailableDates(ctx context.Context, medecinID uuid.UUID, horizonDays int) (*dto.AvailableDatesResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.medecinProfileRepo.FindByUserID(db, medecinID)
	if err != nil {
		u.log.Warnf("Failed to find medecin profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrMedecinNotFound
	}

	hours, err := u.workingHourRepo.FindByMedecinID(db, medecinID)
	if err != nil {
		u.log.Warnf("Failed to load working hours for %s: %+v", medecinID, err)
		return nil, err
	}

	if horizonDays <= 0 {
		horizonDays = availability.DefaultHorizonDays
	}

	dates := availability.Dates(toShifts(hours), time.Now(), horizonDays)
	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format("2006-01-02")
	}

	return &dto.AvailableDatesResponse{
		MedecinID:   medecinID,
		HorizonDays: horizonDays,
		Dates:       formatted,
	}, nil
}

// AvailableTimeSlots lists free slot start times for one date: the
// working-hour template expanded into slots, minus past times and minus
// slots already taken by a pending or confirmed appointment.
func (u *availabilityUsecase) AvailableTimeSlots(ctx context.Context, medecinID uuid.UUID, date string, slotMinutes int) (*dto.AvailableSlotsResponse, error) {
	db := u.db.WithContext(ctx)

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, ErrInvalidSlotDate
	}

	profile, err := u.medecinProfileRepo.FindByUserID(db, medecinID)
	if err != nil {
		u.log.Warnf("Failed to find medecin profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrMedecinNotFound
	}

	hours, err := u.workingHourRepo.FindByMedecinID(db, medecinID)
	if err != nil {
		u.log.Warnf("Failed to load working hours for %s: %+v", medecinID, err)
		return nil, err
	}

	if slotMinutes <= 0 {
		slotMinutes = int(availability.DefaultSlotDuration / time.Minute)
	}

	slots, err := availability.TemplateSlots(toShifts(hours), day, time.Duration(slotMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}
	slots = availability.DropPast(slots, time.Now())

	if len(slots) > 0 {
		booked, err := u.appointmentRepo.FindActiveByMedecinBetween(db, medecinID, day, day.AddDate(0, 0, 1))
		if err != nil {
			u.log.Warnf("Failed to load appointments for %s on %s: %+v", medecinID, date, err)
			return nil, err
		}
		taken := make([]time.Time, len(booked))
		for i, a := range booked {
			taken[i] = a.Date
		}
		slots = availability.ExcludeBooked(slots, taken)
	}

	formatted := make([]string, len(slots))
	for i, s := range slots {
		formatted[i] = s.Format("15:04")
	}

	return &dto.AvailableSlotsResponse{
		MedecinID:   medecinID,
		Date:        date,
		SlotMinutes: slotMinutes,
		Slots:       formatted,
	}, nil
}

func toShifts(hours []entity.WorkingHour) []availability.Shift {
	shifts := make([]availability.Shift, len(hours))
	for i, h := range hours {
		shifts[i] = availability.Shift{
			Weekday: time.Weekday(h.DayOfWeek),
			Start:   h.StartTime,
			End:     h.EndTime,
		}
	}
	return shifts
}
