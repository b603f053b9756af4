// Package availability holds the pure computations behind the booking
// surface: expanding a medecin's weekly working-hour template into concrete
// bookable dates and slot start times, and deriving the live status signal
// from nearby confirmed appointments. Nothing in this package touches a
// store; callers load the template and appointments and pass them in.
package availability

import (
	"errors"
	"sort"
	"time"
)

const (
	// DefaultHorizonDays is how far ahead bookable dates are listed.
	DefaultHorizonDays = 14

	// DefaultSlotDuration is the consultation slot length.
	DefaultSlotDuration = 30 * time.Minute
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidTemplate   = errors.New("working hour end time must be after start time")
)

// Shift is one working-hour template entry projected onto a weekday.
// Start and End are wall-clock times in HH:MM 24-hour format, local to
// the medecin.
type Shift struct {
	Weekday time.Weekday
	Start   string
	End     string
}

// ValidateShift checks the HH:MM encoding and the start < end invariant.
// Write paths call this before persisting a template row; TemplateSlots
// re-checks defensively since stored rows may predate validation.
func ValidateShift(start, end string) error {
	s, err := parseClock(start)
	if err != nil {
		return err
	}
	e, err := parseClock(end)
	if err != nil {
		return err
	}
	if e <= s {
		return ErrInvalidTemplate
	}
	return nil
}

// Dates returns the bookable calendar dates for the template: every date
// from the day after now through now plus horizonDays whose weekday matches
// at least one shift. Today is never included; booking starts tomorrow at
// the earliest. An empty template yields an empty result, not an error.
func Dates(shifts []Shift, now time.Time, horizonDays int) []time.Time {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	workdays := make(map[time.Weekday]bool, len(shifts))
	for _, s := range shifts {
		workdays[s.Weekday] = true
	}
	if len(workdays) == 0 {
		return nil
	}

	today := startOfDay(now)
	var dates []time.Time
	for i := 1; i <= horizonDays; i++ {
		d := today.AddDate(0, 0, i)
		if workdays[d.Weekday()] {
			dates = append(dates, d)
		}
	}
	return dates
}

// TemplateSlots expands every shift matching date's weekday into slot start
// times on that date, stepping by step from the shift start and stopping
// strictly before the shift end. Same-day shifts are unioned: the result is
// ascending and de-duplicated, so overlapping template rows are harmless.
//
// The result encodes template availability only. Past-time and
// booking-conflict exclusion are the separate DropPast and ExcludeBooked
// stages so each can be tested and swapped on its own.
func TemplateSlots(shifts []Shift, date time.Time, step time.Duration) ([]time.Time, error) {
	if step <= 0 {
		step = DefaultSlotDuration
	}

	day := startOfDay(date)
	seen := make(map[time.Time]bool)
	var slots []time.Time

	for _, s := range shifts {
		if s.Weekday != date.Weekday() {
			continue
		}
		start, err := parseClock(s.Start)
		if err != nil {
			return nil, err
		}
		end, err := parseClock(s.End)
		if err != nil {
			return nil, err
		}
		if end <= start {
			return nil, ErrInvalidTemplate
		}
		for t := day.Add(start); t.Before(day.Add(end)); t = t.Add(step) {
			if !seen[t] {
				seen[t] = true
				slots = append(slots, t)
			}
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	return slots, nil
}

// DropPast removes slots whose start is at or before now. For dates after
// today this keeps everything; for today it trims the morning away.
func DropPast(slots []time.Time, now time.Time) []time.Time {
	var out []time.Time
	for _, t := range slots {
		if t.After(now) {
			out = append(out, t)
		}
	}
	return out
}

// ExcludeBooked removes slots already taken by an appointment, compared at
// minute precision.
func ExcludeBooked(slots []time.Time, booked []time.Time) []time.Time {
	if len(booked) == 0 {
		return slots
	}
	taken := make(map[time.Time]bool, len(booked))
	for _, b := range booked {
		taken[b.Truncate(time.Minute)] = true
	}
	var out []time.Time
	for _, t := range slots {
		if !taken[t.Truncate(time.Minute)] {
			out = append(out, t)
		}
	}
	return out
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
