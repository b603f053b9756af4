package availability

import (
	"testing"
	"time"
)

// Wednesday 2026-09-02.
var refNow = time.Date(2026, 9, 2, 10, 15, 0, 0, time.UTC)

func weekdayTemplate(days ...time.Weekday) []Shift {
	var shifts []Shift
	for _, d := range days {
		shifts = append(shifts, Shift{Weekday: d, Start: "09:00", End: "17:00"})
	}
	return shifts
}

func TestDates_HorizonBound(t *testing.T) {
	shifts := weekdayTemplate(
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	)

	dates := Dates(shifts, refNow, 14)
	if len(dates) != 14 {
		t.Fatalf("expected 14 dates for full-week template, got %d", len(dates))
	}
	today := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	for _, d := range dates {
		if !d.After(today) {
			t.Errorf("date %s is not after today", d.Format("2006-01-02"))
		}
	}
	if !dates[0].Equal(today.AddDate(0, 0, 1)) {
		t.Errorf("first date should be tomorrow, got %s", dates[0].Format("2006-01-02"))
	}
	if !dates[13].Equal(today.AddDate(0, 0, 14)) {
		t.Errorf("last date should be today+14, got %s", dates[13].Format("2006-01-02"))
	}
}

func TestDates_DayFilter(t *testing.T) {
	dates := Dates(weekdayTemplate(time.Monday), refNow, 14)
	if len(dates) == 0 {
		t.Fatal("expected at least one Monday within the horizon")
	}
	for _, d := range dates {
		if d.Weekday() != time.Monday {
			t.Errorf("expected only Mondays, got %s (%s)", d.Weekday(), d.Format("2006-01-02"))
		}
	}
}

func TestDates_EmptyTemplate(t *testing.T) {
	if dates := Dates(nil, refNow, 14); len(dates) != 0 {
		t.Fatalf("expected no dates for empty template, got %d", len(dates))
	}
}

func TestTemplateSlots_Boundary(t *testing.T) {
	shifts := []Shift{{Weekday: time.Wednesday, Start: "09:00", End: "17:00"}}
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	slots, err := TemplateSlots(shifts, date, 30*time.Minute)
	if err != nil {
		t.Fatalf("TemplateSlots failed: %v", err)
	}
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots for 09:00-17:00 at 30min, got %d", len(slots))
	}
	if got := slots[0].Format("15:04"); got != "09:00" {
		t.Errorf("first slot: expected 09:00, got %s", got)
	}
	if got := slots[15].Format("15:04"); got != "16:30" {
		t.Errorf("last slot: expected 16:30, got %s (17:00 must never be emitted)", got)
	}
}

func TestTemplateSlots_UnionsSameDayShifts(t *testing.T) {
	shifts := []Shift{
		{Weekday: time.Wednesday, Start: "14:00", End: "16:00"},
		{Weekday: time.Wednesday, Start: "09:00", End: "12:00"},
		{Weekday: time.Thursday, Start: "08:00", End: "18:00"}, // other day, ignored
	}
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	slots, err := TemplateSlots(shifts, date, 30*time.Minute)
	if err != nil {
		t.Fatalf("TemplateSlots failed: %v", err)
	}
	// 09:00-12:00 gives 6 slots, 14:00-16:00 gives 4.
	if len(slots) != 10 {
		t.Fatalf("expected 10 slots across both shifts, got %d", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i].After(slots[i-1]) {
			t.Fatalf("slots not strictly ascending at index %d", i)
		}
	}
	if got := slots[6].Format("15:04"); got != "14:00" {
		t.Errorf("expected afternoon shift to resume at 14:00, got %s", got)
	}
}

func TestTemplateSlots_OverlappingShiftsDeduplicated(t *testing.T) {
	shifts := []Shift{
		{Weekday: time.Wednesday, Start: "09:00", End: "11:00"},
		{Weekday: time.Wednesday, Start: "10:00", End: "12:00"},
	}
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	slots, err := TemplateSlots(shifts, date, 30*time.Minute)
	if err != nil {
		t.Fatalf("TemplateSlots failed: %v", err)
	}
	// 09:00..11:30, no duplicate 10:00/10:30 entries.
	if len(slots) != 6 {
		t.Fatalf("expected 6 de-duplicated slots, got %d", len(slots))
	}
}

func TestTemplateSlots_Idempotent(t *testing.T) {
	shifts := []Shift{{Weekday: time.Wednesday, Start: "09:00", End: "17:00"}}
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	first, err := TemplateSlots(shifts, date, 30*time.Minute)
	if err != nil {
		t.Fatalf("TemplateSlots failed: %v", err)
	}
	second, err := TemplateSlots(shifts, date, 30*time.Minute)
	if err != nil {
		t.Fatalf("TemplateSlots failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("results differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Fatalf("results differ at index %d: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestTemplateSlots_EmptyTemplate(t *testing.T) {
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	slots, err := TemplateSlots(nil, date, 30*time.Minute)
	if err != nil {
		t.Fatalf("TemplateSlots failed: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots for empty template, got %d", len(slots))
	}
}

func TestTemplateSlots_Errors(t *testing.T) {
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		shift Shift
		want  error
	}{
		{"malformed start", Shift{time.Wednesday, "9h00", "17:00"}, ErrInvalidTimeFormat},
		{"malformed end", Shift{time.Wednesday, "09:00", "25:99"}, ErrInvalidTimeFormat},
		{"end before start", Shift{time.Wednesday, "17:00", "09:00"}, ErrInvalidTemplate},
		{"end equals start", Shift{time.Wednesday, "09:00", "09:00"}, ErrInvalidTemplate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TemplateSlots([]Shift{tt.shift}, date, 30*time.Minute); err != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateShift(t *testing.T) {
	if err := ValidateShift("09:00", "17:00"); err != nil {
		t.Fatalf("valid shift rejected: %v", err)
	}
	if err := ValidateShift("09:00", "08:00"); err != ErrInvalidTemplate {
		t.Fatalf("expected ErrInvalidTemplate, got %v", err)
	}
	if err := ValidateShift("morning", "17:00"); err != ErrInvalidTimeFormat {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}
}

func TestDropPast_Boundary(t *testing.T) {
	shifts := []Shift{{Weekday: time.Wednesday, Start: "09:00", End: "17:00"}}
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	slots, err := TemplateSlots(shifts, date, 30*time.Minute)
	if err != nil {
		t.Fatalf("TemplateSlots failed: %v", err)
	}

	// Now is 10:15: the 10:00 slot is gone, 10:30 is the first one kept.
	future := DropPast(slots, refNow)
	if len(future) != 13 {
		t.Fatalf("expected 13 future slots, got %d", len(future))
	}
	if got := future[0].Format("15:04"); got != "10:30" {
		t.Fatalf("expected first future slot 10:30, got %s", got)
	}

	// A slot starting exactly at now is dropped too.
	exact := time.Date(2026, 9, 2, 10, 30, 0, 0, time.UTC)
	trimmed := DropPast(slots, exact)
	if got := trimmed[0].Format("15:04"); got != "11:00" {
		t.Fatalf("slot equal to now must be dropped, first kept was %s", got)
	}
}

func TestExcludeBooked(t *testing.T) {
	shifts := []Shift{{Weekday: time.Wednesday, Start: "09:00", End: "11:00"}}
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	slots, err := TemplateSlots(shifts, date, 30*time.Minute)
	if err != nil {
		t.Fatalf("TemplateSlots failed: %v", err)
	}

	booked := []time.Time{
		time.Date(2026, 9, 2, 9, 30, 0, 0, time.UTC),
		time.Date(2026, 9, 2, 10, 30, 17, 0, time.UTC), // seconds ignored
	}
	free := ExcludeBooked(slots, booked)
	if len(free) != 2 {
		t.Fatalf("expected 2 free slots, got %d", len(free))
	}
	if got := free[0].Format("15:04"); got != "09:00" {
		t.Errorf("expected 09:00 kept, got %s", got)
	}
	if got := free[1].Format("15:04"); got != "10:00" {
		t.Errorf("expected 10:00 kept, got %s", got)
	}
}
