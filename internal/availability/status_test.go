package availability

import (
	"testing"
	"time"
)

func TestBusy_ProximityWindow(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		appointments []time.Time
		want         bool
	}{
		{"no appointments", nil, false},
		{"10 minutes ahead", []time.Time{now.Add(10 * time.Minute)}, true},
		{"10 minutes ago", []time.Time{now.Add(-10 * time.Minute)}, true},
		{"exactly 30 minutes ahead", []time.Time{now.Add(30 * time.Minute)}, true},
		{"45 minutes ahead", []time.Time{now.Add(45 * time.Minute)}, false},
		{"45 minutes ago", []time.Time{now.Add(-45 * time.Minute)}, false},
		{"one far, one near", []time.Time{now.Add(3 * time.Hour), now.Add(5 * time.Minute)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Busy(tt.appointments, now); got != tt.want {
				t.Fatalf("Busy() = %v, want %v", got, tt.want)
			}
		})
	}
}
