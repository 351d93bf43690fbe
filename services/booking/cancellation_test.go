package booking

import (
	"testing"
	"time"

	"servana/models"
)

func TestCancellationCharges(t *testing.T) {
	scheduled := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		until time.Duration
		want  float64
	}{
		{"two days out is free", 48 * time.Hour, 0},
		{"just over a day out is free", 25 * time.Hour, 0},
		{"ten hours out costs 10 percent", 10 * time.Hour, 20},
		{"one hour out costs 25 percent", time.Hour, 50},
		{"after the slot costs 25 percent", -time.Hour, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CancellationCharges(200, scheduled, scheduled.Add(-tt.until))
			if got != tt.want {
				t.Fatalf("got charges %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCancellable(t *testing.T) {
	scheduled := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	// Pending bookings stay cancellable right up to the slot.
	if !Cancellable(models.BookingPending, scheduled, scheduled.Add(-30*time.Minute)) {
		t.Fatal("pending booking 30 minutes out should be cancellable")
	}
	// Confirmed bookings need more than two hours of buffer.
	if Cancellable(models.BookingConfirmed, scheduled, scheduled.Add(-30*time.Minute)) {
		t.Fatal("confirmed booking 30 minutes out should not be cancellable")
	}
	if !Cancellable(models.BookingConfirmed, scheduled, scheduled.Add(-3*time.Hour)) {
		t.Fatal("confirmed booking 3 hours out should be cancellable")
	}
	// Other statuses are never cancellable through this path.
	for _, status := range []models.BookingStatus{
		models.BookingInProgress, models.BookingCompleted,
		models.BookingCancelled, models.BookingRescheduled,
	} {
		if Cancellable(status, scheduled, scheduled.Add(-48*time.Hour)) {
			t.Fatalf("%s booking should not be user-cancellable", status)
		}
	}
}
