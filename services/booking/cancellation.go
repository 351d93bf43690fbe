package booking

import (
	"time"

	"servana/models"
)

// CancellationCharges applies the time-to-service tiering: more than 24
// hours out is free, 2-24 hours costs 10% of the total, 2 hours or less
// costs 25%.
func CancellationCharges(totalAmount float64, scheduled, now time.Time) float64 {
	hoursUntil := scheduled.Sub(now).Hours()
	switch {
	case hoursUntil > 24:
		return 0
	case hoursUntil > 2:
		return round2(totalAmount * 0.10)
	default:
		return round2(totalAmount * 0.25)
	}
}

// Cancellable reports whether the booking may still be cancelled. Pending
// bookings are always cancellable regardless of time-to-service; confirmed
// bookings require more than 2 hours of buffer. The asymmetry is deliberate.
func Cancellable(status models.BookingStatus, scheduled, now time.Time) bool {
	return status == models.BookingPending ||
		(status == models.BookingConfirmed && scheduled.Sub(now).Hours() > 2)
}
