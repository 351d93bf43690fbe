package booking

import (
	"time"

	"servana/models"
	"servana/utils"
)

// allowedTransitions is the booking status graph. cancelled and no-show are
// terminal with no outbound transitions.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:     {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed:   {models.BookingRescheduled, models.BookingInProgress, models.BookingCancelled},
	models.BookingRescheduled: {models.BookingConfirmed, models.BookingCancelled},
	models.BookingInProgress:  {models.BookingCompleted, models.BookingCancelled},
	models.BookingCompleted:   {models.BookingDisputed},
	models.BookingDisputed:    {models.BookingCompleted, models.BookingCancelled},
	models.BookingCancelled:   {},
	models.BookingNoShow:      {},
}

// CanTransition reports whether target is in the allowed-successor set of
// the current status.
func CanTransition(from, to models.BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition rejects a transition with an error naming the current
// and attempted status.
func ValidateTransition(from, to models.BookingStatus) error {
	if !CanTransition(from, to) {
		return utils.TransitionError(string(from), string(to))
	}
	return nil
}

// Transition describes one requested status change.
type Transition struct {
	Target      models.BookingStatus
	Actor       models.UpdatedBy
	Reason      string
	Notes       string
	WorkDetails string // required when entering completed
}

// ApplyTransition validates and applies a status change on the booking in
// memory: status, the append-only history entry, and the status-specific
// stamps and records. Persistence and side effects stay with the caller.
func ApplyTransition(b *models.Booking, t Transition, now time.Time) error {
	if err := ValidateTransition(b.Status, t.Target); err != nil {
		return err
	}

	switch t.Target {
	case models.BookingInProgress:
		start := now
		b.Scheduling.ActualStartTime = &start
	case models.BookingCompleted:
		if t.WorkDetails == "" && b.Completion == nil {
			return utils.ValidationError("work details are required to complete a booking", map[string]string{
				"workDetails": "required",
			})
		}
		end := now
		b.Scheduling.ActualEndTime = &end
		if t.WorkDetails != "" {
			b.Completion = &models.Completion{
				WorkDetails: t.WorkDetails,
				Notes:       t.Notes,
				CompletedAt: now,
			}
		}
	case models.BookingCancelled:
		charges := CancellationCharges(b.Pricing.TotalAmount, b.Scheduling.ScheduledDate, now)
		b.Cancellation = &models.Cancellation{
			CancelledBy:         t.Actor,
			CancelledAt:         now,
			Reason:              t.Reason,
			RefundEligible:      charges < b.Pricing.TotalAmount,
			CancellationCharges: charges,
		}
	}

	b.Status = t.Target
	b.StatusHistory = append(b.StatusHistory, models.StatusEntry{
		Status:    t.Target,
		Timestamp: now,
		UpdatedBy: t.Actor,
		Reason:    t.Reason,
		Notes:     t.Notes,
	})
	return nil
}
