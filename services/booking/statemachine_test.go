package booking

import (
	"testing"
	"time"

	"servana/models"
)

func newTestBooking(status models.BookingStatus) *models.Booking {
	return &models.Booking{
		ID:     "bk-1",
		Status: status,
		Pricing: models.Pricing{
			BaseAmount:  100,
			TotalAmount: 100,
		},
		Scheduling: models.Scheduling{
			ScheduledDate: time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		},
	}
}

func TestApplyTransitionRejectsSkippingConfirmation(t *testing.T) {
	b := newTestBooking(models.BookingPending)
	err := ApplyTransition(b, Transition{Target: models.BookingInProgress, Actor: models.UpdatedByProvider}, time.Now())
	if err == nil {
		t.Fatal("expected pending -> in-progress to be rejected")
	}
	if b.Status != models.BookingPending {
		t.Fatalf("status changed on rejected transition: %s", b.Status)
	}
	if len(b.StatusHistory) != 0 {
		t.Fatalf("history grew on rejected transition: %d entries", len(b.StatusHistory))
	}
}

func TestApplyTransitionFullLifecycle(t *testing.T) {
	b := newTestBooking(models.BookingPending)
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	steps := []Transition{
		{Target: models.BookingConfirmed, Actor: models.UpdatedByProvider},
		{Target: models.BookingInProgress, Actor: models.UpdatedByProvider},
		{Target: models.BookingCompleted, Actor: models.UpdatedByProvider, WorkDetails: "replaced kitchen faucet"},
	}
	for _, step := range steps {
		if err := ApplyTransition(b, step, now); err != nil {
			t.Fatalf("transition to %s failed: %v", step.Target, err)
		}
		now = now.Add(time.Hour)
	}

	if b.Status != models.BookingCompleted {
		t.Fatalf("expected completed, got %s", b.Status)
	}
	if len(b.StatusHistory) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(b.StatusHistory))
	}
	if b.Scheduling.ActualStartTime == nil || b.Scheduling.ActualEndTime == nil {
		t.Fatal("expected actual start and end times to be stamped")
	}
	if b.Completion == nil || b.Completion.WorkDetails != "replaced kitchen faucet" {
		t.Fatalf("completion record missing or wrong: %+v", b.Completion)
	}
}

func TestApplyTransitionCompletedRequiresWorkDetails(t *testing.T) {
	b := newTestBooking(models.BookingInProgress)
	err := ApplyTransition(b, Transition{Target: models.BookingCompleted, Actor: models.UpdatedByProvider}, time.Now())
	if err == nil {
		t.Fatal("expected completion without work details to be rejected")
	}
}

func TestApplyTransitionDisputeResolutionKeepsCompletion(t *testing.T) {
	b := newTestBooking(models.BookingCompleted)
	b.Completion = &models.Completion{WorkDetails: "original work", CompletedAt: time.Now()}

	if err := ApplyTransition(b, Transition{Target: models.BookingDisputed, Actor: models.UpdatedByUser, Reason: "work incomplete"}, time.Now()); err != nil {
		t.Fatalf("completed -> disputed failed: %v", err)
	}
	if err := ApplyTransition(b, Transition{Target: models.BookingCompleted, Actor: models.UpdatedByAdmin, Reason: "dispute resolved"}, time.Now()); err != nil {
		t.Fatalf("disputed -> completed failed: %v", err)
	}
	if b.Completion == nil || b.Completion.WorkDetails != "original work" {
		t.Fatalf("completion record lost during dispute resolution: %+v", b.Completion)
	}
}

func TestApplyTransitionCancellationRecord(t *testing.T) {
	b := newTestBooking(models.BookingConfirmed)
	// 10 hours before the slot lands in the 10% tier.
	now := b.Scheduling.ScheduledDate.Add(-10 * time.Hour)

	err := ApplyTransition(b, Transition{Target: models.BookingCancelled, Actor: models.UpdatedByUser, Reason: "change of plans"}, now)
	if err != nil {
		t.Fatalf("confirmed -> cancelled failed: %v", err)
	}
	if b.Cancellation == nil {
		t.Fatal("expected cancellation record")
	}
	if b.Cancellation.CancellationCharges != 10 {
		t.Fatalf("expected charges of 10, got %v", b.Cancellation.CancellationCharges)
	}
	if !b.Cancellation.RefundEligible {
		t.Fatal("expected refund eligibility when charges are below the total")
	}
	if b.Cancellation.CancelledBy != models.UpdatedByUser {
		t.Fatalf("wrong cancelledBy: %s", b.Cancellation.CancelledBy)
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	for _, from := range []models.BookingStatus{models.BookingCancelled, models.BookingNoShow} {
		for _, to := range []models.BookingStatus{
			models.BookingPending, models.BookingConfirmed, models.BookingRescheduled,
			models.BookingInProgress, models.BookingCompleted, models.BookingDisputed,
		} {
			if CanTransition(from, to) {
				t.Fatalf("terminal status %s allows transition to %s", from, to)
			}
		}
	}
}

func TestRescheduleRoundTrip(t *testing.T) {
	b := newTestBooking(models.BookingConfirmed)
	if err := ApplyTransition(b, Transition{Target: models.BookingRescheduled, Actor: models.UpdatedByUser}, time.Now()); err != nil {
		t.Fatalf("confirmed -> rescheduled failed: %v", err)
	}
	if err := ApplyTransition(b, Transition{Target: models.BookingConfirmed, Actor: models.UpdatedByProvider}, time.Now()); err != nil {
		t.Fatalf("rescheduled -> confirmed failed: %v", err)
	}
	if len(b.StatusHistory) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(b.StatusHistory))
	}
}
