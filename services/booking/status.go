package booking

import (
	"context"
	"time"

	"servana/models"
	"servana/utils"

	"go.uber.org/zap"
)

// UpdateStatus performs the dedicated status-update operation: transition
// validation, timestamps, history append, stats propagation and a
// best-effort notification email. Only an admin or the provider owning the
// booking may invoke it.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id string, req StatusUpdateRequest, actor Actor) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NotFoundError("booking")
	}
	if !canMutateStatus(b, actor) {
		return nil, utils.ForbiddenError("only an admin or the owning provider may update booking status")
	}

	now := time.Now()
	t := Transition{
		Target:      req.Status,
		Actor:       actor.Kind,
		Reason:      req.Reason,
		Notes:       req.Notes,
		WorkDetails: req.WorkDetails,
	}
	if err := ApplyTransition(b, t, now); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}

	s.afterTransition(ctx, b)
	return b, nil
}

// CancelBooking cancels an eligible booking. The owning user may cancel in
// addition to admins and the owning provider.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string, actor Actor, reason string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NotFoundError("booking")
	}
	if !canCancel(b, actor) {
		return nil, utils.ForbiddenError("you may not cancel this booking")
	}

	now := time.Now()
	if !Cancellable(b.Status, b.Scheduling.ScheduledDate, now) {
		return nil, utils.ValidationError("booking can no longer be cancelled", nil)
	}

	t := Transition{
		Target: models.BookingCancelled,
		Actor:  actor.Kind,
		Reason: reason,
	}
	if err := ApplyTransition(b, t, now); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}

	s.afterTransition(ctx, b)
	return b, nil
}

// afterTransition fires the stats increments for terminal statuses and the
// status notification email. Both are best-effort.
func (s *DefaultBookingService) afterTransition(ctx context.Context, b *models.Booking) {
	if s.Stats != nil {
		switch b.Status {
		case models.BookingCompleted:
			s.Stats.BookingCompleted(b)
		case models.BookingCancelled:
			s.Stats.BookingCancelled(b)
		}
	}
	if s.Notifier != nil {
		s.Notifier.BookingStatusChanged(ctx, b)
	}
	utils.GetLogger().Info("booking status updated",
		zap.String("bookingId", b.ID),
		zap.String("bookingCode", b.BookingCode),
		zap.String("status", string(b.Status)),
	)
}

func canMutateStatus(b *models.Booking, actor Actor) bool {
	switch actor.Kind {
	case models.UpdatedByAdmin, models.UpdatedBySystem:
		return true
	case models.UpdatedByProvider:
		return b.ProviderID == actor.ID
	default:
		return false
	}
}

func canCancel(b *models.Booking, actor Actor) bool {
	if canMutateStatus(b, actor) {
		return true
	}
	return actor.Kind == models.UpdatedByUser && b.UserID == actor.ID
}
