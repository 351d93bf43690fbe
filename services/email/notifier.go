package email

import (
	"context"

	"servana/models"
	"servana/utils"

	"go.uber.org/zap"
)

// Notifier sends lifecycle emails. All sends are best-effort: failures are
// logged and never fail the triggering request.
type Notifier struct {
	Sender Sender
}

// BookingStatusChanged emails the customer about a booking status change.
func (n *Notifier) BookingStatusChanged(ctx context.Context, b *models.Booking) {
	if n == nil || n.Sender == nil {
		return
	}
	subject, html, err := RenderBookingStatus(b)
	if err != nil {
		utils.GetLogger().Warn("failed to render booking status email",
			zap.String("bookingId", b.ID), zap.Error(err))
		return
	}
	if err := n.Sender.Send(ctx, b.CustomerInfo.Email, b.CustomerInfo.Name, subject, html); err != nil {
		utils.GetLogger().Warn("failed to send booking status email",
			zap.String("bookingId", b.ID),
			zap.String("status", string(b.Status)),
			zap.Error(err),
		)
	}
}

// Welcome emails a newly registered principal.
func (n *Notifier) Welcome(ctx context.Context, toEmail, name string) {
	if n == nil || n.Sender == nil {
		return
	}
	html, err := RenderWelcome(name)
	if err != nil {
		utils.GetLogger().Warn("failed to render welcome email", zap.Error(err))
		return
	}
	if err := n.Sender.Send(ctx, toEmail, name, "Welcome to Servana", html); err != nil {
		utils.GetLogger().Warn("failed to send welcome email",
			zap.String("email", toEmail), zap.Error(err))
	}
}
