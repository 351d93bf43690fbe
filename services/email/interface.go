package email

import "context"

// Sender is the narrow outbound-email contract the rest of the system
// depends on: recipient, subject, HTML body.
type Sender interface {
	Send(ctx context.Context, toEmail, toName, subject, htmlBody string) error
}
