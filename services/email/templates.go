package email

import (
	"bytes"
	"fmt"
	"html/template"

	"servana/models"
)

var bookingStatusTmpl = template.Must(template.New("bookingStatus").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h2>Booking {{.BookingCode}}</h2>
  <p>Hi {{.CustomerName}},</p>
  <p>{{.Headline}}</p>
  <table style="border-collapse:collapse">
    <tr><td style="padding:4px 12px 4px 0"><b>Service</b></td><td>{{.ServiceName}}</td></tr>
    <tr><td style="padding:4px 12px 4px 0"><b>Scheduled</b></td><td>{{.ScheduledDate}}</td></tr>
    <tr><td style="padding:4px 12px 4px 0"><b>Status</b></td><td>{{.Status}}</td></tr>
    <tr><td style="padding:4px 12px 4px 0"><b>Total</b></td><td>{{.Total}}</td></tr>
    {{if .Charges}}<tr><td style="padding:4px 12px 4px 0"><b>Cancellation charges</b></td><td>{{.Charges}}</td></tr>{{end}}
  </table>
  <p style="color:#888;font-size:12px">This is an automated message, please do not reply.</p>
</div>`))

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h2>Welcome to Servana</h2>
  <p>Hi {{.Name}},</p>
  <p>Your account is ready. Browse services and book your first appointment whenever you like.</p>
</div>`))

type bookingStatusData struct {
	BookingCode   string
	CustomerName  string
	Headline      string
	ServiceName   string
	ScheduledDate string
	Status        string
	Total         string
	Charges       string
}

// statusHeadlines maps each booking status to the customer-facing message.
var statusHeadlines = map[models.BookingStatus]string{
	models.BookingPending:     "We received your booking and are waiting for the provider to confirm.",
	models.BookingConfirmed:   "Your booking has been confirmed by the provider.",
	models.BookingRescheduled: "Your booking has been rescheduled.",
	models.BookingInProgress:  "Your service is now in progress.",
	models.BookingCompleted:   "Your service has been completed. Thank you for using Servana.",
	models.BookingCancelled:   "Your booking has been cancelled.",
	models.BookingNoShow:      "Your booking was marked as a no-show.",
	models.BookingDisputed:    "Your booking is under review.",
}

// RenderBookingStatus builds the subject and HTML body for a booking status
// email.
func RenderBookingStatus(b *models.Booking) (subject, html string, err error) {
	headline, ok := statusHeadlines[b.Status]
	if !ok {
		headline = "Your booking was updated."
	}
	data := bookingStatusData{
		BookingCode:   b.BookingCode,
		CustomerName:  b.CustomerInfo.Name,
		Headline:      headline,
		ServiceName:   b.ServiceDetails.Name,
		ScheduledDate: b.Scheduling.ScheduledDate.Format("Mon, 02 Jan 2006 15:04"),
		Status:        string(b.Status),
		Total:         fmt.Sprintf("%.2f %s", b.Pricing.TotalAmount, b.Pricing.Currency),
	}
	if b.Status == models.BookingCancelled && b.Cancellation != nil {
		data.Charges = fmt.Sprintf("%.2f %s", b.Cancellation.CancellationCharges, b.Pricing.Currency)
	}

	var buf bytes.Buffer
	if err := bookingStatusTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render booking status email: %w", err)
	}
	subject = fmt.Sprintf("Booking %s: %s", b.BookingCode, b.Status)
	return subject, buf.String(), nil
}

// RenderWelcome builds the registration welcome email body.
func RenderWelcome(name string) (string, error) {
	var buf bytes.Buffer
	if err := welcomeTmpl.Execute(&buf, struct{ Name string }{Name: name}); err != nil {
		return "", fmt.Errorf("render welcome email: %w", err)
	}
	return buf.String(), nil
}
