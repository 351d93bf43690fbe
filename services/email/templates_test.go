package email

import (
	"strings"
	"testing"
	"time"

	"servana/models"
)

func testBooking(status models.BookingStatus) *models.Booking {
	return &models.Booking{
		ID:          "bk-1",
		BookingCode: "BK123456789",
		Status:      status,
		CustomerInfo: models.CustomerSnapshot{
			Name:  "Jordan Reyes",
			Email: "jordan@example.com",
		},
		ServiceDetails: models.ServiceSnapshot{Name: "Deep Cleaning"},
		Scheduling: models.Scheduling{
			ScheduledDate: time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		},
		Pricing: models.Pricing{TotalAmount: 120, Currency: "USD"},
	}
}

func TestRenderBookingStatusConfirmed(t *testing.T) {
	subject, html, err := RenderBookingStatus(testBooking(models.BookingConfirmed))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if subject != "Booking BK123456789: confirmed" {
		t.Fatalf("wrong subject: %q", subject)
	}
	for _, want := range []string{"Jordan Reyes", "Deep Cleaning", "confirmed", "120.00 USD"} {
		if !strings.Contains(html, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	if strings.Contains(html, "Cancellation charges") {
		t.Fatal("non-cancelled email must not show charges")
	}
}

func TestRenderBookingStatusCancelledShowsCharges(t *testing.T) {
	b := testBooking(models.BookingCancelled)
	b.Cancellation = &models.Cancellation{
		CancelledBy:         models.UpdatedByUser,
		CancellationCharges: 12,
	}
	_, html, err := RenderBookingStatus(b)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "Cancellation charges") || !strings.Contains(html, "12.00 USD") {
		t.Fatal("cancelled email must show the charge line")
	}
}

func TestRenderWelcome(t *testing.T) {
	html, err := RenderWelcome("Jordan")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "Jordan") || !strings.Contains(html, "Welcome to Servana") {
		t.Fatal("welcome body missing expected content")
	}
}
