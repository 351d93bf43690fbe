package booking

import (
	"context"
	"time"

	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Actor identifies who performs a booking mutation, for ownership and
// history attribution.
type Actor struct {
	Kind models.UpdatedBy
	ID   string
}

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	ServiceID         string                    `json:"serviceId" binding:"required"`
	ScheduledDate     time.Time                 `json:"scheduledDate" binding:"required"`
	TimeSlot          string                    `json:"timeSlot"`
	Address           string                    `json:"address"`
	Notes             string                    `json:"notes"`
	AdditionalCharges []models.AdditionalCharge `json:"additionalCharges"`
	Discount          float64                   `json:"discount"`
	TaxTotal          float64                   `json:"taxTotal"`
}

// StatusUpdateRequest is the payload for the dedicated status-update
// operation.
type StatusUpdateRequest struct {
	Status      models.BookingStatus `json:"status" binding:"required"`
	Reason      string               `json:"reason"`
	Notes       string               `json:"notes"`
	WorkDetails string               `json:"workDetails"`
}

// StatsRecorder propagates denormalized counters on terminal and creation
// events. Implementations are best-effort; failures never surface.
type StatsRecorder interface {
	BookingCreated(b *models.Booking)
	BookingCompleted(b *models.Booking)
	BookingCancelled(b *models.Booking)
}

// StatusNotifier sends booking lifecycle emails to the customer.
// Best-effort: failures are logged, never returned.
type StatusNotifier interface {
	BookingStatusChanged(ctx context.Context, b *models.Booking)
}

// Enqueuer hands post-response side effects to the background task queue.
type Enqueuer interface {
	EnqueueBookingCreated(bookingID string) error
}

// BookingService manages the booking lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string, actor Actor) (*models.Booking, error)
	GetBookingByCode(ctx context.Context, code string, actor Actor) (*models.Booking, error)
	ListBookings(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Booking, int64, error)
	UpdateStatus(ctx context.Context, id string, req StatusUpdateRequest, actor Actor) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string, actor Actor, reason string) (*models.Booking, error)
	Timeline(ctx context.Context, id string, actor Actor) ([]models.StatusEntry, error)
}
