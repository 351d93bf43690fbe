package booking

import (
	"context"
	"testing"
	"time"

	bookingRepo "servana/database/repository/booking"
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	updates  int
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: map[string]*models.Booking{}}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	return r.bookings[id], nil
}

func (r *fakeBookingRepo) GetByCode(code string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.BookingCode == code {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) List(filter bson.M, skip, limit int64) ([]models.Booking, int64, error) {
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) Update(b *models.Booking) error {
	r.bookings[b.ID] = b
	r.updates++
	return nil
}

func (r *fakeBookingRepo) EnsureIndexes() error { return nil }

func (r *fakeBookingRepo) CountByStatus() ([]bookingRepo.StatusCount, error) { return nil, nil }

func (r *fakeBookingRepo) RevenueByMonth(months int) ([]bookingRepo.MonthlyRevenue, error) {
	return nil, nil
}

func (r *fakeBookingRepo) TopProviders(limit int64) ([]bookingRepo.ProviderRevenue, error) {
	return nil, nil
}

type fakeStats struct {
	created, completed, cancelled int
}

func (f *fakeStats) BookingCreated(b *models.Booking)   { f.created++ }
func (f *fakeStats) BookingCompleted(b *models.Booking) { f.completed++ }
func (f *fakeStats) BookingCancelled(b *models.Booking) { f.cancelled++ }

func confirmedBooking(scheduled time.Time) *models.Booking {
	return &models.Booking{
		ID:         "bk-1",
		UserID:     "user-1",
		ProviderID: "prov-1",
		Status:     models.BookingConfirmed,
		Pricing:    models.Pricing{TotalAmount: 100, Currency: "USD"},
		Scheduling: models.Scheduling{ScheduledDate: scheduled},
	}
}

func TestUpdateStatusRejectsForeignProvider(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(time.Now().Add(48 * time.Hour)))
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.UpdateStatus(context.Background(), "bk-1",
		StatusUpdateRequest{Status: models.BookingInProgress},
		Actor{Kind: models.UpdatedByProvider, ID: "someone-else"})
	if err == nil {
		t.Fatal("expected a foreign provider to be rejected")
	}
	if repo.updates != 0 {
		t.Fatal("rejected update must not persist")
	}
}

func TestUpdateStatusRejectsUsers(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(time.Now().Add(48 * time.Hour)))
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.UpdateStatus(context.Background(), "bk-1",
		StatusUpdateRequest{Status: models.BookingInProgress},
		Actor{Kind: models.UpdatedByUser, ID: "user-1"})
	if err == nil {
		t.Fatal("users must go through the cancel path, not status updates")
	}
}

func TestUpdateStatusCompletesAndPropagatesStats(t *testing.T) {
	b := confirmedBooking(time.Now().Add(time.Hour))
	b.Status = models.BookingInProgress
	repo := newFakeBookingRepo(b)
	stats := &fakeStats{}
	svc := &DefaultBookingService{Repo: repo, Stats: stats}

	updated, err := svc.UpdateStatus(context.Background(), "bk-1",
		StatusUpdateRequest{Status: models.BookingCompleted, WorkDetails: "done"},
		Actor{Kind: models.UpdatedByProvider, ID: "prov-1"})
	if err != nil {
		t.Fatalf("completion failed: %v", err)
	}
	if updated.Status != models.BookingCompleted {
		t.Fatalf("expected completed, got %s", updated.Status)
	}
	if stats.completed != 1 {
		t.Fatalf("expected one completion increment, got %d", stats.completed)
	}
	if repo.updates != 1 {
		t.Fatalf("expected one persisted update, got %d", repo.updates)
	}
}

func TestCancelBookingByOwningUser(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(time.Now().Add(48 * time.Hour)))
	stats := &fakeStats{}
	svc := &DefaultBookingService{Repo: repo, Stats: stats}

	b, err := svc.CancelBooking(context.Background(), "bk-1",
		Actor{Kind: models.UpdatedByUser, ID: "user-1"}, "change of plans")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if b.Status != models.BookingCancelled {
		t.Fatalf("expected cancelled, got %s", b.Status)
	}
	if b.Cancellation == nil || b.Cancellation.CancellationCharges != 0 {
		t.Fatalf("48 hours out should be free: %+v", b.Cancellation)
	}
	if stats.cancelled != 1 {
		t.Fatalf("expected one cancellation increment, got %d", stats.cancelled)
	}
}

func TestCancelBookingRejectsForeignUser(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(time.Now().Add(48 * time.Hour)))
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.CancelBooking(context.Background(), "bk-1",
		Actor{Kind: models.UpdatedByUser, ID: "intruder"}, "")
	if err == nil {
		t.Fatal("expected a foreign user to be rejected")
	}
}

func TestCancelBookingInsideConfirmedWindow(t *testing.T) {
	// Confirmed 30 minutes before the slot is past the cancellation window.
	repo := newFakeBookingRepo(confirmedBooking(time.Now().Add(30 * time.Minute)))
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.CancelBooking(context.Background(), "bk-1",
		Actor{Kind: models.UpdatedByUser, ID: "user-1"}, "")
	if err == nil {
		t.Fatal("confirmed booking inside the 2 hour window must not cancel")
	}
}

func TestGetBookingOwnershipScope(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(time.Now().Add(time.Hour)))
	svc := &DefaultBookingService{Repo: repo}
	ctx := context.Background()

	if _, err := svc.GetBooking(ctx, "bk-1", Actor{Kind: models.UpdatedByUser, ID: "user-1"}); err != nil {
		t.Fatalf("owning user should read the booking: %v", err)
	}
	if _, err := svc.GetBooking(ctx, "bk-1", Actor{Kind: models.UpdatedByProvider, ID: "prov-1"}); err != nil {
		t.Fatalf("owning provider should read the booking: %v", err)
	}
	if _, err := svc.GetBooking(ctx, "bk-1", Actor{Kind: models.UpdatedByAdmin, ID: "any-admin"}); err != nil {
		t.Fatalf("admins should read any booking: %v", err)
	}
	if _, err := svc.GetBooking(ctx, "bk-1", Actor{Kind: models.UpdatedByUser, ID: "other"}); err == nil {
		t.Fatal("foreign user must not read the booking")
	}
}
