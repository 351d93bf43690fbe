package stats

import (
	"testing"

	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserCounters struct {
	id  string
	inc bson.M
}

func (r *fakeUserCounters) GetByID(id string) (*models.User, error)       { return nil, nil }
func (r *fakeUserCounters) GetByEmail(email string) (*models.User, error) { return nil, nil }

func (r *fakeUserCounters) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return nil, nil
}

func (r *fakeUserCounters) List(filter bson.M, skip, limit int64) ([]models.User, int64, error) {
	return nil, 0, nil
}

func (r *fakeUserCounters) Create(u *models.User) error                 { return nil }
func (r *fakeUserCounters) Update(u *models.User) error                 { return nil }
func (r *fakeUserCounters) UpdateSet(id string, updateDoc bson.M) error { return nil }

func (r *fakeUserCounters) IncrementStats(id string, inc bson.M) error {
	r.id, r.inc = id, inc
	return nil
}

func (r *fakeUserCounters) EnsureIndexes() error { return nil }

type fakeProviderCounters struct {
	id  string
	inc bson.M
}

func (r *fakeProviderCounters) GetByID(id string) (*models.Provider, error)       { return nil, nil }
func (r *fakeProviderCounters) GetByEmail(email string) (*models.Provider, error) { return nil, nil }

func (r *fakeProviderCounters) GetByIDWithProjection(id string, projection bson.M) (*models.Provider, error) {
	return nil, nil
}

func (r *fakeProviderCounters) List(filter bson.M, skip, limit int64) ([]models.Provider, int64, error) {
	return nil, 0, nil
}

func (r *fakeProviderCounters) Create(p *models.Provider) error             { return nil }
func (r *fakeProviderCounters) Update(p *models.Provider) error             { return nil }
func (r *fakeProviderCounters) UpdateSet(id string, updateDoc bson.M) error { return nil }

func (r *fakeProviderCounters) IncrementStats(id string, inc bson.M) error {
	r.id, r.inc = id, inc
	return nil
}

func (r *fakeProviderCounters) SetRating(id string, rating models.RatingSummary) error { return nil }
func (r *fakeProviderCounters) EnsureIndexes() error                                   { return nil }

type fakeServiceCounters struct {
	id  string
	inc bson.M
}

func (r *fakeServiceCounters) GetByID(id string) (*models.Service, error) { return nil, nil }

func (r *fakeServiceCounters) List(filter bson.M, skip, limit int64) ([]models.Service, int64, error) {
	return nil, 0, nil
}

func (r *fakeServiceCounters) Create(svc *models.Service) error            { return nil }
func (r *fakeServiceCounters) Update(svc *models.Service) error            { return nil }
func (r *fakeServiceCounters) UpdateSet(id string, updateDoc bson.M) error { return nil }

func (r *fakeServiceCounters) IncrementStats(id string, inc bson.M) error {
	r.id, r.inc = id, inc
	return nil
}

func (r *fakeServiceCounters) SetRating(id string, rating models.RatingSummary) error { return nil }
func (r *fakeServiceCounters) EnsureIndexes() error                                   { return nil }

func propagatorUnderTest() (*Propagator, *fakeUserCounters, *fakeProviderCounters, *fakeServiceCounters) {
	users := &fakeUserCounters{}
	providers := &fakeProviderCounters{}
	services := &fakeServiceCounters{}
	return &Propagator{Users: users, Providers: providers, Services: services}, users, providers, services
}

func statsBooking() *models.Booking {
	return &models.Booking{
		ID:         "bk-1",
		UserID:     "user-1",
		ProviderID: "prov-1",
		ServiceID:  "svc-1",
		Pricing:    models.Pricing{TotalAmount: 129.5, Currency: "USD"},
	}
}

func TestBookingCreatedIncrementsTotals(t *testing.T) {
	p, users, providers, services := propagatorUnderTest()

	p.BookingCreated(statsBooking())

	for name, inc := range map[string]bson.M{"user": users.inc, "provider": providers.inc, "service": services.inc} {
		if inc["stats.totalBookings"] != 1 {
			t.Fatalf("%s totalBookings increment missing: %v", name, inc)
		}
		if len(inc) != 1 {
			t.Fatalf("%s increment must only touch totalBookings: %v", name, inc)
		}
	}
	if users.id != "user-1" || providers.id != "prov-1" || services.id != "svc-1" {
		t.Fatalf("increments hit the wrong documents: %s %s %s", users.id, providers.id, services.id)
	}
}

func TestBookingCompletedMovesRevenue(t *testing.T) {
	p, users, providers, services := propagatorUnderTest()

	p.BookingCompleted(statsBooking())

	if users.inc["stats.completedBookings"] != 1 {
		t.Fatalf("user completed count missing: %v", users.inc)
	}
	if users.inc["stats.totalSpent"] != 129.5 {
		t.Fatalf("user totalSpent must grow by the booking total: %v", users.inc)
	}
	if providers.inc["stats.completedBookings"] != 1 {
		t.Fatalf("provider completed count missing: %v", providers.inc)
	}
	if providers.inc["stats.totalEarnings"] != 129.5 {
		t.Fatalf("provider totalEarnings must grow by the booking total: %v", providers.inc)
	}
	if services.inc["stats.completedBookings"] != 1 {
		t.Fatalf("service completed count missing: %v", services.inc)
	}
	// Services carry no revenue counters.
	if _, ok := services.inc["stats.totalSpent"]; ok {
		t.Fatalf("service increment must not carry revenue: %v", services.inc)
	}
	if _, ok := services.inc["stats.totalEarnings"]; ok {
		t.Fatalf("service increment must not carry revenue: %v", services.inc)
	}
}

func TestBookingCancelledMovesNoRevenue(t *testing.T) {
	p, users, providers, services := propagatorUnderTest()

	p.BookingCancelled(statsBooking())

	for name, inc := range map[string]bson.M{"user": users.inc, "provider": providers.inc, "service": services.inc} {
		if inc["stats.cancelledBookings"] != 1 {
			t.Fatalf("%s cancelled count missing: %v", name, inc)
		}
		if _, ok := inc["stats.totalSpent"]; ok {
			t.Fatalf("%s must not record spend on cancellation: %v", name, inc)
		}
		if _, ok := inc["stats.totalEarnings"]; ok {
			t.Fatalf("%s must not record earnings on cancellation: %v", name, inc)
		}
	}
}
