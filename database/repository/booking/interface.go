package bookingRepo

import (
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// StatusCount is one bucket of the bookings-by-status aggregation.
type StatusCount struct {
	Status string `bson:"_id" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}

// MonthlyRevenue is one bucket of the revenue-by-month aggregation over
// completed bookings.
type MonthlyRevenue struct {
	Month    string  `bson:"_id" json:"month"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
	Bookings int64   `bson:"bookings" json:"bookings"`
}

// ProviderRevenue is one bucket of the top-providers aggregation.
type ProviderRevenue struct {
	ProviderID string  `bson:"_id" json:"providerId"`
	Revenue    float64 `bson:"revenue" json:"revenue"`
	Completed  int64   `bson:"completed" json:"completed"`
}

// BookingRepository defines methods for booking data access. Bookings are
// never deleted.
type BookingRepository interface {
	GetByID(id string) (*models.Booking, error)
	GetByCode(code string) (*models.Booking, error)
	List(filter bson.M, skip, limit int64) ([]models.Booking, int64, error)
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	EnsureIndexes() error

	// Aggregations backing the analytics endpoints.
	CountByStatus() ([]StatusCount, error)
	RevenueByMonth(months int) ([]MonthlyRevenue, error)
	TopProviders(limit int64) ([]ProviderRevenue, error)
}
