package models

import "time"

// ServiceStats carries denormalized booking counters for a service.
type ServiceStats struct {
	TotalBookings     int `bson:"totalBookings" json:"totalBookings"`
	CompletedBookings int `bson:"completedBookings" json:"completedBookings"`
	CancelledBookings int `bson:"cancelledBookings" json:"cancelledBookings"`
}

// Service is an offering owned by exactly one provider.
type Service struct {
	ID          string        `bson:"id" json:"id"`
	ProviderID  string        `bson:"providerId" json:"providerId"`
	Name        string        `bson:"name" json:"name"`
	Category    string        `bson:"category" json:"category"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice   float64       `bson:"basePrice" json:"basePrice"`
	Currency    string        `bson:"currency" json:"currency"`
	Duration    int           `bson:"durationMinutes" json:"durationMinutes"`
	Images      []string      `bson:"images,omitempty" json:"images,omitempty"`
	Available   bool          `bson:"available" json:"available"`
	Status      AccountStatus `bson:"status" json:"status"`
	Rating      RatingSummary `bson:"rating" json:"rating"`
	Stats       ServiceStats  `bson:"stats" json:"stats"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// Bookable reports whether a user may create a booking against the service.
func (s *Service) Bookable() bool {
	return s.Status == StatusActive && s.Available
}
