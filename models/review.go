package models

import "time"

// Review is a customer rating of a service. At most one review exists per
// (service, user) pair; reviews are the only hard-deleted documents.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	ServiceID  string    `bson:"serviceId" json:"serviceId"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	BookingID  string    `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Images     []string  `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
