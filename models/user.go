package models

import "time"

// UserStats carries denormalized booking counters for a customer. Updated by
// best-effort $inc operations, never recomputed from booking history.
type UserStats struct {
	TotalBookings     int     `bson:"totalBookings" json:"totalBookings"`
	CompletedBookings int     `bson:"completedBookings" json:"completedBookings"`
	CancelledBookings int     `bson:"cancelledBookings" json:"cancelledBookings"`
	TotalSpent        float64 `bson:"totalSpent" json:"totalSpent"`
}

// User represents a platform customer.
type User struct {
	ID           string        `bson:"id" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PhoneNumber  string        `bson:"phoneNumber" json:"phoneNumber"`
	Password     string        `bson:"-" json:"password,omitempty"`
	PasswordHash string        `bson:"passwordHash" json:"-"`
	Status       AccountStatus `bson:"status" json:"status"`
	ProfileImage string        `bson:"profileImage" json:"profileImage,omitempty"`
	Address      string        `bson:"address" json:"address,omitempty"`
	Stats        UserStats     `bson:"stats" json:"stats"`
	LastActiveAt time.Time     `bson:"lastActiveAt" json:"lastActiveAt,omitzero"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// IsActive reports whether the user may act as a principal.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
