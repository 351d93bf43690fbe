package models

import "time"

// VerificationStatus is the provider verification sub-state, independent of
// the account status. A provider acts as a principal only when both
// status=active and verification.status=verified hold.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Verification tracks the provider onboarding review.
type Verification struct {
	Status     VerificationStatus `bson:"status" json:"status"`
	Documents  []string           `bson:"documents,omitempty" json:"documents,omitempty"`
	ReviewedBy string             `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time         `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// ProviderStats carries denormalized booking counters for a provider.
type ProviderStats struct {
	TotalBookings     int     `bson:"totalBookings" json:"totalBookings"`
	CompletedBookings int     `bson:"completedBookings" json:"completedBookings"`
	CancelledBookings int     `bson:"cancelledBookings" json:"cancelledBookings"`
	TotalEarnings     float64 `bson:"totalEarnings" json:"totalEarnings"`
}

// Provider represents an independent service provider.
type Provider struct {
	ID           string        `bson:"id" json:"id"`
	BusinessName string        `bson:"businessName" json:"businessName"`
	Email        string        `bson:"email" json:"email"`
	PhoneNumber  string        `bson:"phoneNumber" json:"phoneNumber"`
	Password     string        `bson:"-" json:"password,omitempty"`
	PasswordHash string        `bson:"passwordHash" json:"-"`
	Status       AccountStatus `bson:"status" json:"status"`
	Verification Verification  `bson:"verification" json:"verification"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	ProfileImage string        `bson:"profileImage" json:"profileImage,omitempty"`
	Address      string        `bson:"address" json:"address,omitempty"`
	Rating       RatingSummary `bson:"rating" json:"rating"`
	Stats        ProviderStats `bson:"stats" json:"stats"`
	LastActiveAt time.Time     `bson:"lastActiveAt" json:"lastActiveAt,omitzero"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// IsActive reports whether the provider account itself is active.
func (p *Provider) IsActive() bool {
	return p.Status == StatusActive
}

// CanOperate reports whether the provider may act as a provider principal:
// account active and verification approved.
func (p *Provider) CanOperate() bool {
	return p.Status == StatusActive && p.Verification.Status == VerificationVerified
}
