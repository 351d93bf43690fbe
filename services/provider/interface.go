package provider

import (
	"context"

	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// RegisterProviderRequest is the provider registration payload. New
// providers start as status=pending with verification pending.
type RegisterProviderRequest struct {
	BusinessName string   `json:"businessName" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	PhoneNumber  string   `json:"phoneNumber" binding:"required"`
	Password     string   `json:"password" binding:"required,min=8"`
	Description  string   `json:"description"`
	Address      string   `json:"address"`
	Documents    []string `json:"documents"`
}

// UpdateProviderRequest carries the mutable profile fields.
type UpdateProviderRequest struct {
	BusinessName string `json:"businessName"`
	PhoneNumber  string `json:"phoneNumber"`
	Description  string `json:"description"`
	Address      string `json:"address"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	ID           string                    `json:"id"`
	Token        string                    `json:"token,omitempty"`
	BusinessName string                    `json:"businessName"`
	Email        string                    `json:"email"`
	Verification models.VerificationStatus `json:"verificationStatus"`
}

// ProviderService defines provider account operations.
type ProviderService interface {
	Register(ctx context.Context, req RegisterProviderRequest) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetProviderByID(id string) (*models.Provider, error)
	UpdateProfile(id string, req UpdateProviderRequest) (*models.Provider, error)
	// Verify resolves the verification sub-state; approval also activates
	// the account so the provider can operate.
	Verify(adminID, providerID string, approve bool, notes string) (*models.Provider, error)
	Deactivate(id string) error
	ListProviders(filter bson.M, skip, limit int64) ([]models.Provider, int64, error)
}
