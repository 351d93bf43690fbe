package user

import (
	"context"

	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// RegisterUserRequest is the registration payload.
type RegisterUserRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	Address     string `json:"address"`
}

// UpdateUserRequest carries the mutable profile fields.
type UpdateUserRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserService defines user account operations.
type UserService interface {
	Register(ctx context.Context, req RegisterUserRequest) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	UpdateProfile(id string, req UpdateUserRequest) (*models.User, error)
	ChangePassword(id, currentPassword, newPassword string) error
	// Deactivate soft-deletes by flipping status to inactive.
	Deactivate(id string) error
	ListUsers(filter bson.M, skip, limit int64) ([]models.User, int64, error)
}
