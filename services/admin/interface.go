package admin

import (
	"context"

	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CreateAdminRequest is the payload for creating an admin account.
type CreateAdminRequest struct {
	Name     string           `json:"name" binding:"required"`
	Email    string           `json:"email" binding:"required,email"`
	Password string           `json:"password" binding:"required,min=8"`
	Role     models.AdminRole `json:"role" binding:"required"`
}

// AuthResponse is returned on successful admin login.
type AuthResponse struct {
	ID    string           `json:"id"`
	Token string           `json:"token"`
	Name  string           `json:"name"`
	Email string           `json:"email"`
	Role  models.AdminRole `json:"role"`
}

// AdminService defines admin account operations. Admin-on-admin actions are
// gated by the role hierarchy.
type AdminService interface {
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	CreateAdmin(actor *models.Admin, req CreateAdminRequest) (*models.Admin, error)
	GetAdminByID(id string) (*models.Admin, error)
	// UpdateRole reassigns the role and rewrites the permission grid in full.
	UpdateRole(actor *models.Admin, targetID string, role models.AdminRole) (*models.Admin, error)
	// Deactivate soft-deletes an admin account.
	Deactivate(actor *models.Admin, targetID string) error
	ListAdmins(filter bson.M, skip, limit int64) ([]models.Admin, int64, error)
}
