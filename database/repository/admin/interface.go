package adminRepo

import (
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AdminRepository defines methods for admin data access.
type AdminRepository interface {
	GetByID(id string) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
	List(filter bson.M, skip, limit int64) ([]models.Admin, int64, error)
	Create(admin *models.Admin) error
	Update(admin *models.Admin) error
	// UpdateSet applies a partial $set update without full revalidation,
	// used for lockout counters and last-active touches.
	UpdateSet(id string, updateDoc bson.M) error
	EnsureIndexes() error
}
