package userRepo

import (
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// List retrieves users with pagination, returning the page and the total count.
	List(filter bson.M, skip, limit int64) ([]models.User, int64, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateSet applies a partial $set update without full revalidation.
	UpdateSet(id string, updateDoc bson.M) error
	// IncrementStats applies a $inc update to the denormalized counters.
	IncrementStats(id string, inc bson.M) error
	// EnsureIndexes creates the unique email/phone indexes.
	EnsureIndexes() error
}
