package providerRepo

import (
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	GetByID(id string) (*models.Provider, error)
	GetByEmail(email string) (*models.Provider, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.Provider, error)
	List(filter bson.M, skip, limit int64) ([]models.Provider, int64, error)
	Create(provider *models.Provider) error
	Update(provider *models.Provider) error
	// UpdateSet applies a partial $set update without full revalidation.
	UpdateSet(id string, updateDoc bson.M) error
	// IncrementStats applies a $inc update to the denormalized counters.
	IncrementStats(id string, inc bson.M) error
	// SetRating replaces the denormalized rating aggregate.
	SetRating(id string, rating models.RatingSummary) error
	EnsureIndexes() error
}
