package reviewRepo

import (
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ReviewRepository defines methods for review data access. Reviews are the
// only hard-deleted documents in the system.
type ReviewRepository interface {
	GetByID(id string) (*models.Review, error)
	List(filter bson.M, skip, limit int64) ([]models.Review, int64, error)
	Create(review *models.Review) error
	Delete(id string) error
	// ExistsForServiceAndUser backs the one-review-per-(service,user)
	// pre-save check; the unique index is the backstop.
	ExistsForServiceAndUser(serviceID, userID string) (bool, error)
	// RatingsByService returns every rating value for a service.
	RatingsByService(serviceID string) ([]int, error)
	// RatingsByProvider returns every rating value for a provider.
	RatingsByProvider(providerID string) ([]int, error)
	EnsureIndexes() error
}
