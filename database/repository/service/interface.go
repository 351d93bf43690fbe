package serviceRepo

import (
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ServiceRepository defines methods for service data access.
type ServiceRepository interface {
	GetByID(id string) (*models.Service, error)
	List(filter bson.M, skip, limit int64) ([]models.Service, int64, error)
	Create(service *models.Service) error
	Update(service *models.Service) error
	UpdateSet(id string, updateDoc bson.M) error
	IncrementStats(id string, inc bson.M) error
	// SetRating replaces the denormalized rating aggregate.
	SetRating(id string, rating models.RatingSummary) error
	EnsureIndexes() error
}
