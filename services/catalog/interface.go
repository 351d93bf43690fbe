package catalog

import (
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CreateServiceRequest is the payload for publishing a new service.
type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description"`
	BasePrice   float64  `json:"basePrice" binding:"required,gt=0"`
	Currency    string   `json:"currency"`
	Duration    int      `json:"durationMinutes" binding:"required,gt=0"`
	Images      []string `json:"images"`
}

// UpdateServiceRequest carries the mutable service fields. Pointer fields
// distinguish "absent" from zero values.
type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"basePrice"`
	Currency    *string  `json:"currency"`
	Duration    *int     `json:"durationMinutes"`
	Images      []string `json:"images"`
	Available   *bool    `json:"available"`
}

// CatalogService manages the provider-owned service catalog.
type CatalogService interface {
	CreateService(providerID string, req CreateServiceRequest) (*models.Service, error)
	GetServiceByID(id string) (*models.Service, error)
	// UpdateService mutates a service. Only the owning provider or an admin
	// actor may change it.
	UpdateService(actorProviderID, serviceID string, req UpdateServiceRequest, asAdmin bool) (*models.Service, error)
	// DeactivateService soft-deletes a service; past bookings keep their
	// snapshots, new bookings are refused.
	DeactivateService(actorProviderID, serviceID string, asAdmin bool) error
	ListServices(filter bson.M, skip, limit int64) ([]models.Service, int64, error)
}
