package catalog

import (
	"time"

	providerRepo "servana/database/repository/provider"
	serviceRepo "servana/database/repository/service"
	"servana/models"
	"servana/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// DefaultCatalogService is the production implementation of CatalogService.
type DefaultCatalogService struct {
	Repo      serviceRepo.ServiceRepository
	Providers providerRepo.ProviderRepository
}

// CreateService publishes a new service owned by the given provider. The
// provider must be active and verified.
func (s *DefaultCatalogService) CreateService(providerID string, req CreateServiceRequest) (*models.Service, error) {
	provider, err := s.Providers.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, utils.NotFoundError("provider")
	}
	if !provider.CanOperate() {
		return nil, utils.ForbiddenError("provider account is not verified")
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now()
	svc := &models.Service{
		ID:          uuid.New().String(),
		ProviderID:  providerID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Currency:    currency,
		Duration:    req.Duration,
		Images:      req.Images,
		Available:   true,
		Status:      models.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) GetServiceByID(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, utils.NotFoundError("service")
	}
	return svc, nil
}

// UpdateService applies a partial update after an ownership check.
func (s *DefaultCatalogService) UpdateService(actorProviderID, serviceID string, req UpdateServiceRequest, asAdmin bool) (*models.Service, error) {
	svc, err := s.GetServiceByID(serviceID)
	if err != nil {
		return nil, err
	}
	if !asAdmin && svc.ProviderID != actorProviderID {
		return nil, utils.ForbiddenError("you may not modify this service")
	}

	update := bson.M{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.BasePrice != nil {
		if *req.BasePrice <= 0 {
			return nil, utils.ValidationError("invalid price", map[string]string{
				"basePrice": "must be greater than zero",
			})
		}
		update["basePrice"] = *req.BasePrice
	}
	if req.Currency != nil {
		update["currency"] = *req.Currency
	}
	if req.Duration != nil {
		if *req.Duration <= 0 {
			return nil, utils.ValidationError("invalid duration", map[string]string{
				"durationMinutes": "must be greater than zero",
			})
		}
		update["durationMinutes"] = *req.Duration
	}
	if req.Images != nil {
		update["images"] = req.Images
	}
	if req.Available != nil {
		update["available"] = *req.Available
	}
	if len(update) == 0 {
		return svc, nil
	}
	update["updatedAt"] = time.Now()

	if err := s.Repo.UpdateSet(serviceID, update); err != nil {
		return nil, err
	}
	return s.GetServiceByID(serviceID)
}

// DeactivateService marks a service inactive. Existing bookings keep their
// denormalized snapshot so history stays intact.
func (s *DefaultCatalogService) DeactivateService(actorProviderID, serviceID string, asAdmin bool) error {
	svc, err := s.GetServiceByID(serviceID)
	if err != nil {
		return err
	}
	if !asAdmin && svc.ProviderID != actorProviderID {
		return utils.ForbiddenError("you may not deactivate this service")
	}
	return s.Repo.UpdateSet(serviceID, bson.M{
		"status":    models.StatusInactive,
		"available": false,
		"updatedAt": time.Now(),
	})
}

func (s *DefaultCatalogService) ListServices(filter bson.M, skip, limit int64) ([]models.Service, int64, error) {
	return s.Repo.List(filter, skip, limit)
}
