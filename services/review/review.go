package review

import (
	"context"

	providerRepo "servana/database/repository/provider"
	reviewRepo "servana/database/repository/review"
	serviceRepo "servana/database/repository/service"
	"servana/models"
	"servana/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultReviewService is the production implementation of ReviewService.
type DefaultReviewService struct {
	Repo      reviewRepo.ReviewRepository
	Services  serviceRepo.ServiceRepository
	Providers providerRepo.ProviderRepository
}

// CreateReview inserts a review after the one-per-(service,user) pre-save
// check, then recomputes the service's and provider's rating aggregates
// from the complete review set.
func (s *DefaultReviewService) CreateReview(ctx context.Context, userID string, req CreateReviewRequest) (*models.Review, error) {
	svc, err := s.Services.GetByID(req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, utils.NotFoundError("service")
	}

	exists, err := s.Repo.ExistsForServiceAndUser(req.ServiceID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.ConflictError("you have already reviewed this service", map[string]string{
			"serviceId": "a review for this service by this user already exists",
		})
	}

	rev := &models.Review{
		ID:         uuid.New().String(),
		UserID:     userID,
		ServiceID:  svc.ID,
		ProviderID: svc.ProviderID,
		BookingID:  req.BookingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Images:     req.Images,
	}
	if err := s.Repo.Create(rev); err != nil {
		return nil, err
	}

	s.recomputeAggregates(svc.ID, svc.ProviderID)
	return rev, nil
}

// ListReviews returns a review page.
func (s *DefaultReviewService) ListReviews(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Review, int64, error) {
	return s.Repo.List(filter, skip, limit)
}

// DeleteReview hard-deletes a review and recomputes the affected aggregates.
func (s *DefaultReviewService) DeleteReview(ctx context.Context, id string) error {
	rev, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if rev == nil {
		return utils.NotFoundError("review")
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.recomputeAggregates(rev.ServiceID, rev.ProviderID)
	return nil
}

// recomputeAggregates rebuilds the service and provider rating summaries
// from scratch. Rating math does not compose under increments, so the full
// review set is read back on every save.
func (s *DefaultReviewService) recomputeAggregates(serviceID, providerID string) {
	logger := utils.GetLogger()

	serviceRatings, err := s.Repo.RatingsByService(serviceID)
	if err != nil {
		logger.Error("failed to load service ratings", zap.String("serviceId", serviceID), zap.Error(err))
	} else if err := s.Services.SetRating(serviceID, models.ComputeRatingSummary(serviceRatings)); err != nil {
		logger.Error("failed to store service rating", zap.String("serviceId", serviceID), zap.Error(err))
	}

	providerRatings, err := s.Repo.RatingsByProvider(providerID)
	if err != nil {
		logger.Error("failed to load provider ratings", zap.String("providerId", providerID), zap.Error(err))
	} else if err := s.Providers.SetRating(providerID, models.ComputeRatingSummary(providerRatings)); err != nil {
		logger.Error("failed to store provider rating", zap.String("providerId", providerID), zap.Error(err))
	}
}
