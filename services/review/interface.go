package review

import (
	"context"

	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CreateReviewRequest is the payload for creating a review.
type CreateReviewRequest struct {
	ServiceID string   `json:"serviceId" binding:"required"`
	BookingID string   `json:"bookingId"`
	Rating    int      `json:"rating" binding:"required,min=1,max=5"`
	Comment   string   `json:"comment"`
	Images    []string `json:"images"`
}

// ReviewService manages reviews and the rating aggregates they drive.
type ReviewService interface {
	CreateReview(ctx context.Context, userID string, req CreateReviewRequest) (*models.Review, error)
	ListReviews(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Review, int64, error)
	// DeleteReview hard-deletes a review (admin moderation) and recomputes
	// the affected aggregates.
	DeleteReview(ctx context.Context, id string) error
}
