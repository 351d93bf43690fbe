package handlers

import (
	"net/http"

	"servana/middleware"
	"servana/services/review"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// ReviewHandler exposes review endpoints.
type ReviewHandler struct {
	ReviewService review.ReviewService
}

// CreateReviewHandler handles POST /reviews (user only). One review per
// user per service; duplicates conflict.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid review payload", bindingErrors(err)))
		return
	}
	r, err := h.ReviewService.CreateReview(c.Request.Context(), p.User.ID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusCreated, r)
}

// ListReviewsHandler handles GET /reviews with service and provider filters.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	params := utils.ParsePageParams(c)
	filter := bson.M{}
	if serviceID := c.Query("serviceId"); serviceID != "" {
		filter["serviceId"] = serviceID
	}
	if providerID := c.Query("providerId"); providerID != "" {
		filter["providerId"] = providerID
	}
	reviews, total, err := h.ReviewService.ListReviews(c.Request.Context(), filter, params.Skip(), int64(params.Limit))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondList(c, reviews, len(reviews), total, params)
}

// DeleteReviewHandler handles DELETE /admin/reviews/:id, the moderation
// path. Aggregates are recomputed from the remaining reviews.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	if err := h.ReviewService.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "review deleted")
}
