package handlers

import (
	"net/http"

	"servana/middleware"
	"servana/models"
	"servana/services/booking"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
}

// bookingActor converts the resolved principal into the actor recorded in
// booking status history.
func bookingActor(p *middleware.Principal) booking.Actor {
	switch p.Kind {
	case models.KindUser:
		return booking.Actor{Kind: models.UpdatedByUser, ID: p.User.ID}
	case models.KindProvider:
		return booking.Actor{Kind: models.UpdatedByProvider, ID: p.Provider.ID}
	case models.KindAdmin:
		return booking.Actor{Kind: models.UpdatedByAdmin, ID: p.Admin.ID}
	}
	return booking.Actor{Kind: models.UpdatedBySystem}
}

// CreateBookingHandler handles POST /bookings (user only).
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid booking payload", bindingErrors(err)))
		return
	}
	b, err := h.BookingService.CreateBooking(c.Request.Context(), p.User.ID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusCreated, b)
}

// GetBookingHandler handles GET /bookings/id/:id. Ownership is enforced in
// the service layer.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	b, err := h.BookingService.GetBooking(c.Request.Context(), c.Param("id"), bookingActor(p))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, b)
}

// GetByCodeHandler handles GET /bookings/code/:code, the lookup by the
// human-readable booking code shown in confirmation emails.
func (h *BookingHandler) GetByCodeHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	b, err := h.BookingService.GetBookingByCode(c.Request.Context(), c.Param("code"), bookingActor(p))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, b)
}

// TimelineHandler handles GET /bookings/id/:id/timeline.
func (h *BookingHandler) TimelineHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	entries, err := h.BookingService.Timeline(c.Request.Context(), c.Param("id"), bookingActor(p))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, entries)
}

// ListBookingsHandler handles GET /bookings, scoped to the caller: users see
// their own bookings, providers their incoming ones, admins everything.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	params := utils.ParsePageParams(c)

	filter := bson.M{}
	switch p.Kind {
	case models.KindUser:
		filter["userId"] = p.User.ID
	case models.KindProvider:
		filter["providerId"] = p.Provider.ID
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	bookings, total, err := h.BookingService.ListBookings(c.Request.Context(), filter, params.Skip(), int64(params.Limit))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondList(c, bookings, len(bookings), total, params)
}

// UpdateStatusHandler handles PUT /bookings/id/:id/status (provider or admin).
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	var req booking.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid status payload", bindingErrors(err)))
		return
	}
	b, err := h.BookingService.UpdateStatus(c.Request.Context(), c.Param("id"), req, bookingActor(p))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, b)
}

// CancelBookingHandler handles POST /bookings/id/:id/cancel. The cancellation
// charge tier is computed from the time remaining before the slot.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	var req struct {
		Reason string `json:"reason"`
	}
	// The body is optional for cancellations.
	_ = c.ShouldBindJSON(&req)

	b, err := h.BookingService.CancelBooking(c.Request.Context(), c.Param("id"), bookingActor(p), req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, b)
}
