package handlers

import (
	"net/http"
	"strconv"

	"servana/services/analytics"
	"servana/utils"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler exposes the admin reporting endpoints.
type AnalyticsHandler struct {
	Analytics analytics.AnalyticsService
}

// DashboardHandler handles GET /admin/analytics/dashboard.
func (h *AnalyticsHandler) DashboardHandler(c *gin.Context) {
	summary, err := h.Analytics.Dashboard(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, summary)
}

// RevenueHandler handles GET /admin/analytics/revenue?months=N.
func (h *AnalyticsHandler) RevenueHandler(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "12"))
	rows, err := h.Analytics.RevenueByMonth(c.Request.Context(), months)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, rows)
}

// BookingsByStatusHandler handles GET /admin/analytics/bookings.
func (h *AnalyticsHandler) BookingsByStatusHandler(c *gin.Context) {
	rows, err := h.Analytics.BookingsByStatus(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, rows)
}

// TopProvidersHandler handles GET /admin/analytics/top-providers?limit=N.
func (h *AnalyticsHandler) TopProvidersHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	rows, err := h.Analytics.TopProviders(c.Request.Context(), limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, rows)
}
