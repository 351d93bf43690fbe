package handlers

import (
	"net/http"

	"servana/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler exposes the liveness endpoint.
type HealthHandler struct {
	MongoClient *mongo.Client
}

// HealthCheckHandler handles GET /health.
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	status := utils.CheckHealth(c.Request.Context(), h.MongoClient)
	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
