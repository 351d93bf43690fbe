package handlers

import (
	"net/http"

	"servana/middleware"
	"servana/models"
	"servana/services/catalog"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// ServiceHandler exposes the service catalog endpoints.
type ServiceHandler struct {
	Catalog catalog.CatalogService
}

// CreateServiceHandler handles POST /services (provider only).
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	var req catalog.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid service payload", bindingErrors(err)))
		return
	}
	svc, err := h.Catalog.CreateService(p.Provider.ID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusCreated, svc)
}

// GetServiceHandler handles GET /services/:id.
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Catalog.GetServiceByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, svc)
}

// ListServicesHandler handles GET /services. Public browsing only sees
// active services; category and provider filters are optional.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	params := utils.ParsePageParams(c)
	filter := bson.M{"status": "active"}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	if providerID := c.Query("providerId"); providerID != "" {
		filter["providerId"] = providerID
	}
	services, total, err := h.Catalog.ListServices(filter, params.Skip(), int64(params.Limit))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondList(c, services, len(services), total, params)
}

// UpdateServiceHandler handles PUT /services/:id.
func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	var req catalog.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid service payload", bindingErrors(err)))
		return
	}
	svc, err := h.Catalog.UpdateService(actorProviderID(p), c.Param("id"), req, p.Kind == models.KindAdmin)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /services/:id, a soft delete.
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if err := h.Catalog.DeactivateService(actorProviderID(p), c.Param("id"), p.Kind == models.KindAdmin); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "service deactivated")
}

func actorProviderID(p *middleware.Principal) string {
	if p.Kind == models.KindProvider {
		return p.Provider.ID
	}
	return ""
}
