package handlers

import (
	"net/http"

	"servana/middleware"
	"servana/services/provider"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// ProviderHandler exposes provider account endpoints.
type ProviderHandler struct {
	ProviderService provider.ProviderService
}

// RegisterProviderHandler handles POST /providers/register.
func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	var req provider.RegisterProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid registration payload", bindingErrors(err)))
		return
	}
	resp, err := h.ProviderService.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusCreated, resp)
}

// LoginProviderHandler handles POST /providers/login.
func (h *ProviderHandler) LoginProviderHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid login payload", bindingErrors(err)))
		return
	}
	resp, err := h.ProviderService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, resp)
}

// GetProviderProfileHandler handles GET /providers/me.
func (h *ProviderHandler) GetProviderProfileHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	utils.RespondOK(c, http.StatusOK, p.Provider)
}

// UpdateProviderProfileHandler handles PUT /providers/me.
func (h *ProviderHandler) UpdateProviderProfileHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	var req provider.UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid profile payload", bindingErrors(err)))
		return
	}
	updated, err := h.ProviderService.UpdateProfile(p.Provider.ID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, updated)
}

// GetProviderHandler handles GET /providers/id/:id, the public profile view.
func (h *ProviderHandler) GetProviderHandler(c *gin.Context) {
	prov, err := h.ProviderService.GetProviderByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, prov)
}

// ListProvidersHandler handles GET /providers, listing active verified
// providers for browsing.
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	params := utils.ParsePageParams(c)
	filter := bson.M{"status": "active", "verification.status": "verified"}
	providers, total, err := h.ProviderService.ListProviders(filter, params.Skip(), int64(params.Limit))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondList(c, providers, len(providers), total, params)
}

// AdminListProvidersHandler handles GET /admin/providers with optional
// status and verification filters.
func (h *ProviderHandler) AdminListProvidersHandler(c *gin.Context) {
	params := utils.ParsePageParams(c)
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if vs := c.Query("verificationStatus"); vs != "" {
		filter["verification.status"] = vs
	}
	providers, total, err := h.ProviderService.ListProviders(filter, params.Skip(), int64(params.Limit))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondList(c, providers, len(providers), total, params)
}

// VerifyProviderHandler handles POST /admin/providers/:id/verify.
func (h *ProviderHandler) VerifyProviderHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	var req struct {
		Approve bool   `json:"approve"`
		Notes   string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid verification payload", bindingErrors(err)))
		return
	}
	prov, err := h.ProviderService.Verify(p.Admin.ID, c.Param("id"), req.Approve, req.Notes)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, prov)
}

// AdminDeactivateProviderHandler handles DELETE /admin/providers/:id.
func (h *ProviderHandler) AdminDeactivateProviderHandler(c *gin.Context) {
	if err := h.ProviderService.Deactivate(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "account deactivated")
}
