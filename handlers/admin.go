package handlers

import (
	"net/http"

	"servana/middleware"
	"servana/models"
	"servana/services/admin"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// AdminHandler exposes admin account management endpoints.
type AdminHandler struct {
	AdminService admin.AdminService
}

// LoginAdminHandler handles POST /admin/login.
func (h *AdminHandler) LoginAdminHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid login payload", bindingErrors(err)))
		return
	}
	resp, err := h.AdminService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, resp)
}

// GetAdminProfileHandler handles GET /admin/me.
func (h *AdminHandler) GetAdminProfileHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	utils.RespondOK(c, http.StatusOK, p.Admin)
}

// CreateAdminHandler handles POST /admin/admins. Hierarchy checks live in
// the service layer.
func (h *AdminHandler) CreateAdminHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	var req admin.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid admin payload", bindingErrors(err)))
		return
	}
	adm, err := h.AdminService.CreateAdmin(p.Admin, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusCreated, adm)
}

// ListAdminsHandler handles GET /admin/admins.
func (h *AdminHandler) ListAdminsHandler(c *gin.Context) {
	params := utils.ParsePageParams(c)
	filter := bson.M{}
	if role := c.Query("role"); role != "" {
		filter["role"] = role
	}
	admins, total, err := h.AdminService.ListAdmins(filter, params.Skip(), int64(params.Limit))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondList(c, admins, len(admins), total, params)
}

// UpdateAdminRoleHandler handles PUT /admin/admins/:id/role.
func (h *AdminHandler) UpdateAdminRoleHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	var req struct {
		Role models.AdminRole `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid role payload", bindingErrors(err)))
		return
	}
	adm, err := h.AdminService.UpdateRole(p.Admin, c.Param("id"), req.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, adm)
}

// DeactivateAdminHandler handles DELETE /admin/admins/:id.
func (h *AdminHandler) DeactivateAdminHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if err := h.AdminService.Deactivate(p.Admin, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "admin deactivated")
}
