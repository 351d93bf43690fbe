package handlers

import (
	"net/http"

	"servana/middleware"
	"servana/services/user"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// UserHandler exposes user account endpoints.
type UserHandler struct {
	UserService user.UserService
}

// RegisterUserHandler handles POST /users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req user.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid registration payload", bindingErrors(err)))
		return
	}
	resp, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusCreated, resp)
}

// LoginUserHandler handles POST /users/login.
func (h *UserHandler) LoginUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid login payload", bindingErrors(err)))
		return
	}
	resp, err := h.UserService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, resp)
}

// GetProfileHandler handles GET /users/me.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	utils.RespondOK(c, http.StatusOK, p.User)
}

// UpdateProfileHandler handles PUT /users/me.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid profile payload", bindingErrors(err)))
		return
	}
	updated, err := h.UserService.UpdateProfile(p.User.ID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, updated)
}

// ChangePasswordHandler handles PUT /users/me/password.
func (h *UserHandler) ChangePasswordHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("invalid password payload", bindingErrors(err)))
		return
	}
	if err := h.UserService.ChangePassword(p.User.ID, req.CurrentPassword, req.NewPassword); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "password updated")
}

// DeactivateHandler handles DELETE /users/me.
func (h *UserHandler) DeactivateHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if err := h.UserService.Deactivate(p.User.ID); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "account deactivated")
}

// AdminGetUserHandler handles GET /admin/users/:id.
func (h *UserHandler) AdminGetUserHandler(c *gin.Context) {
	usr, err := h.UserService.GetUserByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, usr)
}

// AdminListUsersHandler handles GET /admin/users.
func (h *UserHandler) AdminListUsersHandler(c *gin.Context) {
	params := utils.ParsePageParams(c)
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	users, total, err := h.UserService.ListUsers(filter, params.Skip(), int64(params.Limit))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondList(c, users, len(users), total, params)
}

// AdminDeactivateUserHandler handles DELETE /admin/users/:id.
func (h *UserHandler) AdminDeactivateUserHandler(c *gin.Context) {
	if err := h.UserService.Deactivate(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "account deactivated")
}
