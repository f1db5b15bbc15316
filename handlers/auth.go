// File: handlers/auth.go
package handlers

import (
	"net/http"

	"artisanhub/models"
	"artisanhub/services/user"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and session endpoints.
type AuthHandler struct {
	Service user.UserService
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name  string          `json:"name"`
		Email string          `json:"email"`
		Phone string          `json:"phone"`
		Role  models.UserRole `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req.Name, req.Email, req.Phone, req.Role)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login. The password field is accepted for
// wire compatibility and ignored; see the user service.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	resp, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Service.Logout(c.Request.Context()); err != nil {
		utils.GetLogger().Error("logout failed", zap.Error(err))
		utils.JSONAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me handles GET /api/auth/me: the restored session, if any.
func (h *AuthHandler) Me(c *gin.Context) {
	current, err := h.Service.CurrentUser(c.Request.Context())
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	if current == nil {
		utils.JSONError(c, http.StatusUnauthorized, "no active session", "")
		return
	}
	c.JSON(http.StatusOK, current)
}
