// File: handlers/admin.go
package handlers

import (
	"net/http"

	"artisanhub/services/user"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves maintenance endpoints.
type AdminHandler struct {
	Users user.UserService
}

// RebuildCaches handles POST /api/admin/rebuild-caches: recomputes every
// user's advisory bookings and reviewsGiven lists from the authoritative
// collections.
func (h *AdminHandler) RebuildCaches(c *gin.Context) {
	if err := h.Users.RebuildUserCaches(c.Request.Context()); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
