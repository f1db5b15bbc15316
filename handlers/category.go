// File: handlers/category.go
package handlers

import (
	"net/http"

	"artisanhub/database/repository"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the static trade-category reference data.
type CategoryHandler struct {
	Repo repository.CategoryRepository
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
