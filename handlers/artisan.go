// File: handlers/artisan.go
package handlers

import (
	"net/http"

	"artisanhub/services/artisan"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
)

// ArtisanHandler serves the artisan directory and the review ledger.
type ArtisanHandler struct {
	Service artisan.ArtisanService
}

// List handles GET /api/artisans.
func (h *ArtisanHandler) List(c *gin.Context) {
	artisans, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, artisans)
}

// Get handles GET /api/artisans/:id.
func (h *ArtisanHandler) Get(c *gin.Context) {
	record, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// EnsureProfile handles POST /api/artisans/profile: loads the acting
// artisan's profile, creating a default one on first access.
func (h *ArtisanHandler) EnsureProfile(c *gin.Context) {
	actor, ok := actingUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}
	profile, err := h.Service.EnsureProfile(c.Request.Context(), actor)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/artisans/:id.
func (h *ArtisanHandler) UpdateProfile(c *gin.Context) {
	actor, ok := actingUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}
	id := c.Param("id")
	if actor.ID != id {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "an artisan may only edit their own profile")
		return
	}

	var update artisan.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	record, err := h.Service.UpdateProfile(c.Request.Context(), id, update)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// AddReview handles POST /api/artisans/:id/reviews.
func (h *ArtisanHandler) AddReview(c *gin.Context) {
	actor, ok := actingUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	var input artisan.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	record, err := h.Service.AddReview(c.Request.Context(), c.Param("id"), actor, input)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}
