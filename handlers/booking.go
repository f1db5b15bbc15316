// File: handlers/booking.go
package handlers

import (
	"net/http"

	"artisanhub/models"
	"artisanhub/services/booking"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves booking creation, listing and status transitions.
type BookingHandler struct {
	Service booking.BookingService
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := actingUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	var input booking.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	record, err := h.Service.Create(c.Request.Context(), actor, input)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// Transition handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) Transition(c *gin.Context) {
	actor, ok := actingUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	var req struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	record, err := h.Service.Transition(c.Request.Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListByArtisan handles GET /api/bookings/artisan/:id.
func (h *BookingHandler) ListByArtisan(c *gin.Context) {
	actor, ok := actingUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}
	id := c.Param("id")
	if actor.ID != id {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "an artisan may only list their own bookings")
		return
	}
	bookings, err := h.Service.ListByArtisan(c.Request.Context(), id)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListByUser handles GET /api/bookings/user/:id.
func (h *BookingHandler) ListByUser(c *gin.Context) {
	actor, ok := actingUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}
	id := c.Param("id")
	if actor.ID != id {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "a user may only list their own bookings")
		return
	}
	bookings, err := h.Service.ListByUser(c.Request.Context(), id)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
