// File: handlers/bundle.go
package handlers

import (
	"artisanhub/database/repository"
	"artisanhub/middleware"
	"artisanhub/models"
	"artisanhub/services/artisan"
	"artisanhub/services/booking"
	"artisanhub/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers and the repositories the
// middleware needs.
type HandlerBundle struct {
	UserRepo repository.UserRepository

	Auth       *AuthHandler
	Artisans   *ArtisanHandler
	Bookings   *BookingHandler
	Categories *CategoryHandler
	Admin      *AdminHandler
}

// NewHandlerBundle wires every handler over the given services.
func NewHandlerBundle(repos *repository.Repositories, users user.UserService, artisans artisan.ArtisanService, bookings booking.BookingService) *HandlerBundle {
	return &HandlerBundle{
		UserRepo:   repos.Users,
		Auth:       &AuthHandler{Service: users},
		Artisans:   &ArtisanHandler{Service: artisans},
		Bookings:   &BookingHandler{Service: bookings},
		Categories: &CategoryHandler{Repo: repos.Categories},
		Admin:      &AdminHandler{Users: users},
	}
}

// actingUser pulls the authenticated user the auth middleware stored on the
// request context.
func actingUser(c *gin.Context) (models.User, bool) {
	value, ok := c.Get(middleware.ActingUserKey)
	if !ok {
		return models.User{}, false
	}
	account, ok := value.(models.User)
	return account, ok
}
