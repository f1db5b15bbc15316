// File: services/user/interface.go
package user

import (
	"context"

	"artisanhub/database/repository"
	"artisanhub/models"
)

// AuthResponse carries the authenticated user and the session token the HTTP
// layer hands back to the caller.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// UserService manages accounts and the current-user session pointer.
type UserService interface {
	// Register creates an account, persists it and makes it the current
	// session. Fails with a conflict error when the email is taken.
	Register(ctx context.Context, name, email, phone string, role models.UserRole) (*AuthResponse, error)
	// Login looks the account up by email and makes it the current session.
	// The password is accepted and ignored: this mirrors the mock
	// authentication of the system this store backs, where no credential
	// is ever verified. Do not mistake it for real authentication.
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	// Logout clears the session pointer. Idempotent.
	Logout(ctx context.Context) error
	// CurrentUser reads the session pointer, nil when nobody is logged in.
	CurrentUser(ctx context.Context) (*models.User, error)
	// GetUser retrieves one account by id.
	GetUser(ctx context.Context, id string) (*models.User, error)
	// RebuildUserCaches recomputes every user's advisory bookings and
	// reviewsGiven lists from the authoritative collections.
	RebuildUserCaches(ctx context.Context) error
}

// DefaultUserService is the standard implementation over the record store.
type DefaultUserService struct {
	Users    repository.UserRepository
	Session  repository.SessionRepository
	Bookings repository.BookingRepository
	Artisans repository.ArtisanRepository
}
