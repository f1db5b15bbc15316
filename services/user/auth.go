// File: services/user/auth.go
package user

import (
	"context"
	"time"

	"artisanhub/models"
	"artisanhub/utils"

	"go.uber.org/zap"
)

const sessionTokenTTL = 72 * time.Hour

// Register creates a new account and logs it in.
func (s *DefaultUserService) Register(ctx context.Context, name, email, phone string, role models.UserRole) (*AuthResponse, error) {
	if name == "" || email == "" {
		return nil, utils.NewValidation("name and email are required")
	}
	if !models.ValidRole(role) {
		return nil, utils.NewValidation("unknown role %q", role)
	}

	newUser := models.User{
		ID:           utils.NewID(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		Role:         role,
		Bookings:     []string{},
		ReviewsGiven: []string{},
	}
	// Email is the unique login key across all users. The repository checks
	// and appends under one lock, so concurrent registrations for the same
	// email cannot both land.
	if err := s.Users.CreateUnique(ctx, newUser); err != nil {
		return nil, err
	}
	if err := s.Session.SetCurrent(ctx, newUser); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(newUser.ID, newUser.Email, sessionTokenTTL)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("user registered",
		zap.String("userID", newUser.ID), zap.String("role", string(role)))
	return &AuthResponse{User: newUser, Token: token}, nil
}

// Login resolves an account by email and makes it the current session.
//
// No password is verified here. The store this replaces performed a bare
// email lookup, so "wrong password" is unreachable; the gap is kept visible
// rather than papered over with invented credential logic.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" {
		return nil, utils.NewValidation("email is required")
	}
	_ = password // accepted and ignored, see above

	account, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if utils.HasCode(err, utils.CodeNotFound) {
			return nil, utils.NewAuth("invalid email or password")
		}
		return nil, err
	}
	if err := s.Session.SetCurrent(ctx, *account); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(account.ID, account.Email, sessionTokenTTL)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("user logged in", zap.String("userID", account.ID))
	return &AuthResponse{User: *account, Token: token}, nil
}

// Logout clears the session pointer. Logging out twice is fine.
func (s *DefaultUserService) Logout(ctx context.Context) error {
	return s.Session.Clear(ctx)
}

// CurrentUser reads the persisted session pointer, restoring the session a
// previous process left behind.
func (s *DefaultUserService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.Session.Current(ctx)
}

// GetUser retrieves one account by id.
func (s *DefaultUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.Users.GetByID(ctx, id)
}
