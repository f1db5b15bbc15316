// File: services/artisan/interface.go
package artisan

import (
	"context"

	"artisanhub/database/repository"
	"artisanhub/models"
)

// ProfileUpdate carries the editable fields of an artisan profile. The
// review list and the derived rating are never edited through a profile
// update.
type ProfileUpdate struct {
	Name         string              `json:"name"`
	Category     models.Category     `json:"category"`
	Description  string              `json:"description"`
	Skills       []string            `json:"skills"`
	HourlyRate   float64             `json:"hourlyRate"`
	City         string              `json:"city"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	Availability map[string][]string `json:"availability"`
	ImageURL     string              `json:"imageUrl"`
}

// ReviewInput is what a client submits when reviewing an artisan.
type ReviewInput struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// ArtisanService manages artisan profiles and their review ledger.
type ArtisanService interface {
	// GetAll lists every artisan profile in insertion order.
	GetAll(ctx context.Context) ([]models.Artisan, error)
	// GetByID retrieves one profile.
	GetByID(ctx context.Context, id string) (*models.Artisan, error)
	// EnsureProfile returns the artisan profile belonging to an
	// artisan-role user, creating a default one on first access. The
	// profile shares the user's id.
	EnsureProfile(ctx context.Context, owner models.User) (*models.Artisan, error)
	// UpdateProfile applies the editable fields to an existing profile,
	// leaving reviews and the derived rating untouched.
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*models.Artisan, error)
	// AddReview appends a review to an artisan and recomputes the
	// aggregate rating in the same write. Fails when the artisan does not
	// exist; a review is never attached to a silently created profile.
	AddReview(ctx context.Context, artisanID string, reviewer models.User, input ReviewInput) (*models.Artisan, error)
	// Delete removes a profile. Store primitive only; nothing in the
	// normal flow depends on it and referencing bookings are left behind.
	Delete(ctx context.Context, id string) error
}

// DefaultArtisanService is the standard implementation over the record store.
type DefaultArtisanService struct {
	Repo repository.ArtisanRepository
}
