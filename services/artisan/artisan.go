// File: services/artisan/artisan.go
package artisan

import (
	"context"

	"go.uber.org/zap"

	"artisanhub/models"
	"artisanhub/utils"
)

// Defaults for a freshly created profile.
const (
	defaultCategory   = models.CategoryPlumbing
	defaultHourlyRate = 25
	defaultImageURL   = "/placeholder.svg"
)

func (s *DefaultArtisanService) GetAll(ctx context.Context) ([]models.Artisan, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultArtisanService) GetByID(ctx context.Context, id string) (*models.Artisan, error) {
	return s.Repo.GetByID(ctx, id)
}

// EnsureProfile loads the profile owned by an artisan-role user, creating
// and persisting a default one the first time the owner shows up.
func (s *DefaultArtisanService) EnsureProfile(ctx context.Context, owner models.User) (*models.Artisan, error) {
	if owner.Role != models.RoleArtisan {
		return nil, utils.NewValidation("user %s is not an artisan", owner.ID)
	}

	existing, err := s.Repo.GetByID(ctx, owner.ID)
	if err == nil {
		return existing, nil
	}
	if !utils.HasCode(err, utils.CodeNotFound) {
		return nil, err
	}

	profile := models.Artisan{
		ID:           owner.ID,
		Name:         owner.Name,
		Category:     defaultCategory,
		Skills:       []string{},
		HourlyRate:   defaultHourlyRate,
		Phone:        owner.Phone,
		Email:        owner.Email,
		Availability: map[string][]string{},
		Rating:       0,
		ImageURL:     defaultImageURL,
		Reviews:      []models.Review{},
	}
	if err := s.Repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("artisan profile created", zap.String("artisanID", profile.ID))
	return &profile, nil
}

// UpdateProfile overwrites the editable fields of an existing profile.
// The embedded review list and the derived rating are preserved as they are.
func (s *DefaultArtisanService) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*models.Artisan, error) {
	return s.Repo.UpdateByID(ctx, id, func(a *models.Artisan) error {
		a.Name = update.Name
		a.Category = update.Category
		a.Description = update.Description
		a.Skills = update.Skills
		a.HourlyRate = update.HourlyRate
		a.City = update.City
		a.Address = update.Address
		a.Phone = update.Phone
		a.Email = update.Email
		a.Availability = update.Availability
		if update.ImageURL != "" {
			a.ImageURL = update.ImageURL
		}
		return nil
	})
}

func (s *DefaultArtisanService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
