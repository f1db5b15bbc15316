// File: database/repository/artisan.go
package repository

import (
	"context"

	"artisanhub/database"
	"artisanhub/models"
	"artisanhub/utils"
)

// ArtisanRepository defines methods for artisan data access.
type ArtisanRepository interface {
	// GetByID retrieves an artisan by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Artisan, error)
	// GetAll retrieves all artisans in insertion order.
	GetAll(ctx context.Context) ([]models.Artisan, error)
	// Upsert inserts a new artisan or replaces an existing one in place.
	Upsert(ctx context.Context, artisan models.Artisan) error
	// UpdateByID applies mutate to one artisan under the collection lock.
	UpdateByID(ctx context.Context, id string, mutate func(*models.Artisan) error) (*models.Artisan, error)
	// Delete removes an artisan record by its ID.
	Delete(ctx context.Context, id string) error
}

// KVArtisanRepo stores the artisan collection as one ordered blob.
type KVArtisanRepo struct {
	coll *collection[models.Artisan]
}

// NewKVArtisanRepo returns an artisan repository over the given blob store.
func NewKVArtisanRepo(store database.BlobStore) *KVArtisanRepo {
	return &KVArtisanRepo{
		coll: newCollection(store, KeyArtisans,
			func(a models.Artisan) string { return a.ID },
			validateArtisan),
	}
}

func validateArtisan(a models.Artisan) error {
	if a.Name == "" {
		return utils.NewValidation("artisan name is required")
	}
	if !models.ValidCategory(a.Category) {
		return utils.NewValidation("unknown artisan category %q", a.Category)
	}
	if a.HourlyRate < 0 {
		return utils.NewValidation("hourly rate must be non-negative")
	}
	return nil
}

func (r *KVArtisanRepo) GetByID(ctx context.Context, id string) (*models.Artisan, error) {
	return r.coll.GetByID(ctx, id)
}

func (r *KVArtisanRepo) GetAll(ctx context.Context) ([]models.Artisan, error) {
	return r.coll.List(ctx)
}

func (r *KVArtisanRepo) Upsert(ctx context.Context, artisan models.Artisan) error {
	return r.coll.Upsert(ctx, artisan)
}

func (r *KVArtisanRepo) UpdateByID(ctx context.Context, id string, mutate func(*models.Artisan) error) (*models.Artisan, error) {
	return r.coll.UpdateByID(ctx, id, mutate)
}

func (r *KVArtisanRepo) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}
