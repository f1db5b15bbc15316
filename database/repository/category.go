// File: database/repository/category.go
package repository

import (
	"context"

	"artisanhub/database"
	"artisanhub/models"
)

// CategoryRepository serves the static trade-category reference data.
type CategoryRepository interface {
	// GetAll lists all categories, regenerating the built-in set when the
	// collection is absent from storage.
	GetAll(ctx context.Context) ([]models.CategoryInfo, error)
}

// KVCategoryRepo stores the category reference set as one blob.
type KVCategoryRepo struct {
	coll *collection[models.CategoryInfo]
}

// NewKVCategoryRepo returns a category repository over the given blob store.
func NewKVCategoryRepo(store database.BlobStore) *KVCategoryRepo {
	return &KVCategoryRepo{
		coll: newCollection(store, KeyCategories,
			func(c models.CategoryInfo) string { return c.ID },
			nil),
	}
}

func (r *KVCategoryRepo) GetAll(ctx context.Context) ([]models.CategoryInfo, error) {
	categories, err := r.coll.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		return categories, nil
	}
	categories = models.DefaultCategories()
	if err := r.coll.Replace(ctx, categories); err != nil {
		return nil, err
	}
	return categories, nil
}
