// File: services/artisan/reviews.go
package artisan

import (
	"context"
	"time"

	"go.uber.org/zap"

	"artisanhub/models"
	"artisanhub/utils"
)

// AddReview appends a review at the tail of the artisan's review list and
// recomputes the aggregate rating, persisting both in one collection write.
// The aggregate is the full-precision arithmetic mean of all reviews; the
// first review therefore sets the rating to exactly its own value.
//
// An unknown artisan id is a not-found error. The review is never attached
// to a silently created record.
func (s *DefaultArtisanService) AddReview(ctx context.Context, artisanID string, reviewer models.User, input ReviewInput) (*models.Artisan, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, utils.NewValidation("rating must be between 1 and 5")
	}

	review := models.Review{
		ID:       utils.NewID(),
		UserID:   reviewer.ID,
		UserName: reviewer.Name, // snapshot, never resynced on rename
		Rating:   input.Rating,
		Comment:  input.Comment,
		Date:     time.Now().Format("2006-01-02"),
	}

	updated, err := s.Repo.UpdateByID(ctx, artisanID, func(a *models.Artisan) error {
		a.Reviews = append(a.Reviews, review)
		a.Rating = models.MeanRating(a.Reviews)
		return nil
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("review added",
		zap.String("artisanID", artisanID),
		zap.String("reviewID", review.ID),
		zap.Float64("rating", updated.Rating))
	return updated, nil
}
