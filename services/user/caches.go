// File: services/user/caches.go
package user

import (
	"context"

	"go.uber.org/zap"

	"artisanhub/models"
	"artisanhub/utils"
)

// RebuildUserCaches recomputes the advisory bookings and reviewsGiven lists
// on every user from the authoritative collections. The cached lists drift
// (they are written at creation time only), so they are never trusted; this
// rebuild keeps them useful for display.
func (s *DefaultUserService) RebuildUserCaches(ctx context.Context) error {
	users, err := s.Users.GetAll(ctx)
	if err != nil {
		return err
	}
	bookings, err := s.Bookings.GetAll(ctx)
	if err != nil {
		return err
	}
	artisans, err := s.Artisans.GetAll(ctx)
	if err != nil {
		return err
	}

	bookingsByUser := make(map[string][]string)
	for _, b := range bookings {
		bookingsByUser[b.UserID] = append(bookingsByUser[b.UserID], b.ID)
	}
	reviewsByUser := make(map[string][]string)
	for _, a := range artisans {
		for _, r := range a.Reviews {
			reviewsByUser[r.UserID] = append(reviewsByUser[r.UserID], r.ID)
		}
	}

	for _, u := range users {
		bookingIDs := bookingsByUser[u.ID]
		reviewIDs := reviewsByUser[u.ID]
		if bookingIDs == nil {
			bookingIDs = []string{}
		}
		if reviewIDs == nil {
			reviewIDs = []string{}
		}
		_, err := s.Users.UpdateByID(ctx, u.ID, func(rec *models.User) error {
			rec.Bookings = bookingIDs
			rec.ReviewsGiven = reviewIDs
			return nil
		})
		if err != nil {
			return err
		}
	}
	utils.GetLogger().Debug("user caches rebuilt", zap.Int("users", len(users)))
	return nil
}
