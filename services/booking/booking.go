// File: services/booking/booking.go
package booking

import (
	"context"

	"go.uber.org/zap"

	"artisanhub/models"
	"artisanhub/utils"
)

// Create records a new booking with status pending.
func (s *DefaultBookingService) Create(ctx context.Context, actor models.User, input CreateInput) (*models.Booking, error) {
	if actor.ID == "" {
		return nil, utils.NewAuth("a logged-in user is required to book")
	}
	if input.Date == "" || input.Time == "" || input.Service == "" {
		return nil, utils.NewValidation("date, time and service are required")
	}

	// The artisan must exist; a booking against an unknown id would dangle
	// from the start.
	if _, err := s.Artisans.GetByID(ctx, input.ArtisanID); err != nil {
		return nil, err
	}

	booking := models.Booking{
		ID:        utils.NewID(),
		ArtisanID: input.ArtisanID,
		UserID:    actor.ID,
		Date:      input.Date,
		Time:      input.Time,
		Service:   input.Service,
		Status:    models.BookingPending,
		Notes:     input.Notes,
	}
	if err := s.Repo.Upsert(ctx, booking); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("artisanID", booking.ArtisanID),
		zap.String("userID", booking.UserID))
	return &booking, nil
}

// Transition moves a booking along its status lifecycle. The artisan who
// owns the booking is the only allowed actor; the check lives here because
// the store layer is a plain record store with no notion of who is asking.
func (s *DefaultBookingService) Transition(ctx context.Context, actor models.User, bookingID string, next models.BookingStatus) (*models.Booking, error) {
	updated, err := s.Repo.UpdateByID(ctx, bookingID, func(b *models.Booking) error {
		if b.ArtisanID != actor.ID {
			return utils.NewAuth("only the booked artisan may update booking %s", bookingID)
		}
		if !models.AllowedTransition(b.Status, next) {
			return utils.NewValidation("cannot move booking from %s to %s", b.Status, next)
		}
		b.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("booking status changed",
		zap.String("bookingID", bookingID), zap.String("status", string(next)))
	return updated, nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) ListByArtisan(ctx context.Context, artisanID string) ([]models.Booking, error) {
	return s.Repo.GetByArtisanID(ctx, artisanID)
}

func (s *DefaultBookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.GetByUserID(ctx, userID)
}
