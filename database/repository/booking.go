// File: database/repository/booking.go
package repository

import (
	"context"

	"artisanhub/database"
	"artisanhub/models"
	"artisanhub/utils"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetAll retrieves all bookings.
	GetAll(ctx context.Context) ([]models.Booking, error)
	// GetByArtisanID retrieves all bookings addressed to one artisan.
	GetByArtisanID(ctx context.Context, artisanID string) ([]models.Booking, error)
	// GetByUserID retrieves all bookings made by one user.
	GetByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	// Upsert inserts a new booking or replaces an existing one in place.
	Upsert(ctx context.Context, booking models.Booking) error
	// UpdateByID applies mutate to one booking under the collection lock.
	UpdateByID(ctx context.Context, id string, mutate func(*models.Booking) error) (*models.Booking, error)
	// Delete removes a booking record by its ID.
	Delete(ctx context.Context, id string) error
}

// KVBookingRepo stores the booking collection as one ordered blob.
type KVBookingRepo struct {
	coll *collection[models.Booking]
}

// NewKVBookingRepo returns a booking repository over the given blob store.
func NewKVBookingRepo(store database.BlobStore) *KVBookingRepo {
	return &KVBookingRepo{
		coll: newCollection(store, KeyBookings,
			func(b models.Booking) string { return b.ID },
			validateBooking),
	}
}

func validateBooking(b models.Booking) error {
	if b.ArtisanID == "" || b.UserID == "" {
		return utils.NewValidation("booking requires artisanId and userId")
	}
	if b.Date == "" || b.Time == "" || b.Service == "" {
		return utils.NewValidation("booking requires date, time and service")
	}
	switch b.Status {
	case models.BookingPending, models.BookingConfirmed, models.BookingCompleted, models.BookingCancelled:
		return nil
	}
	return utils.NewValidation("unknown booking status %q", b.Status)
}

func (r *KVBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return r.coll.GetByID(ctx, id)
}

func (r *KVBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.coll.List(ctx)
}

func (r *KVBookingRepo) GetByArtisanID(ctx context.Context, artisanID string) ([]models.Booking, error) {
	return r.filter(ctx, func(b models.Booking) bool { return b.ArtisanID == artisanID })
}

func (r *KVBookingRepo) GetByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.filter(ctx, func(b models.Booking) bool { return b.UserID == userID })
}

func (r *KVBookingRepo) filter(ctx context.Context, keep func(models.Booking) bool) ([]models.Booking, error) {
	bookings, err := r.coll.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Booking{}
	for _, b := range bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *KVBookingRepo) Upsert(ctx context.Context, booking models.Booking) error {
	return r.coll.Upsert(ctx, booking)
}

func (r *KVBookingRepo) UpdateByID(ctx context.Context, id string, mutate func(*models.Booking) error) (*models.Booking, error) {
	return r.coll.UpdateByID(ctx, id, mutate)
}

func (r *KVBookingRepo) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}
