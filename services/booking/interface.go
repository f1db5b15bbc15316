// File: services/booking/interface.go
package booking

import (
	"context"

	"artisanhub/database/repository"
	"artisanhub/models"
)

// CreateInput is what a client submits to request a booking.
type CreateInput struct {
	ArtisanID string `json:"artisanId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Service   string `json:"service"`
	Notes     string `json:"notes,omitempty"`
}

// BookingService manages booking requests and their status lifecycle.
type BookingService interface {
	// Create records a new pending booking by the acting user against an
	// existing artisan. Date, time and service are all required.
	Create(ctx context.Context, actor models.User, input CreateInput) (*models.Booking, error)
	// Transition moves a booking to a new status. Only the booked artisan
	// may transition; illegal moves (per models.AllowedTransition) are
	// rejected. The identity fields of the booking are never touched.
	Transition(ctx context.Context, actor models.User, bookingID string, next models.BookingStatus) (*models.Booking, error)
	// GetByID retrieves one booking.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListByArtisan returns all bookings addressed to one artisan.
	ListByArtisan(ctx context.Context, artisanID string) ([]models.Booking, error)
	// ListByUser returns all bookings made by one user.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
}

// DefaultBookingService is the standard implementation over the record store.
type DefaultBookingService struct {
	Repo     repository.BookingRepository
	Artisans repository.ArtisanRepository
}
