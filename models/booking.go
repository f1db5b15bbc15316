// File: models/booking.go
package models

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking represents a request by a user to engage an artisan.
// ArtisanID and UserID are weak references: deleting the referenced record
// does not cascade, so they may dangle.
type Booking struct {
	ID        string        `json:"id"`
	ArtisanID string        `json:"artisanId"`
	UserID    string        `json:"userId"`
	Date      string        `json:"date"` // "YYYY-MM-DD"
	Time      string        `json:"time"`
	Service   string        `json:"service"` // free text naming a skill
	Status    BookingStatus `json:"status"`
	Notes     string        `json:"notes,omitempty"`
}

// AllowedTransition reports whether a booking may move from one status to
// another. pending -> confirmed -> completed is the normal path; pending and
// confirmed bookings may both be cancelled. completed and cancelled are
// terminal.
func AllowedTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCompleted || to == BookingCancelled
	}
	return false
}
