// File: models/user.go
package models

// UserRole distinguishes clients who book work from artisans who offer it.
type UserRole string

const (
	RoleClient  UserRole = "client"
	RoleArtisan UserRole = "artisan"
)

// ValidRole reports whether r is a known account role.
func ValidRole(r UserRole) bool {
	return r == RoleClient || r == RoleArtisan
}

// User is an account holder. Email doubles as the login key and must be
// unique across all users. Role is immutable after registration.
//
// Bookings and ReviewsGiven are advisory denormalized caches only; the
// authoritative source of a user's bookings and reviews is a scan of the
// booking collection and of artisans' embedded review lists filtered by
// user id. See user service RebuildUserCaches.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Role         UserRole `json:"role"`
	Bookings     []string `json:"bookings,omitempty"`     // booking ids
	ReviewsGiven []string `json:"reviewsGiven,omitempty"` // review ids
}
