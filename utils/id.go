// File: utils/id.go
package utils

import "github.com/google/uuid"

// NewID produces an opaque string identifier for a new record. IDs are
// unique with overwhelming probability across a store's lifetime and safe
// to use as map keys and URL path segments.
func NewID() string {
	return uuid.NewString()
}
