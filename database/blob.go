// File: database/blob.go
package database

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value is stored under a key.
var ErrKeyNotFound = errors.New("key not found")

// BlobStore is raw key/value access to the shared serialized store. A Put is
// all-or-nothing: no partial write is ever observable by a reader.
//
// The store itself has no transactions. The at-most-one-writer-per-collection
// discipline lives in the repository layer on top of it.
type BlobStore interface {
	// Get returns the bytes stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores data under key, replacing any previous value.
	Put(ctx context.Context, key string, data []byte) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
