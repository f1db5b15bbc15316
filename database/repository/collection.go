// File: database/repository/collection.go
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"artisanhub/database"
	"artisanhub/utils"
)

// Well-known blob keys, one per collection plus the session slot.
const (
	KeyArtisans    = "artisans"
	KeyUsers       = "users"
	KeyBookings    = "bookings"
	KeyCategories  = "categories"
	KeyCurrentUser = "currentUser"
)

// ErrVersionConflict means the stored version stamp moved between a writer's
// read and its write. With a single process this cannot happen (every
// read-modify-write runs under the collection mutex); it guards against a
// second process sharing the same blob store.
var ErrVersionConflict = fmt.Errorf("collection version conflict, concurrent writer detected")

// envelope is the persisted form of one collection: the ordered record array
// plus a version stamp incremented on every write.
type envelope[T any] struct {
	Version int64 `json:"version"`
	Records []T   `json:"records"`
}

// collection gives typed, ordered access to one record array stored as a
// single blob. All mutations take the collection mutex, so at most one
// writer per collection runs at a time and every write is one blob Put.
type collection[T any] struct {
	store    database.BlobStore
	key      string
	mu       sync.Mutex
	idOf     func(T) string
	validate func(T) error
}

func newCollection[T any](store database.BlobStore, key string, idOf func(T) string, validate func(T) error) *collection[T] {
	return &collection[T]{store: store, key: key, idOf: idOf, validate: validate}
}

// load reads and decodes the collection. An absent key yields an empty
// sequence with version 0; corrupt data is surfaced as an error, never
// masked by an empty collection.
func (c *collection[T]) load(ctx context.Context) ([]T, int64, error) {
	data, err := c.store.Get(ctx, c.key)
	if err != nil {
		if err == database.ErrKeyNotFound {
			return nil, 0, nil
		}
		return nil, 0, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		// Legacy layout: a bare record array with no envelope.
		var records []T
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, 0, fmt.Errorf("corrupt collection %s: %w", c.key, err)
		}
		return records, 0, nil
	}

	var env envelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, 0, fmt.Errorf("corrupt collection %s: %w", c.key, err)
	}
	return env.Records, env.Version, nil
}

// save re-reads the stored version stamp, rejects the write if it no longer
// matches what the writer loaded, and persists the full collection as one
// blob write with the stamp incremented.
func (c *collection[T]) save(ctx context.Context, records []T, loadedVersion int64) error {
	_, stored, err := c.load(ctx)
	if err != nil {
		return err
	}
	if stored != loadedVersion {
		return ErrVersionConflict
	}

	data, err := json.Marshal(envelope[T]{Version: loadedVersion + 1, Records: records})
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", c.key, err)
	}
	return c.store.Put(ctx, c.key, data)
}

// List returns all records in insertion order; an absent collection is an
// empty sequence, never an error.
func (c *collection[T]) List(ctx context.Context) ([]T, error) {
	records, _, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// GetByID scans for a record by id.
func (c *collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, utils.NewValidation("id must be a non-empty string")
	}
	records, _, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if c.idOf(records[i]) == id {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, utils.NewNotFound("%s: no record with id %s", c.key, id)
}

// Upsert replaces the record with the same id in place, preserving its
// position in the sequence, or appends when the id is new. The whole updated
// collection is persisted synchronously before returning.
func (c *collection[T]) Upsert(ctx context.Context, record T) error {
	if c.idOf(record) == "" {
		return utils.NewValidation("%s: record id must be a non-empty string", c.key)
	}
	if c.validate != nil {
		if err := c.validate(record); err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, version, err := c.load(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range records {
		if c.idOf(records[i]) == c.idOf(record) {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}
	return c.save(ctx, records, version)
}

// Insert appends a new record after running check against the records already
// stored. Scan and append happen under the collection mutex, so a uniqueness
// check cannot race with another writer's insert.
func (c *collection[T]) Insert(ctx context.Context, record T, check func(existing []T) error) error {
	if c.idOf(record) == "" {
		return utils.NewValidation("%s: record id must be a non-empty string", c.key)
	}
	if c.validate != nil {
		if err := c.validate(record); err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, version, err := c.load(ctx)
	if err != nil {
		return err
	}
	if check != nil {
		if err := check(records); err != nil {
			return err
		}
	}
	return c.save(ctx, append(records, record), version)
}

// UpdateByID applies mutate to the record with the given id and persists the
// collection, all under the collection mutex so the read-modify-write cannot
// interleave with another writer.
func (c *collection[T]) UpdateByID(ctx context.Context, id string, mutate func(*T) error) (*T, error) {
	if id == "" {
		return nil, utils.NewValidation("id must be a non-empty string")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, version, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if c.idOf(records[i]) != id {
			continue
		}
		if err := mutate(&records[i]); err != nil {
			return nil, err
		}
		if c.validate != nil {
			if err := c.validate(records[i]); err != nil {
				return nil, err
			}
		}
		if err := c.save(ctx, records, version); err != nil {
			return nil, err
		}
		rec := records[i]
		return &rec, nil
	}
	return nil, utils.NewNotFound("%s: no record with id %s", c.key, id)
}

// Delete removes the record with the given id, keeping the relative order of
// the remaining records.
func (c *collection[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return utils.NewValidation("id must be a non-empty string")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, version, err := c.load(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if c.idOf(records[i]) == id {
			records = append(records[:i], records[i+1:]...)
			return c.save(ctx, records, version)
		}
	}
	return utils.NewNotFound("%s: no record with id %s", c.key, id)
}

// Replace overwrites the whole collection. Used by seeding.
func (c *collection[T]) Replace(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, version, err := c.load(ctx)
	if err != nil {
		return err
	}
	return c.save(ctx, records, version)
}
