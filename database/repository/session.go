// File: database/repository/session.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"artisanhub/database"
	"artisanhub/models"
)

// SessionRepository is the single distinguished slot holding at most one
// "current user" record. It is read at process start to restore a session
// and overwritten by login, logout and registration.
type SessionRepository interface {
	// Current returns the logged-in user, or nil when nobody is.
	Current(ctx context.Context) (*models.User, error)
	// SetCurrent stores user as the active session.
	SetCurrent(ctx context.Context, user models.User) error
	// Clear empties the slot. Clearing an empty slot is a no-op.
	Clear(ctx context.Context) error
}

// KVSessionRepo keeps the session pointer under its own blob key.
type KVSessionRepo struct {
	store database.BlobStore
}

// NewKVSessionRepo returns a session repository over the given blob store.
func NewKVSessionRepo(store database.BlobStore) *KVSessionRepo {
	return &KVSessionRepo{store: store}
}

func (r *KVSessionRepo) Current(ctx context.Context) (*models.User, error) {
	data, err := r.store.Get(ctx, KeyCurrentUser)
	if err != nil {
		if err == database.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("corrupt session slot: %w", err)
	}
	return &user, nil
}

func (r *KVSessionRepo) SetCurrent(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session slot: %w", err)
	}
	return r.store.Put(ctx, KeyCurrentUser, data)
}

func (r *KVSessionRepo) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, KeyCurrentUser)
}
