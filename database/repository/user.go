// File: database/repository/user.go
package repository

import (
	"context"
	"strings"

	"artisanhub/database"
	"artisanhub/models"
	"artisanhub/utils"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByEmail retrieves a user by its email address (the login key).
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Upsert inserts a new user or replaces an existing one in place.
	Upsert(ctx context.Context, user models.User) error
	// CreateUnique inserts a new user, rejecting the write with a conflict
	// error if the email is already taken. Check and insert run under the
	// collection lock.
	CreateUnique(ctx context.Context, user models.User) error
	// UpdateByID applies mutate to one user under the collection lock.
	UpdateByID(ctx context.Context, id string, mutate func(*models.User) error) (*models.User, error)
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) error
}

// KVUserRepo stores the user collection as one ordered blob.
type KVUserRepo struct {
	coll *collection[models.User]
}

// NewKVUserRepo returns a user repository over the given blob store.
func NewKVUserRepo(store database.BlobStore) *KVUserRepo {
	return &KVUserRepo{
		coll: newCollection(store, KeyUsers,
			func(u models.User) string { return u.ID },
			validateUser),
	}
}

func validateUser(u models.User) error {
	if u.Name == "" {
		return utils.NewValidation("user name is required")
	}
	if u.Email == "" {
		return utils.NewValidation("user email is required")
	}
	if !models.ValidRole(u.Role) {
		return utils.NewValidation("unknown user role %q", u.Role)
	}
	return nil
}

func (r *KVUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.coll.GetByID(ctx, id)
}

func (r *KVUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	return r.coll.List(ctx)
}

// GetByEmail scans users for a matching email, case-insensitively.
func (r *KVUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, utils.NewValidation("email must be a non-empty string")
	}
	users, err := r.coll.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			user := users[i]
			return &user, nil
		}
	}
	return nil, utils.NewNotFound("users: no record with email %s", email)
}

func (r *KVUserRepo) Upsert(ctx context.Context, user models.User) error {
	return r.coll.Upsert(ctx, user)
}

// CreateUnique appends the user only if no stored user carries the same email
// (case-insensitively). The scan happens inside the collection's locked
// read-modify-write, so two concurrent registrations for one email cannot
// both pass it.
func (r *KVUserRepo) CreateUnique(ctx context.Context, user models.User) error {
	return r.coll.Insert(ctx, user, func(existing []models.User) error {
		for i := range existing {
			if strings.EqualFold(existing[i].Email, user.Email) {
				return utils.NewConflict("email %s is already registered", user.Email)
			}
		}
		return nil
	})
}

func (r *KVUserRepo) UpdateByID(ctx context.Context, id string, mutate func(*models.User) error) (*models.User, error) {
	return r.coll.UpdateByID(ctx, id, mutate)
}

func (r *KVUserRepo) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}
