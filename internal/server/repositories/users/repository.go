// Package users is the persistence gateway for User records. Every method
// validates its own primitive inputs before issuing a storage command and
// wraps any driver failure in *common.StorageError, so neither raw SQL errors
// nor database/sql row types ever cross the boundary.
package users

import (
	"context"

	"github.com/mborg/chatboard/internal/server/models"
)

// Repository defines entity-shaped access to User rows. Implementations
// return plain DTOs and report an absent row as common.ErrNotFound.
type Repository interface {
	// Create inserts a new user and returns it with ID and timestamps set.
	// Username uniqueness is enforced by the storage engine.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindByUsername returns all non-deleted users with the given username.
	// The slice is empty when none match. The username must be a non-empty
	// alphanumeric string.
	FindByUsername(ctx context.Context, username string) ([]*models.User, error)

	// FindByID returns the non-deleted user with the given id, or
	// common.ErrNotFound.
	FindByID(ctx context.Context, id int64) (*models.User, error)

	// Update applies all fields of user to the row matching user.ID.
	Update(ctx context.Context, user *models.User) error
}
