// Package msgs is the persistence gateway for chat messages. Like the users
// gateway it validates primitive inputs before touching storage, returns plain
// DTOs with the author hydrated, and wraps every driver failure in
// *common.StorageError.
package msgs

import (
	"context"

	"github.com/mborg/chatboard/internal/server/models"
)

// Repository defines entity-shaped access to Msg rows.
type Repository interface {
	// Create inserts a message authored by the given user and returns the
	// hydrated record. The author is re-resolved by username inside the
	// current transaction rather than trusting the caller-supplied id, so a
	// stale id cannot attach the message to the wrong row.
	Create(ctx context.Context, text string, author *models.User) (*models.Msg, error)

	// FindByID returns the non-deleted message with the given id, author
	// hydrated, or common.ErrNotFound.
	FindByID(ctx context.Context, id int64) (*models.Msg, error)

	// FindAll returns every non-deleted message, author hydrated, oldest
	// first.
	FindAll(ctx context.Context) ([]*models.Msg, error)

	// Delete soft-deletes the message with the given id. A missing or
	// already-deleted row yields a StorageError wrapping common.ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
