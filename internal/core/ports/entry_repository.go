package ports

import (
	"context"

	"github.com/fittrack/fitness-tracker/internal/core/domain"
)

// EntryRepository defines persistence for workout entries. Every operation
// that targets a single entry filters by both entry id and owning user id;
// a miss on either dimension is reported as domain.ErrEntryNotFound.
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	// ListByUser returns the user's entries sorted by activity date descending.
	ListByUser(ctx context.Context, userID string) ([]*domain.Entry, error)
	FindByID(ctx context.Context, userID, entryID string) (*domain.Entry, error)
	// Update applies the merged entry state conditionally on {id, user_id}
	// matching exactly one document and returns the updated entry.
	Update(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	Delete(ctx context.Context, userID, entryID string) error
}
