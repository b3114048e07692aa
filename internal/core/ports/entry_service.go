package ports

import (
	"context"

	"github.com/fittrack/fitness-tracker/internal/core/domain"
)

// CreateEntryInput carries all data needed to log a workout. ActivityDate is
// a date string ("2006-01-02" or RFC 3339); empty means today.
type CreateEntryInput struct {
	ActivityName string
	Duration     int
	Intensity    string
	ActivityDate string
}

// UpdateEntryInput carries a partial update; nil fields stay unchanged.
type UpdateEntryInput struct {
	ActivityName *string
	Duration     *int
	Intensity    *string
	ActivityDate *string
}

// EntryService defines use-case operations over workout entries. The userID
// argument always comes from the verified bearer token, never from the
// request body.
type EntryService interface {
	Create(ctx context.Context, userID string, input CreateEntryInput) (*domain.Entry, error)
	List(ctx context.Context, userID string) ([]*domain.Entry, error)
	Get(ctx context.Context, userID, entryID string) (*domain.Entry, error)
	Update(ctx context.Context, userID, entryID string, input UpdateEntryInput) (*domain.Entry, error)
	Delete(ctx context.Context, userID, entryID string) error
}
