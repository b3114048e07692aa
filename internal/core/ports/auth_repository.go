package ports

import (
	"context"

	"github.com/fittrack/fitness-tracker/internal/core/domain"
)

// UserRepository defines persistence for registered accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
