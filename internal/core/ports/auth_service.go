package ports

import (
	"context"

	"github.com/fittrack/fitness-tracker/internal/core/domain"
)

// AuthService implements sign-up and sign-in.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token.
	// Unknown usernames and wrong passwords fail identically with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenIssuer mints a signed bearer token bound to a user identity.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// TokenVerifier validates a bearer token and resolves the user identity it
// was issued for. Failures are domain.ErrTokenExpired,
// domain.ErrTokenMalformed or domain.ErrTokenSignature.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// LoginRateLimiter throttles sign-in attempts per username.
type LoginRateLimiter interface {
	// Allow reports whether another attempt is permitted for the username.
	Allow(ctx context.Context, username string) (bool, error)
	// Reset clears the attempt counter after a successful sign-in.
	Reset(ctx context.Context, username string) error
}
