package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fittrack/fitness-tracker/internal/core/domain"
	"github.com/fittrack/fitness-tracker/internal/core/ports"
)

// AuthService implements sign-up and sign-in. The username is the email
// address; a separate username field does not exist in the client.
type AuthService struct {
	repo    ports.UserRepository
	tokens  ports.TokenIssuer
	limiter ports.LoginRateLimiter
	logger  zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenIssuer, limiter ports.LoginRateLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, limiter: limiter, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     email,
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		ok, err := s.limiter.Allow(ctx, username)
		if err != nil {
			// Throttling is best-effort: a degraded limiter must not lock
			// everyone out.
			s.logger.Warn().Err(err).Msg("rate limiter unavailable")
		} else if !ok {
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same failure as a wrong password so callers cannot probe for
			// registered usernames.
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("rate limiter reset failed")
		}
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", username).Msg("user signed in")
	return token, nil
}
