package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 10
	defaultWindow      = time.Minute
)

// LoginRateLimiter throttles sign-in attempts per username using a Redis
// counter with a sliding expiry. Key format: login_attempts:<username>
type LoginRateLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginRateLimiter creates a limiter allowing maxAttempts per window.
// Non-positive arguments fall back to defaults.
func NewLoginRateLimiter(client *redis.Client, maxAttempts int64, window time.Duration) *LoginRateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginRateLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow counts the attempt and reports whether it is within the window budget.
func (l *LoginRateLimiter) Allow(ctx context.Context, username string) (bool, error) {
	key := l.key(username)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.maxAttempts, nil
}

// Reset clears the counter after a successful sign-in.
func (l *LoginRateLimiter) Reset(ctx context.Context, username string) error {
	return l.client.Del(ctx, l.key(username)).Err()
}

func (l *LoginRateLimiter) key(username string) string {
	return "login_attempts:" + username
}
