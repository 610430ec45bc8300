package redis

import (
	"context"
	"time"

	redisclient "github.com/cafelumiere/cafe-api/cmd/redis"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error

	SetResetToken(ctx context.Context, tokenHash string, userID uint64, ttl time.Duration) error
	GetResetToken(ctx context.Context, tokenHash string) (uint64, error)
	DeleteResetToken(ctx context.Context, tokenHash string) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, "session:"+sessionID, userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	val, err := client.Get(ctx, "session:"+sessionID).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, "session:"+sessionID).Err()
}

// SetResetToken stores a hashed password-reset token. The TTL doubles as
// the token expiry, no expiry column needed on the user row.
func (r *redis) SetResetToken(ctx context.Context, tokenHash string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, "pwdreset:"+tokenHash, userID, ttl).Err()
}

// GetResetToken resolves a hashed reset token to a user id
func (r *redis) GetResetToken(ctx context.Context, tokenHash string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	val, err := client.Get(ctx, "pwdreset:"+tokenHash).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteResetToken invalidates a reset token after use
func (r *redis) DeleteResetToken(ctx context.Context, tokenHash string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, "pwdreset:"+tokenHash).Err()
}
