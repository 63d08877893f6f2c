// Package session stores refresh tokens in Redis.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"youthcup_backend/internal/feature/auth/usecase"
)

// RefreshTokenRedis implements usecase.RefreshTokenStore using Redis.
// Each user has exactly one key, <prefix>:<userID>, expiring with the token.
type RefreshTokenRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.RefreshTokenStore = (*RefreshTokenRedis)(nil)

// NewRefreshTokenRedis creates a new RefreshTokenRedis instance.
func NewRefreshTokenRedis(client *redis.Client, prefix string) *RefreshTokenRedis {
	if prefix == "" {
		prefix = "refresh_token"
	}
	return &RefreshTokenRedis{
		client: client,
		prefix: prefix,
	}
}

// tokenKey returns the Redis key for a user's refresh token.
func (r *RefreshTokenRedis) tokenKey(userID uint) string {
	return fmt.Sprintf("%s:%d", r.prefix, userID)
}

// Save overwrites the user's token.
func (r *RefreshTokenRedis) Save(ctx context.Context, userID uint, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("refresh token ttl must be positive")
	}
	return r.client.Set(ctx, r.tokenKey(userID), token, ttl).Err()
}

// Get returns the user's token.
func (r *RefreshTokenRedis) Get(ctx context.Context, userID uint) (string, error) {
	tok, err := r.client.Get(ctx, r.tokenKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", usecase.ErrRefreshTokenNotFound
		}
		return "", err
	}
	return tok, nil
}

// Delete removes the user's token.
func (r *RefreshTokenRedis) Delete(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, r.tokenKey(userID)).Err()
}
