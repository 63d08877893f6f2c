package usecase

import (
	"context"
	"time"
)

// RefreshTokenStore keeps the single current refresh token of each user.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type RefreshTokenStore interface {
	// Save stores token as the user's current refresh token, replacing any previous one.
	Save(ctx context.Context, userID uint, token string, ttl time.Duration) error

	// Get returns the user's current refresh token or ErrRefreshTokenNotFound.
	Get(ctx context.Context, userID uint) (string, error)

	// Delete removes the user's refresh token. Deleting a missing entry is not an error.
	Delete(ctx context.Context, userID uint) error
}
