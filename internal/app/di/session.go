// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "youthcup_backend/internal/feature/auth/adapters"
	"youthcup_backend/internal/feature/auth/usecase"
	"youthcup_backend/internal/platform/session"
	"youthcup_backend/internal/shared/besteffort"
)

// NewRefreshTokenStore creates a RefreshTokenStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the refresh_tokens table and purges rows
// that expired while the process was down.
func NewRefreshTokenStore(ctx context.Context, rdb *redis.Client, db *gorm.DB) usecase.RefreshTokenStore {
	if rdb != nil {
		return session.NewRefreshTokenRedis(rdb, "refresh_token")
	}
	store := authadapters.NewRefreshTokenGorm(db)
	besteffort.Do(ctx, "purge_expired_refresh_tokens", func(ctx context.Context) error {
		n, err := store.DeleteExpired(ctx)
		if err == nil && n > 0 {
			slog.InfoContext(ctx, "purged expired refresh tokens", "count", n)
		}
		return err
	})
	return store
}
