// Package redis builds the shared go-redis client.
package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured is returned when no Redis URL is set.
var ErrNotConfigured = errors.New("redis url not configured")

// NewRedisClient parses url (redis://[user:pass@]host:port/db), connects and
// pings. Callers treat any error as "run without Redis".
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, ErrNotConfigured
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		slog.Error("invalid REDIS_URL", "error", err)
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// 接続確認
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", opts.Addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", opts.Addr)
	return rdb, nil
}
