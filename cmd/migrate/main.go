// Command migrate applies the schema and optionally promotes a user to admin.
//
//	go run ./cmd/migrate -promote admin@example.com
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"youthcup_backend/internal/domain/entity"
	authadapters "youthcup_backend/internal/feature/auth/adapters"
	"youthcup_backend/internal/platform/config"
	"youthcup_backend/internal/platform/db"
)

func main() {
	promote := flag.String("promote", "", "email of a user to grant the admin role")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	gdb, err := db.OpenDB(cfg.DatabaseURL, true)
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	n, err := authadapters.NewRefreshTokenGorm(gdb).DeleteExpired(ctx)
	if err != nil {
		slog.Error("failed to purge expired refresh tokens", "error", err)
		os.Exit(1)
	}
	slog.Info("purged expired refresh tokens", "count", n)

	if *promote == "" {
		return
	}
	result := gdb.WithContext(ctx).Model(&entity.User{}).
		Where("email = ?", *promote).
		Update("role", entity.RoleAdmin)
	if result.Error != nil {
		slog.Error("failed to promote user", "email", *promote, "error", result.Error)
		os.Exit(1)
	}
	if result.RowsAffected == 0 {
		slog.Error("no user with that email", "email", *promote)
		os.Exit(1)
	}
	slog.Info("user promoted to admin", "email", *promote)
}
