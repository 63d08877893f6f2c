// Package db opens the GORM connection and runs schema migrations.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"youthcup_backend/internal/domain/entity"
	authadapters "youthcup_backend/internal/feature/auth/adapters"
)

// retryInterval is the wait between connection attempts.
const retryInterval = 3 * time.Second

// Opener opens a *gorm.DB for a DSN. It is replaced in tests.
type Opener func(dsn string) (*gorm.DB, error)

// PostgresOpener opens a PostgreSQL connection. References between
// documents are validated by the services, so no FK constraints are created.
func PostgresOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
}

// ConnectWithRetry calls open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err)
		time.Sleep(retryInterval)
	}
}

// OpenDB connects to PostgreSQL (retrying for up to 60s) and optionally migrates.
func OpenDB(databaseURL string, runMigrations bool) (*gorm.DB, error) {
	db, err := ConnectWithRetry(databaseURL, 60*time.Second, PostgresOpener)
	if err != nil {
		return nil, err
	}
	if runMigrations {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
		slog.Info("database migrations applied")
	}
	return db, nil
}

// Models lists every table managed by AutoMigrate.
func Models() []any {
	return []any{
		&entity.User{},
		&entity.Team{},
		&entity.Player{},
		&entity.Game{},
		&entity.Event{},
		&entity.Product{},
		&entity.Order{},
		&authadapters.RefreshTokenModel{},
	}
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
