// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values.
type Config struct {
	Port          string
	DatabaseURL   string
	RunMigrations bool
	RedisURL      string // empty disables Redis

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration

	SendGridAPIKey     string // empty selects the log-only mailer
	SendGridFromEmail  string
	EmailRatePerMinute int

	AllowedOrigins []string
	UploadDir      string
	PublicBasePath string

	LogLevel slog.Level
}

// Load reads .env (if present) and then the process environment.
// Variables already set in the environment win over .env values.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:               getenv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RunMigrations:      os.Getenv("RUN_MIGRATIONS") == "true",
		RedisURL:           os.Getenv("REDIS_URL"),
		AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		AccessTokenTTL:     60 * time.Minute,
		RefreshTokenTTL:    7 * 24 * time.Hour,
		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail:  getenv("SENDGRID_FROM_EMAIL", "no-reply@youthcup.local"),
		AllowedOrigins:     splitList(getenv("ALLOWED_ORIGINS", "http://localhost:5173")),
		UploadDir:          getenv("UPLOAD_DIR", "./uploads"),
		PublicBasePath:     getenv("PUBLIC_BASE_PATH", "/uploads"),
	}

	rate, err := strconv.Atoi(getenv("EMAIL_RATE_PER_MINUTE", "60"))
	if err != nil || rate <= 0 {
		return Config{}, fmt.Errorf("invalid EMAIL_RATE_PER_MINUTE: %q", os.Getenv("EMAIL_RATE_PER_MINUTE"))
	}
	cfg.EmailRatePerMinute = rate

	if err := cfg.LogLevel.UnmarshalText([]byte(getenv("LOG_LEVEL", "INFO"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.AccessTokenSecret == "" {
		missing = append(missing, "ACCESS_TOKEN_SECRET")
	}
	if cfg.RefreshTokenSecret == "" {
		missing = append(missing, "REFRESH_TOKEN_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}
	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		slog.Warn("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET are identical; use distinct secrets in production")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
