package di

import (
	"log/slog"
	"time"

	"youthcup_backend/internal/feature/auth/usecase"
	"youthcup_backend/internal/platform/config"
	"youthcup_backend/internal/platform/mail"
	"youthcup_backend/internal/shared/ratelimiter"
)

// NewMailer returns a SendGrid mailer throttled to EmailRatePerMinute, or a
// log-only mailer when no API key is configured.
func NewMailer(cfg config.Config) usecase.Mailer {
	if cfg.SendGridAPIKey == "" {
		slog.Warn("SENDGRID_API_KEY is not set; emails will only be logged")
		return mail.LogMailer{}
	}
	limiter := ratelimiter.NewRateLimiter(cfg.EmailRatePerMinute, time.Minute)
	return mail.NewSendGridMailer(cfg.SendGridAPIKey, cfg.SendGridFromEmail, limiter)
}
