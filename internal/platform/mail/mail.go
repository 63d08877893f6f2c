// Package mail delivers transactional email through SendGrid, or logs it
// when no API key is configured.
package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"youthcup_backend/internal/shared/ratelimiter"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// ErrNoRecipient is returned for a message without a To address.
var ErrNoRecipient = errors.New("mail: message has no recipient")

// sendClient is the subset of *sendgrid.Client used here.
type sendClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

// SendGridMailer sends email through the SendGrid v3 API.
type SendGridMailer struct {
	client  sendClient
	from    *sgmail.Email
	limiter ratelimiter.Limiter
}

// NewSendGridMailer returns a mailer using apiKey, throttled by limiter.
func NewSendGridMailer(apiKey, fromEmail string, limiter ratelimiter.Limiter) *SendGridMailer {
	return &SendGridMailer{
		client:  sendgrid.NewSendClient(apiKey),
		from:    sgmail.NewEmail("Youth Cup", fromEmail),
		limiter: limiter,
	}
}

// Send delivers msg. Any non-2xx response is an error.
func (m *SendGridMailer) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}
	if m.limiter != nil {
		if err := m.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("mail: rate limiter: %w", err)
		}
	}

	text := msg.Text
	if text == "" {
		text = msg.Subject
	}
	email := sgmail.NewSingleEmail(m.from, msg.Subject, sgmail.NewEmail("", msg.To), text, msg.HTML)

	resp, err := m.client.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("mail: send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail: sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// LogMailer only logs messages. It is used when SENDGRID_API_KEY is unset.
type LogMailer struct{}

// Send logs the recipient and subject.
func (LogMailer) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}
	slog.InfoContext(ctx, "email not sent (no mail provider configured)", "to", msg.To, "subject", msg.Subject)
	return nil
}
