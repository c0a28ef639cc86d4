package mailer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Message is a provider-agnostic outbound email. Fields are intentionally
// transport-neutral so the same message can be handed to SMTP or an HTTP API.
type Message struct {
	FromName    string
	FromAddress string
	To          string
	ReplyTo     string
	Subject     string
	TextBody    string
	HTMLBody    string
}

// Mailer abstracts the transactional email provider. Enabled reports whether
// the provider has sufficient credentials to send; callers must check it
// before dispatching and translate a disabled provider into a server-side
// configuration error.
type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, msg Message) error
}

// Config selects and credentials a concrete provider.
type Config struct {
	Provider string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	MailgunDomain string
	MailgunAPIKey string
}

// New constructs the mailer selected by cfg.Provider.
func New(cfg Config, logger zerolog.Logger) (Mailer, error) {
	switch cfg.Provider {
	case "smtp":
		return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword), nil
	case "mailgun":
		return NewMailgunMailer(cfg.MailgunDomain, cfg.MailgunAPIKey), nil
	case "log", "":
		return NewLogMailer(logger), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}

// LogMailer writes outbound emails to the log instead of sending them.
// Intended for development and tests.
type LogMailer struct {
	logger zerolog.Logger
}

// NewLogMailer constructs a logging mailer.
func NewLogMailer(logger zerolog.Logger) *LogMailer {
	return &LogMailer{logger: logger.With().Str("component", "log_mailer").Logger()}
}

// Enabled always reports true; the log sink needs no credentials.
func (l *LogMailer) Enabled() bool { return true }

// Send logs the message envelope and returns nil to indicate success.
func (l *LogMailer) Send(ctx context.Context, msg Message) error {
	l.logger.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("text_bytes", len(msg.TextBody)).
		Int("html_bytes", len(msg.HTMLBody)).
		Msg("outbound email delivered to log sink")
	return nil
}
