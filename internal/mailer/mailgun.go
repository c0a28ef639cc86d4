package mailer

import (
	"context"
	"fmt"
	"net/mail"

	mailgun "github.com/mailgun/mailgun-go/v5"
)

// MailgunMailer delivers messages through the Mailgun HTTP API.
type MailgunMailer struct {
	domain string
	client mailgun.Mailgun
}

// NewMailgunMailer constructs a Mailgun-backed mailer. The client is left nil
// when no API key is supplied so Enabled reports the misconfiguration.
func NewMailgunMailer(domain, apiKey string) *MailgunMailer {
	var client mailgun.Mailgun
	if apiKey != "" {
		client = mailgun.NewMailgun(apiKey)
	}
	return &MailgunMailer{domain: domain, client: client}
}

// Enabled reports whether the API key and sending domain are configured.
func (m *MailgunMailer) Enabled() bool {
	return m.client != nil && m.domain != ""
}

// Send delivers the message via the Mailgun messages API.
func (m *MailgunMailer) Send(ctx context.Context, msg Message) error {
	if !m.Enabled() {
		return fmt.Errorf("mailgun mailer is not configured")
	}

	from := mail.Address{Name: msg.FromName, Address: msg.FromAddress}
	message := mailgun.NewMessage(m.domain, from.String(), msg.Subject, msg.TextBody)
	if err := message.AddRecipient(msg.To); err != nil {
		return fmt.Errorf("add recipient: %w", err)
	}
	if msg.ReplyTo != "" {
		message.SetReplyTo(msg.ReplyTo)
	}
	if msg.HTMLBody != "" {
		message.SetHTML(msg.HTMLBody)
	}

	if _, err := m.client.Send(ctx, message); err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}

	return nil
}
