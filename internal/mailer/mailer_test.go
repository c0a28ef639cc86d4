package mailer

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsProvider(t *testing.T) {
	logger := zerolog.New(io.Discard)

	m, err := New(Config{Provider: "smtp", SMTPHost: "smtp.example.com", SMTPUsername: "u", SMTPPassword: "p"}, logger)
	require.NoError(t, err)
	require.IsType(t, &SMTPMailer{}, m)

	m, err = New(Config{Provider: "mailgun", MailgunDomain: "mg.example.com", MailgunAPIKey: "key"}, logger)
	require.NoError(t, err)
	require.IsType(t, &MailgunMailer{}, m)

	m, err = New(Config{Provider: "log"}, logger)
	require.NoError(t, err)
	require.IsType(t, &LogMailer{}, m)

	_, err = New(Config{Provider: "pigeon"}, logger)
	require.Error(t, err)
}

func TestMailgunMailerEnabled(t *testing.T) {
	require.True(t, NewMailgunMailer("mg.example.com", "key").Enabled())
	require.False(t, NewMailgunMailer("mg.example.com", "").Enabled())
	require.False(t, NewMailgunMailer("", "key").Enabled())
}

func TestLogMailerSend(t *testing.T) {
	m := NewLogMailer(zerolog.New(io.Discard))
	require.True(t, m.Enabled())
	require.NoError(t, m.Send(context.Background(), Message{To: "jane@example.com", Subject: "hi"}))
}
