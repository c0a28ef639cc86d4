package mailer

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"
)

// SMTPMailer delivers messages through an authenticated SMTP relay.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPMailer constructs an SMTP relay mailer.
func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	if port <= 0 {
		port = 587
	}
	return &SMTPMailer{host: host, port: port, username: username, password: password}
}

// Enabled reports whether relay credentials are fully configured.
func (m *SMTPMailer) Enabled() bool {
	return m.host != "" && m.username != "" && m.password != ""
}

// Send builds a MIME envelope and submits it to the relay. net/smtp carries
// no context support, so cancellation is only honoured before the dial.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if !m.Enabled() {
		return fmt.Errorf("smtp mailer is not configured")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	envelope, err := buildMIME(msg)
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := smtp.SendMail(addr, auth, msg.FromAddress, []string{msg.To}, envelope); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

// buildMIME assembles a multipart/alternative envelope carrying the plain
// text and HTML renderings of the message.
func buildMIME(msg Message) ([]byte, error) {
	if msg.To == "" {
		return nil, fmt.Errorf("outbound email has no recipient")
	}

	from := mail.Address{Name: msg.FromName, Address: msg.FromAddress}

	var buf bytes.Buffer
	body := multipart.NewWriter(&buf)

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\n", from.String(), msg.To)
	if msg.ReplyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", msg.ReplyTo)
	}
	headers += fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	headers += fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	headers += "MIME-Version: 1.0\r\n"
	headers += fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", body.Boundary())

	parts := []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=utf-8", msg.TextBody},
		{"text/html; charset=utf-8", msg.HTMLBody},
	}

	for _, part := range parts {
		if part.content == "" {
			continue
		}
		w, err := body.CreatePart(textproto.MIMEHeader{"Content-Type": {part.contentType}})
		if err != nil {
			return nil, fmt.Errorf("cannot build outbound email: %w", err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("cannot build outbound email: %w", err)
		}
	}

	if err := body.Close(); err != nil {
		return nil, fmt.Errorf("cannot build outbound email: %w", err)
	}

	return append([]byte(headers), buf.Bytes()...), nil
}
