package mailer

import (
	"fmt"
	"html/template"
	"strings"
)

// TemplateData carries the submission values rendered into both outgoing
// emails. Rendering is a pure function of this data plus the locale; the
// caller fills in the envelope (from, to, reply-to) afterwards.
type TemplateData struct {
	Name         string
	Email        string
	Subject      string
	Message      string
	Ticket       string
	Locale       Locale
	DashboardURL string
}

var operatorHTML = template.Must(template.New("operator").Parse(`<div style="font-family:Arial,Helvetica,sans-serif;max-width:600px;margin:0 auto;color:#222">
  <h2 style="color:#1a3c6e">{{.B.OperatorIntro}}</h2>
  <table style="border-collapse:collapse;width:100%">
    <tr><td style="padding:4px 8px;font-weight:bold">{{.B.LabelTicket}}</td><td style="padding:4px 8px">{{.D.Ticket}}</td></tr>
    <tr><td style="padding:4px 8px;font-weight:bold">{{.B.LabelName}}</td><td style="padding:4px 8px">{{.D.Name}}</td></tr>
    <tr><td style="padding:4px 8px;font-weight:bold">{{.B.LabelEmail}}</td><td style="padding:4px 8px"><a href="mailto:{{.D.Email}}">{{.D.Email}}</a></td></tr>
    <tr><td style="padding:4px 8px;font-weight:bold">{{.B.LabelSubject}}</td><td style="padding:4px 8px">{{.D.Subject}}</td></tr>
  </table>
  <p style="font-weight:bold;margin-bottom:4px">{{.B.LabelMessage}}:</p>
  <p style="background:#f6f8fa;padding:12px;border-radius:4px">{{range .Lines}}{{.}}<br>{{end}}</p>
  <p>
    <a href="mailto:{{.D.Email}}?subject={{.ReplySubject}}" style="color:#1a3c6e">{{.B.ReplyNow}}</a>
    {{if .D.DashboardURL}}&nbsp;|&nbsp;<a href="{{.D.DashboardURL}}" style="color:#1a3c6e">{{.B.ViewDashboard}}</a>{{end}}
  </p>
</div>`))

var confirmationHTML = template.Must(template.New("confirmation").Parse(`<div style="font-family:Arial,Helvetica,sans-serif;max-width:600px;margin:0 auto;color:#222">
  <p>{{.Greeting}}</p>
  <p>{{.B.ConfirmIntro}}</p>
  <p style="font-weight:bold">{{.TicketLine}}</p>
  <p>{{.B.ResponseWindow}}</p>
  <p style="margin-bottom:4px">{{.B.ExcerptHeading}}</p>
  <blockquote style="background:#f6f8fa;padding:12px;border-left:3px solid #1a3c6e;margin:0">{{.Excerpt}}</blockquote>
  <p>{{.B.NextSteps}}</p>
  <p>{{.B.Signature}}</p>
</div>`))

type operatorView struct {
	B            bundle
	D            TemplateData
	Lines        []string
	ReplySubject string
}

type confirmationView struct {
	B          bundle
	Greeting   string
	TicketLine string
	Excerpt    string
}

// RenderOperatorNotification builds the email sent to the configured operator
// inbox: the full submission, the ticket, a mailto reply shortcut, and an
// optional dashboard link.
func RenderOperatorNotification(data TemplateData) (Message, error) {
	b := localeBundle(data.Locale)
	subject := fmt.Sprintf(b.OperatorSubject, data.Ticket, data.Subject)

	var text strings.Builder
	fmt.Fprintf(&text, "%s\n\n", b.OperatorIntro)
	fmt.Fprintf(&text, "%s: %s\n", b.LabelTicket, data.Ticket)
	fmt.Fprintf(&text, "%s: %s\n", b.LabelName, data.Name)
	fmt.Fprintf(&text, "%s: %s\n", b.LabelEmail, data.Email)
	fmt.Fprintf(&text, "%s: %s\n\n", b.LabelSubject, data.Subject)
	fmt.Fprintf(&text, "%s:\n%s\n", b.LabelMessage, data.Message)
	if data.DashboardURL != "" {
		fmt.Fprintf(&text, "\n%s: %s\n", b.ViewDashboard, data.DashboardURL)
	}

	var html strings.Builder
	view := operatorView{
		B:            b,
		D:            data,
		Lines:        strings.Split(data.Message, "\n"),
		ReplySubject: fmt.Sprintf("Re: [%s] %s", data.Ticket, data.Subject),
	}
	if err := operatorHTML.Execute(&html, view); err != nil {
		return Message{}, fmt.Errorf("render operator notification: %w", err)
	}

	return Message{Subject: subject, TextBody: text.String(), HTMLBody: html.String()}, nil
}

// RenderSubmitterConfirmation builds the acknowledgement email sent back to
// the submitter: greeting, ticket, response window, and a truncated excerpt
// of their own message.
func RenderSubmitterConfirmation(data TemplateData, excerptLimit int) (Message, error) {
	b := localeBundle(data.Locale)
	subject := fmt.Sprintf(b.ConfirmSubject, data.Ticket)
	excerpt := Excerpt(data.Message, excerptLimit)
	greeting := fmt.Sprintf(b.Greeting, data.Name)
	ticketLine := fmt.Sprintf(b.TicketLine, data.Ticket)

	var text strings.Builder
	fmt.Fprintf(&text, "%s\n\n", greeting)
	fmt.Fprintf(&text, "%s\n\n", b.ConfirmIntro)
	fmt.Fprintf(&text, "%s\n\n", ticketLine)
	fmt.Fprintf(&text, "%s\n\n", b.ResponseWindow)
	fmt.Fprintf(&text, "%s\n%s\n\n", b.ExcerptHeading, excerpt)
	fmt.Fprintf(&text, "%s\n\n%s\n", b.NextSteps, b.Signature)

	var html strings.Builder
	view := confirmationView{B: b, Greeting: greeting, TicketLine: ticketLine, Excerpt: excerpt}
	if err := confirmationHTML.Execute(&html, view); err != nil {
		return Message{}, fmt.Errorf("render submitter confirmation: %w", err)
	}

	return Message{Subject: subject, TextBody: text.String(), HTMLBody: html.String()}, nil
}

// Excerpt returns a verbatim prefix of message no longer than limit runes,
// with an ellipsis marker appended when truncation occurred.
func Excerpt(message string, limit int) string {
	if limit <= 0 {
		limit = 300
	}

	runes := []rune(message)
	if len(runes) <= limit {
		return message
	}

	return string(runes[:limit]) + "..."
}
