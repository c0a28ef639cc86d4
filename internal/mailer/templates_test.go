package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testData() TemplateData {
	return TemplateData{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Subject:      "Pricing",
		Message:      "How much for X?\nAnd for Y?",
		Ticket:       "TKT-ABC123-WXYZ",
		Locale:       LocaleEnglish,
		DashboardURL: "https://admin.wawasandigital.example/messages",
	}
}

func TestParseLocale(t *testing.T) {
	require.Equal(t, LocaleEnglish, ParseLocale("en"))
	require.Equal(t, LocaleEnglish, ParseLocale("EN-us"))
	require.Equal(t, LocaleMalay, ParseLocale("ms"))
	require.Equal(t, LocaleMalay, ParseLocale(" MS-MY "))
	require.Equal(t, DefaultLocale, ParseLocale(""))
	require.Equal(t, DefaultLocale, ParseLocale("de"))
}

func TestRenderOperatorNotification(t *testing.T) {
	msg, err := RenderOperatorNotification(testData())
	require.NoError(t, err)

	require.Contains(t, msg.Subject, "TKT-ABC123-WXYZ")
	require.Contains(t, msg.Subject, "Pricing")

	require.Contains(t, msg.TextBody, "Jane Doe")
	require.Contains(t, msg.TextBody, "jane@example.com")
	require.Contains(t, msg.TextBody, "How much for X?")

	require.Contains(t, msg.HTMLBody, `href="mailto:jane@example.com"`)
	require.Contains(t, msg.HTMLBody, "TKT-ABC123-WXYZ")
	require.Contains(t, msg.HTMLBody, "https://admin.wawasandigital.example/messages")
	// Newlines become line breaks in the HTML rendering.
	require.Contains(t, msg.HTMLBody, "How much for X?<br>And for Y?<br>")
}

func TestRenderOperatorNotificationEscapesHTML(t *testing.T) {
	data := testData()
	data.Message = "a <b>bold</b> claim"

	msg, err := RenderOperatorNotification(data)
	require.NoError(t, err)
	require.NotContains(t, msg.HTMLBody, "<b>bold</b>")
	require.Contains(t, msg.HTMLBody, "&lt;b&gt;bold&lt;/b&gt;")
}

func TestRenderSubmitterConfirmation(t *testing.T) {
	msg, err := RenderSubmitterConfirmation(testData(), 300)
	require.NoError(t, err)

	require.Contains(t, msg.Subject, "TKT-ABC123-WXYZ")
	require.Contains(t, msg.TextBody, "Hi Jane Doe,")
	require.Contains(t, msg.TextBody, "24-48 business hours")
	require.Contains(t, msg.TextBody, "How much for X?")
	require.Contains(t, msg.HTMLBody, "TKT-ABC123-WXYZ")
}

func TestRenderSubmitterConfirmationMalay(t *testing.T) {
	data := testData()
	data.Locale = LocaleMalay

	msg, err := RenderSubmitterConfirmation(data, 300)
	require.NoError(t, err)
	require.Contains(t, msg.Subject, "Mesej anda telah diterima")
	require.Contains(t, msg.TextBody, "Hai Jane Doe,")
	require.Contains(t, msg.TextBody, "24-48 jam bekerja")
}

func TestRenderSubmitterConfirmationTruncates(t *testing.T) {
	data := testData()
	data.Message = strings.Repeat("x", 500)

	msg, err := RenderSubmitterConfirmation(data, 300)
	require.NoError(t, err)
	require.Contains(t, msg.TextBody, strings.Repeat("x", 300)+"...")
	require.NotContains(t, msg.TextBody, strings.Repeat("x", 301))
}

func TestExcerpt(t *testing.T) {
	require.Equal(t, "short", Excerpt("short", 300))

	long := strings.Repeat("a", 350)
	got := Excerpt(long, 300)
	require.Len(t, got, 303)
	require.True(t, strings.HasSuffix(got, "..."))
	require.Equal(t, long[:300], strings.TrimSuffix(got, "..."))

	// Rune-safe truncation for multibyte input.
	unicode := strings.Repeat("ä", 10)
	require.Equal(t, strings.Repeat("ä", 4)+"...", Excerpt(unicode, 4))

	// Exact boundary is not truncated.
	require.Equal(t, strings.Repeat("b", 300), Excerpt(strings.Repeat("b", 300), 300))
}

func TestAck(t *testing.T) {
	require.Contains(t, Ack(LocaleEnglish), "24-48 business hours")
	require.Contains(t, Ack(LocaleMalay), "24-48 jam bekerja")
	require.Equal(t, Ack(DefaultLocale), Ack(Locale("unknown")))
}
