package mailer

import "strings"

// Locale identifies one of the supported email languages.
type Locale string

// Supported locales. English is the fallback for absent or unknown tags.
const (
	LocaleEnglish Locale = "en"
	LocaleMalay   Locale = "ms"
)

// DefaultLocale is used when the submitted language tag is absent or unrecognized.
const DefaultLocale = LocaleEnglish

// ParseLocale resolves a raw language tag into a supported locale.
func ParseLocale(tag string) Locale {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "ms", "ms-my":
		return LocaleMalay
	case "en", "en-us", "en-gb":
		return LocaleEnglish
	default:
		return DefaultLocale
	}
}

// Ack returns the localized acknowledgement shown to the submitter in the
// HTTP response. The same text is used for honeypot-suppressed submissions so
// automated senders cannot distinguish detection from acceptance.
func Ack(locale Locale) string {
	return localeBundle(locale).Ack
}

// bundle groups every user-facing string rendered into the outgoing emails.
// Data values (name, email, subject, message, ticket) are never localized.
type bundle struct {
	Ack string

	OperatorSubject string
	OperatorIntro   string
	LabelTicket     string
	LabelName       string
	LabelEmail      string
	LabelSubject    string
	LabelMessage    string
	ReplyNow        string
	ViewDashboard   string

	ConfirmSubject  string
	Greeting        string
	ConfirmIntro    string
	TicketLine      string
	ResponseWindow  string
	ExcerptHeading  string
	NextSteps       string
	Signature       string
}

var bundles = map[Locale]bundle{
	LocaleEnglish: {
		Ack: "Thank you for reaching out. We have received your message and will respond within 24-48 business hours.",

		OperatorSubject: "New inquiry [%s]: %s",
		OperatorIntro:   "New contact form inquiry",
		LabelTicket:     "Ticket",
		LabelName:       "Name",
		LabelEmail:      "Email",
		LabelSubject:    "Subject",
		LabelMessage:    "Message",
		ReplyNow:        "Reply now",
		ViewDashboard:   "View dashboard",

		ConfirmSubject: "We received your message [%s]",
		Greeting:       "Hi %s,",
		ConfirmIntro:   "Thank you for contacting Wawasan Digital. Your message has been received and assigned the reference below.",
		TicketLine:     "Reference: %s",
		ResponseWindow: "Our team will get back to you within 24-48 business hours.",
		ExcerptHeading: "A copy of your message:",
		NextSteps:      "In the meantime, feel free to browse our services and recent work on our website. If your matter is urgent, reply to this email and keep the reference in the subject line.",
		Signature:      "The Wawasan Digital Team",
	},
	LocaleMalay: {
		Ack: "Terima kasih kerana menghubungi kami. Mesej anda telah diterima dan kami akan membalas dalam masa 24-48 jam bekerja.",

		OperatorSubject: "Pertanyaan baharu [%s]: %s",
		OperatorIntro:   "Pertanyaan baharu daripada borang hubungi",
		LabelTicket:     "Tiket",
		LabelName:       "Nama",
		LabelEmail:      "E-mel",
		LabelSubject:    "Subjek",
		LabelMessage:    "Mesej",
		ReplyNow:        "Balas sekarang",
		ViewDashboard:   "Lihat papan pemuka",

		ConfirmSubject: "Mesej anda telah diterima [%s]",
		Greeting:       "Hai %s,",
		ConfirmIntro:   "Terima kasih kerana menghubungi Wawasan Digital. Mesej anda telah diterima dan diberikan rujukan di bawah.",
		TicketLine:     "Rujukan: %s",
		ResponseWindow: "Pasukan kami akan menghubungi anda dalam masa 24-48 jam bekerja.",
		ExcerptHeading: "Salinan mesej anda:",
		NextSteps:      "Sementara itu, anda dialu-alukan untuk melihat perkhidmatan dan hasil kerja terkini kami di laman web. Jika perkara anda segera, balas e-mel ini dan kekalkan rujukan pada subjek.",
		Signature:      "Pasukan Wawasan Digital",
	},
}

func localeBundle(locale Locale) bundle {
	if b, ok := bundles[locale]; ok {
		return b
	}
	return bundles[DefaultLocale]
}
