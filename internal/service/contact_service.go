package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"

	"github.com/wawasandigital/contact-api/internal/dto"
	"github.com/wawasandigital/contact-api/internal/mailer"
	"github.com/wawasandigital/contact-api/internal/models"
	"github.com/wawasandigital/contact-api/internal/observability"
	"github.com/wawasandigital/contact-api/internal/repository"
)

var (
	// ErrMailerNotConfigured indicates the selected mail provider is missing credentials.
	ErrMailerNotConfigured = errors.New("mail provider is not configured")
	// ErrContactDuplicate indicates a submission with the same checksum was seen recently.
	ErrContactDuplicate = errors.New("duplicate contact submission")
)

// Submission outcomes reported in ContactResult.Status.
const (
	StatusSent       = "sent"
	StatusSuppressed = "suppressed"
)

// ContactService exposes the contact submission workflow.
type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactResult, error)
}

// Options carries the optional collaborators and tunables for the service.
// Repo, Cache, and Events may all be nil; the pipeline then runs stateless.
type Options struct {
	Repo         repository.ContactRepository
	Cache        *redis.Client
	Events       *nats.Conn
	EventSubject string

	OperatorEmail string
	FromName      string
	FromAddress   string
	DashboardURL  string

	ExcerptLimit int
	DedupeTTL    time.Duration
}

type contactService struct {
	repo         repository.ContactRepository
	cache        *redis.Client
	events       *nats.Conn
	eventSubject string
	validator    *validator.Validate
	sanitizer    *bluemonday.Policy
	mailer       mailer.Mailer
	logger       zerolog.Logger
	tracer       trace.Tracer

	operatorEmail string
	fromName      string
	fromAddress   string
	dashboardURL  string
	excerptLimit  int
	dedupeTTL     time.Duration
}

// NewContactService constructs the contact submission service.
func NewContactService(m mailer.Mailer, validate *validator.Validate, opts Options, logger zerolog.Logger) ContactService {
	if opts.ExcerptLimit <= 0 {
		opts.ExcerptLimit = 300
	}
	if opts.DedupeTTL <= 0 {
		opts.DedupeTTL = 5 * time.Minute
	}
	if opts.EventSubject == "" {
		opts.EventSubject = "contact.submitted"
	}

	return &contactService{
		repo:          opts.Repo,
		cache:         opts.Cache,
		events:        opts.Events,
		eventSubject:  opts.EventSubject,
		validator:     validate,
		sanitizer:     bluemonday.StrictPolicy(),
		mailer:        m,
		logger:        logger.With().Str("component", "contact_service").Logger(),
		tracer:        otel.Tracer("github.com/wawasandigital/contact-api/internal/service/contact"),
		operatorEmail: opts.OperatorEmail,
		fromName:      opts.FromName,
		fromAddress:   opts.FromAddress,
		dashboardURL:  opts.DashboardURL,
		excerptLimit:  opts.ExcerptLimit,
		dedupeTTL:     opts.DedupeTTL,
	}
}

// Submit runs the full pipeline for one submission: honeypot gate, ordered
// validation, provider check, duplicate suppression, ticket issuance, optional
// persistence, then operator notification followed by submitter confirmation.
// Exactly zero or two emails leave per invocation.
func (s *contactService) Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactResult, error) {
	ctx, span := s.tracer.Start(ctx, "contact.submit")
	defer span.End()

	locale := mailer.ParseLocale(req.Lang)

	// Bots fill the hidden field; answer as if accepted so detection stays invisible.
	if req.Honeypot != "" {
		span.SetStatus(codes.Ok, "suppressed")
		observability.ContactSubmissions().WithLabelValues("spam").Inc()
		s.logger.Info().Str("ip", req.IPAddress).Msg("submission suppressed by honeypot")
		return dto.ContactResult{Lang: string(locale), Status: StatusSuppressed, Ack: mailer.Ack(locale)}, nil
	}

	if verr := s.validateSubmission(req); verr != nil {
		span.SetStatus(codes.Error, "validation failed")
		observability.ContactSubmissions().WithLabelValues("invalid").Inc()
		return dto.ContactResult{}, verr
	}

	if !s.mailer.Enabled() {
		span.SetStatus(codes.Error, "mailer not configured")
		observability.ContactSubmissions().WithLabelValues("error").Inc()
		s.logger.Error().Msg("mail provider credentials are missing")
		return dto.ContactResult{}, ErrMailerNotConfigured
	}

	name := s.stripMarkup(strings.TrimSpace(req.Name))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	subject := s.stripMarkup(strings.TrimSpace(req.Subject))
	message := s.stripMarkup(strings.TrimSpace(req.Message))

	checksum := submissionChecksum(name, email, message)
	span.SetAttributes(attribute.String("contact.checksum", checksum))

	dedupeKey := fmt.Sprintf("contact:dedupe:%s", checksum)
	if s.cache != nil {
		ok, err := s.cache.SetNX(ctx, dedupeKey, 1, s.dedupeTTL).Result()
		if err != nil {
			span.RecordError(err)
			observability.ContactSubmissions().WithLabelValues("error").Inc()
			return dto.ContactResult{}, fmt.Errorf("dedupe check: %w", err)
		}
		if !ok {
			span.SetStatus(codes.Error, "duplicate submission")
			observability.ContactSubmissions().WithLabelValues("duplicate").Inc()
			return dto.ContactResult{}, ErrContactDuplicate
		}
	}

	ticket := NewTicket(time.Now())
	span.SetAttributes(attribute.String("contact.ticket", ticket))

	var stored *models.ContactMessage
	if s.repo != nil {
		record := models.ContactMessage{
			Ticket:   ticket,
			Name:     name,
			Email:    email,
			Subject:  subject,
			Message:  message,
			Lang:     string(locale),
			Status:   models.ContactStatusReceived,
			Checksum: checksum,
			Meta:     datatypes.JSONMap{"ip": req.IPAddress, "user_agent": req.UserAgent},
		}
		if err := s.repo.Create(ctx, &record); err != nil {
			// The emails are the system of record; a failed copy must not block delivery.
			span.RecordError(err)
			s.logger.Warn().Err(err).Str("ticket", ticket).Msg("failed to persist contact message")
		} else {
			stored = &record
		}
	}

	data := mailer.TemplateData{
		Name:         name,
		Email:        email,
		Subject:      subject,
		Message:      message,
		Ticket:       ticket,
		Locale:       locale,
		DashboardURL: s.dashboardURL,
	}

	notification, err := mailer.RenderOperatorNotification(data)
	if err != nil {
		return dto.ContactResult{}, s.dispatchFailed(ctx, span, stored, ticket, dedupeKey, err)
	}
	notification.FromName = s.fromName
	notification.FromAddress = s.fromAddress
	notification.To = s.operatorEmail
	notification.ReplyTo = email

	confirmation, err := mailer.RenderSubmitterConfirmation(data, s.excerptLimit)
	if err != nil {
		return dto.ContactResult{}, s.dispatchFailed(ctx, span, stored, ticket, dedupeKey, err)
	}
	confirmation.FromName = s.fromName
	confirmation.FromAddress = s.fromAddress
	confirmation.To = email

	// Operator first; a failure on either send fails the submission as a whole.
	for _, outbound := range []mailer.Message{notification, confirmation} {
		if err := s.mailer.Send(ctx, outbound); err != nil {
			return dto.ContactResult{}, s.dispatchFailed(ctx, span, stored, ticket, dedupeKey, err)
		}
	}

	if stored != nil {
		if err := s.repo.UpdateStatus(ctx, stored.ID, models.ContactStatusSent); err != nil {
			s.logger.Warn().Err(err).Str("ticket", ticket).Msg("failed to update contact message status")
		}
	}

	s.publishEvent(ctx, ticket, email, locale)

	observability.ContactSubmissions().WithLabelValues("sent").Inc()
	s.logger.Info().
		Str("ticket", ticket).
		Str("email", maskEmailAddress(email)).
		Str("lang", string(locale)).
		Msg("contact submission delivered")
	span.SetStatus(codes.Ok, "delivered")

	return dto.ContactResult{Ticket: ticket, Lang: string(locale), Status: StatusSent, Ack: mailer.Ack(locale)}, nil
}

// dispatchFailed records the failure, releases the dedupe key so the user can
// resubmit, and marks the stored copy failed. The returned error is generic at
// the transport; the cause stays in the server log.
func (s *contactService) dispatchFailed(ctx context.Context, span trace.Span, stored *models.ContactMessage, ticket, dedupeKey string, cause error) error {
	span.RecordError(cause)
	span.SetStatus(codes.Error, "dispatch failed")
	observability.ContactSubmissions().WithLabelValues("error").Inc()

	if s.cache != nil {
		if err := s.cache.Del(ctx, dedupeKey).Err(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to release dedupe key")
		}
	}

	if stored != nil {
		if err := s.repo.UpdateStatus(ctx, stored.ID, models.ContactStatusFailed); err != nil {
			s.logger.Warn().Err(err).Str("ticket", ticket).Msg("failed to update contact message status")
		}
	}

	s.logger.Error().Err(cause).Str("ticket", ticket).Msg("contact email dispatch failed")
	return fmt.Errorf("dispatch contact emails: %w", cause)
}

type contactEvent struct {
	Ticket string    `json:"ticket"`
	Email  string    `json:"email"`
	Lang   string    `json:"lang"`
	SentAt time.Time `json:"sent_at"`
}

// publishEvent emits a best-effort submission event for back-office consumers.
func (s *contactService) publishEvent(ctx context.Context, ticket, email string, locale mailer.Locale) {
	if s.events == nil {
		return
	}

	payload, err := json.Marshal(contactEvent{
		Ticket: ticket,
		Email:  maskEmailAddress(email),
		Lang:   string(locale),
		SentAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode contact event")
		return
	}

	if err := s.events.Publish(s.eventSubject, payload); err != nil {
		s.logger.Warn().Err(err).Str("subject", s.eventSubject).Msg("failed to publish contact event")
	}
}

// stripMarkup removes any HTML from a free-text value while keeping plain
// characters (quotes, apostrophes) intact for the text rendering.
func (s *contactService) stripMarkup(value string) string {
	return html.UnescapeString(s.sanitizer.Sanitize(value))
}

func submissionChecksum(parts ...string) string {
	hasher := sha256.New()
	for _, part := range parts {
		hasher.Write([]byte(strings.TrimSpace(strings.ToLower(part))))
		hasher.Write([]byte("|"))
	}
	return hex.EncodeToString(hasher.Sum(nil))
}
