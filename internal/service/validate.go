package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/wawasandigital/contact-api/internal/dto"
)

// Field length bounds for a submission.
const (
	maxNameLength    = 100
	maxEmailLength   = 100
	maxSubjectLength = 200
	maxMessageLength = 2000
)

// ValidationError reports a client-correctable problem with a submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// nameCharacters allows letters, whitespace, and - ' . ( ) only.
var nameCharacters = regexp.MustCompile(`^[\p{L}\s\-'.()]+$`)

type fieldRule struct {
	name  string
	label string
	value string
	max   int
}

// validateSubmission applies the submission rules in a fixed order: presence
// of every field, then length bounds, then email shape, then name shape. The
// first violated rule wins; evaluation is deterministic and side-effect free.
// The honeypot is checked by the caller before anything else.
func (s *contactService) validateSubmission(req dto.ContactRequest) *ValidationError {
	rules := []fieldRule{
		{"name", "Name", req.Name, maxNameLength},
		{"email", "Email", req.Email, maxEmailLength},
		{"subject", "Subject", req.Subject, maxSubjectLength},
		{"message", "Message", req.Message, maxMessageLength},
	}

	for _, rule := range rules {
		if strings.TrimSpace(rule.value) == "" {
			return &ValidationError{Field: rule.name, Message: "All fields are required"}
		}
	}

	for _, rule := range rules {
		if utf8.RuneCountInString(rule.value) > rule.max {
			return &ValidationError{
				Field:   rule.name,
				Message: fmt.Sprintf("%s is too long (maximum %d characters)", rule.label, rule.max),
			}
		}
	}

	email := strings.TrimSpace(req.Email)
	if strings.ContainsAny(email, " \t\n") || s.validator.Var(email, "required,email") != nil {
		return &ValidationError{Field: "email", Message: "Invalid email address"}
	}

	if !nameCharacters.MatchString(strings.TrimSpace(req.Name)) {
		return &ValidationError{Field: "name", Message: "Name contains invalid characters"}
	}

	return nil
}
