// Package validation holds the hand-written format checks for the public
// contact form. Struct-tag validation (go-playground/validator) is used for
// the admin payloads; the contact form keeps these explicit ordered rules
// because the failure reason and rule order are part of the API contract.
package validation

import (
	"regexp"
	"strings"

	"go-fontaneria-backend/internal/domain"
)

var (
	// Loose phone shape: optional leading +, then at least 9 characters of
	// digits, spaces, hyphens or parentheses. Matches Spanish numbers with
	// or without country code.
	phoneRegex = regexp.MustCompile(`^[+]?[0-9\s\-()]{9,}$`)

	// Basic local@domain.tld shape. Intentionally permissive; deliverability
	// is the provider's problem.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateContact applies the contact form rules in order and returns the
// first failure. Service, message and urgency are accepted as-is.
func ValidateContact(req *domain.ContactRequest) *domain.ValidationError {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		return &domain.ValidationError{Reason: domain.ReasonMissingRequired}
	}
	if !phoneRegex.MatchString(req.Phone) {
		return &domain.ValidationError{Reason: domain.ReasonBadPhone}
	}
	if req.Email != "" && !emailRegex.MatchString(req.Email) {
		return &domain.ValidationError{Reason: domain.ReasonBadEmail}
	}
	return nil
}
