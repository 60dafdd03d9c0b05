package domain

import (
	"context"
	"errors"
	"fmt"
)

// ContactRequest is a contact form submission as received from the public
// website. Field names are the Spanish form field names; nothing here is
// trusted until it passes validation.
type ContactRequest struct {
	Name    string `json:"nombre"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
	Service string `json:"servicio"`
	Message string `json:"mensaje"`
	Urgent  bool   `json:"urgente"`
}

// ValidationReason identifies which validation rule rejected a request.
type ValidationReason string

const (
	ReasonMissingRequired ValidationReason = "missing_required"
	ReasonBadPhone        ValidationReason = "bad_phone"
	ReasonBadEmail        ValidationReason = "bad_email"
)

// ValidationError carries the first failed rule for a contact request.
type ValidationError struct {
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contact validation failed: %s", e.Reason)
}

// Message returns the localized (Spanish) message shown to the caller.
func (e *ValidationError) Message() string {
	switch e.Reason {
	case ReasonMissingRequired:
		return "Nombre y teléfono son obligatorios"
	case ReasonBadPhone:
		return "Número de teléfono no válido"
	case ReasonBadEmail:
		return "Email no válido"
	default:
		return "Solicitud no válida"
	}
}

// ErrRateLimited signals that the client exhausted its request window.
var ErrRateLimited = errors.New("too many requests")

// ContactUsecase defines the contact form pipeline: validate, sanitize,
// compose the notification and hand it to the email provider.
type ContactUsecase interface {
	SubmitRequest(ctx context.Context, req *ContactRequest) error
}
