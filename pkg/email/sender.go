// Package email composes and delivers the contact form notification.
// Delivery is abstracted behind the Sender capability so the pipeline does
// not depend on any particular provider API: production uses Resend, SMTP
// is available as an alternative, and tests inject fakes.
package email

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// SendTimeout bounds a single delivery attempt so a misbehaving provider
// cannot hang a request handler.
const SendTimeout = 10 * time.Second

// Message is a composed notification, ready for delivery. Consumed once;
// never stored.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender attempts delivery of one message and reports success or failure.
// Implementations must honor context cancellation. There is no retry at
// this layer.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ErrNotConfigured is returned when no provider credential is available.
// It is a per-request failure, not a startup failure: the rest of the site
// keeps working without an email provider.
var ErrNotConfigured = errors.New("email: no provider configured")

// ProviderError wraps a rejection or transport failure from the provider.
// Details stay server-side; callers map this to an opaque message.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("email: %s send failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Unconfigured is the Sender used when no provider credentials were
// supplied. Every send fails with ErrNotConfigured before any network I/O.
type Unconfigured struct{}

func (Unconfigured) Send(context.Context, Message) error {
	return ErrNotConfigured
}
