package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers through the Resend transactional email API, the
// provider the website runs on in production.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender builds a sender for the given API key. domain is the
// verified sending domain; the From header is always "Web <noreply@domain>".
func NewResendSender(apiKey, domain string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   fmt.Sprintf("Web <noreply@%s>", domain),
	}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return &ProviderError{Provider: "resend", Err: err}
	}
	return nil
}
