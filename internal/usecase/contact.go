package usecase

import (
	"context"
	"fmt"
	"time"

	"go-fontaneria-backend/internal/domain"
	"go-fontaneria-backend/pkg/email"
	"go-fontaneria-backend/pkg/sanitize"
	"go-fontaneria-backend/pkg/validation"
)

type contactUsecase struct {
	sender       email.Sender
	businessRepo domain.BusinessRepository
	// Overrides the recipient from the business config when set.
	recipientOverride string
	// Business-local timezone for the notification footer.
	loc *time.Location
	now func() time.Time
}

// NewContactUsecase wires the contact form pipeline. loc is the timezone
// the footer timestamp is rendered in (Europe/Madrid in production).
func NewContactUsecase(sender email.Sender, businessRepo domain.BusinessRepository, recipientOverride string, loc *time.Location) domain.ContactUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &contactUsecase{
		sender:            sender,
		businessRepo:      businessRepo,
		recipientOverride: recipientOverride,
		loc:               loc,
		now:               time.Now,
	}
}

// SubmitRequest runs the pipeline: validate, sanitize, compose, dispatch.
// Each step is a hard gate; nothing later runs once a step fails. Rate
// limiting happens before this point, in the HTTP middleware, so rejected
// submissions still consume window budget.
func (uc *contactUsecase) SubmitRequest(ctx context.Context, req *domain.ContactRequest) error {
	if verr := validation.ValidateContact(req); verr != nil {
		return verr
	}

	safe := email.Notification{
		Name:    sanitize.Text(req.Name),
		Phone:   sanitize.Text(req.Phone),
		Email:   sanitize.Text(req.Email),
		Service: sanitize.Text(req.Service),
		Message: sanitize.Text(req.Message),
		Urgent:  req.Urgent,
	}

	subject, html, err := email.ComposeNotification(safe, uc.now().In(uc.loc))
	if err != nil {
		return fmt.Errorf("failed to compose notification: %w", err)
	}

	recipient := uc.recipientOverride
	if recipient == "" {
		business, err := uc.businessRepo.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load business config: %w", err)
		}
		recipient = business.Contact.Email
	}
	if recipient == "" {
		return fmt.Errorf("no notification recipient: %w", email.ErrNotConfigured)
	}

	sendCtx, cancel := context.WithTimeout(ctx, email.SendTimeout)
	defer cancel()

	if err := uc.sender.Send(sendCtx, email.Message{
		To:      recipient,
		Subject: subject,
		HTML:    html,
	}); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}

	return nil
}
