package email

import "go-fontaneria-backend/config"

// NewSenderFromConfig picks the delivery adapter from the environment:
// Resend when an API key is present, SMTP as the alternative, and the
// Unconfigured sender otherwise so the failure surfaces per request
// instead of at startup.
func NewSenderFromConfig(cfg *config.Config) Sender {
	if cfg.ResendAPIKey != "" {
		return NewResendSender(cfg.ResendAPIKey, cfg.ResendDomain)
	}
	if cfg.SMTPHost != "" && cfg.SMTPUsername != "" && cfg.SMTPPassword != "" {
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return Unconfigured{}
}
