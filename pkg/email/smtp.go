package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
)

// SMTPSender delivers through a plain SMTP relay (Brevo-style). Kept as an
// alternative for deployments without a Resend account.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPSender builds an SMTP sender. The relay login doubles as the
// sender address, which is how Brevo expects it.
func NewSMTPSender(host, port, username, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     username,
	}
}

// Send delivers one message. The connection is dialed with the context's
// deadline so a stuck relay cannot hang the handler; smtp.SendMail is
// avoided because it offers no timeout control.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	addr := net.JoinHostPort(s.host, s.port)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return &ProviderError{Provider: "smtp", Err: err}
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return &ProviderError{Provider: "smtp", Err: err}
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return &ProviderError{Provider: "smtp", Err: err}
		}
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return &ProviderError{Provider: "smtp", Err: err}
	}

	if err := client.Mail(s.from); err != nil {
		return &ProviderError{Provider: "smtp", Err: err}
	}
	if err := client.Rcpt(msg.To); err != nil {
		return &ProviderError{Provider: "smtp", Err: err}
	}

	w, err := client.Data()
	if err != nil {
		return &ProviderError{Provider: "smtp", Err: err}
	}

	payload := fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.from, msg.To, msg.Subject, msg.HTML,
	)
	if _, err := w.Write([]byte(payload)); err != nil {
		w.Close()
		return &ProviderError{Provider: "smtp", Err: err}
	}
	if err := w.Close(); err != nil {
		return &ProviderError{Provider: "smtp", Err: err}
	}

	return client.Quit()
}
