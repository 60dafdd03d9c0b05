package email

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// Notification holds the contact form fields for one notification email.
// All free-text fields must already be sanitized by the caller; the
// composer interpolates them into HTML as-is. text/template is used
// instead of html/template on purpose: contextual auto-escaping would
// double-encode the entities the sanitizer already produced.
type Notification struct {
	Name    string
	Phone   string
	Email   string
	Service string
	Message string
	Urgent  bool
}

type notificationView struct {
	Urgent      bool
	Name        string
	Phone       string
	Email       string
	Service     string
	MessageHTML string
	SentAt      string
}

// notificationTemplate mirrors the email layout the business has received
// since the site launched. Conditional blocks drop optional fields
// entirely instead of rendering empty sections.
const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #1d4ed8; color: white; padding: 20px; border-radius: 8px 8px 0 0; }
    .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
    .urgent { background: #fef2f2; border: 2px solid #ef4444; padding: 10px; margin-bottom: 20px; border-radius: 4px; }
    .urgent p { color: #dc2626; font-weight: bold; margin: 0; }
    .field { margin-bottom: 15px; }
    .label { font-weight: bold; color: #374151; }
    .value { color: #111827; }
    .footer { text-align: center; padding: 20px; color: #6b7280; font-size: 12px; }
    a { color: #1d4ed8; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0;">Nueva Solicitud desde la Web</h1>
    </div>
    <div class="content">
{{- if .Urgent}}
      <div class="urgent">
        <p>⚠️ EL CLIENTE INDICA QUE ES URGENTE</p>
      </div>
{{- end}}
      <div class="field">
        <p class="label">Nombre:</p>
        <p class="value">{{.Name}}</p>
      </div>
      <div class="field">
        <p class="label">Teléfono:</p>
        <p class="value"><a href="tel:{{.Phone}}">{{.Phone}}</a></p>
      </div>
{{- if .Email}}
      <div class="field">
        <p class="label">Email:</p>
        <p class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></p>
      </div>
{{- end}}
{{- if .Service}}
      <div class="field">
        <p class="label">Servicio solicitado:</p>
        <p class="value">{{.Service}}</p>
      </div>
{{- end}}
{{- if .MessageHTML}}
      <div class="field">
        <p class="label">Mensaje:</p>
        <p class="value">{{.MessageHTML}}</p>
      </div>
{{- end}}
    </div>
    <div class="footer">
      <p>Enviado desde el formulario web el {{.SentAt}}</p>
    </div>
  </div>
</body>
</html>`

var notificationTmpl = template.Must(template.New("notification").Parse(notificationTemplate))

// ComposeNotification renders the subject and HTML body for a contact form
// notification. sentAt should already be in the business's local timezone.
// Pure: no I/O, deterministic given its inputs.
func ComposeNotification(n Notification, sentAt time.Time) (subject, html string, err error) {
	subject = fmt.Sprintf("Nueva solicitud de %s", n.Name)
	if n.Urgent {
		subject = "🚨 URGENTE: " + subject
	}

	view := notificationView{
		Urgent:      n.Urgent,
		Name:        n.Name,
		Phone:       n.Phone,
		Email:       n.Email,
		Service:     n.Service,
		MessageHTML: strings.ReplaceAll(n.Message, "\n", "<br>"),
		SentAt:      sentAt.Format("02/01/2006, 15:04"),
	}

	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, view); err != nil {
		return "", "", fmt.Errorf("failed to render notification template: %w", err)
	}

	return subject, body.String(), nil
}
