package v1

import (
	"errors"

	"go-fontaneria-backend/internal/delivery/http/response"
	"go-fontaneria-backend/internal/domain"
	"go-fontaneria-backend/pkg/apperror"
	"go-fontaneria-backend/pkg/email"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact form route. rateLimit runs
// first so every submission attempt, valid or not, counts against the
// client's window.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, rateLimit gin.HandlerFunc) {
	handler := &ContactHandler{contactUC: contactUC}

	public.POST("/contacto", rateLimit, handler.SubmitContact)
}

// SubmitContact handles a contact form submission end to end: decode,
// validate, sanitize, compose and dispatch the notification email.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Solicitud no válida"))
		return
	}

	if err := h.contactUC.SubmitRequest(c.Request.Context(), &req); err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			c.Error(apperror.BadRequest(verr.Message()))
		case errors.Is(err, email.ErrNotConfigured):
			c.Error(apperror.Internal("Error de configuración del servidor", err))
		default:
			c.Error(apperror.Internal("Error al enviar el mensaje", err))
		}
		return
	}

	response.OK(c)
}
