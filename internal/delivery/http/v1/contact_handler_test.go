package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-fontaneria-backend/config"
	"go-fontaneria-backend/internal/delivery/http/middleware"
	v1 "go-fontaneria-backend/internal/delivery/http/v1"
	"go-fontaneria-backend/internal/repository/flatfile"
	"go-fontaneria-backend/internal/usecase"
	"go-fontaneria-backend/pkg/email"
	"go-fontaneria-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

// newTestRouter builds the full router over the embedded seed content with
// the given sender and rate limit, so tests exercise the real middleware
// chain end to end.
func newTestRouter(t *testing.T, sender email.Sender, maxRequests int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := flatfile.New("")
	require.NoError(t, err)

	businessRepo := flatfile.NewBusinessRepository(store)
	serviceRepo := flatfile.NewServiceRepository(store)
	cityRepo := flatfile.NewCityRepository(store)
	testimonialRepo := flatfile.NewTestimonialRepository(store)

	memStore := ratelimit.NewMemoryStore(
		ratelimit.Config{Window: ratelimit.DefaultConfig().Window, Max: maxRequests},
		ratelimit.WithSweepInterval(0),
	)
	t.Cleanup(memStore.Close)
	limiter := ratelimit.New(nil, memStore)

	return v1.NewRouter(v1.RouterDeps{
		ContactUC: usecase.NewContactUsecase(sender, businessRepo, "", nil),
		ContentUC: usecase.NewContentUsecase(serviceRepo, cityRepo, testimonialRepo, businessRepo),
		AdminUC:   usecase.NewAdminUsecase(businessRepo, testimonialRepo, validator.New()),
		RateLimit: middleware.RateLimitMiddleware(limiter, maxRequests),
		Config:    &config.Config{FrontendURL: "http://localhost:3000"},
	})
}

func postContact(router *gin.Engine, body, clientIP string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/contacto", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if clientIP != "" {
		req.Header.Set("X-Forwarded-For", clientIP)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitContact(t *testing.T) {
	t.Run("valid request dispatches one notification", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
		router := newTestRouter(t, sender, 5)

		w := postContact(router, `{"nombre":"Ana García","telefono":"612345678"}`, "203.0.113.7")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
		sender.AssertExpectations(t)

		msg := sender.Calls[0].Arguments.Get(1).(email.Message)
		assert.Equal(t, "info@arturomorgadanes.es", msg.To)
		assert.Contains(t, msg.Subject, "Ana García")
		assert.NotContains(t, msg.Subject, "URGENTE")
		assert.NotContains(t, msg.HTML, "EL CLIENTE INDICA QUE ES URGENTE")
	})

	t.Run("urgent request is flagged in subject and body", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
		router := newTestRouter(t, sender, 5)

		w := postContact(router, `{"nombre":"Ana","telefono":"612345678","urgente":true}`, "203.0.113.7")

		assert.Equal(t, http.StatusOK, w.Code)
		msg := sender.Calls[0].Arguments.Get(1).(email.Message)
		assert.True(t, strings.HasPrefix(msg.Subject, "🚨 URGENTE:"))
		assert.Contains(t, msg.HTML, "EL CLIENTE INDICA QUE ES URGENTE")
	})

	t.Run("invalid submissions are rejected before dispatch", func(t *testing.T) {
		cases := []struct {
			name    string
			body    string
			wantMsg string
		}{
			{"missing name", `{"nombre":"","telefono":"612345678"}`, "Nombre y teléfono son obligatorios"},
			{"missing phone", `{"nombre":"Ana"}`, "Nombre y teléfono son obligatorios"},
			{"bad phone", `{"nombre":"Ana","telefono":"12ab"}`, "Número de teléfono no válido"},
			{"bad email", `{"nombre":"Ana","telefono":"612345678","email":"not-an-email"}`, "Email no válido"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				sender := new(MockSender)
				router := newTestRouter(t, sender, 5)

				w := postContact(router, tc.body, "203.0.113.7")

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.JSONEq(t, `{"error":"`+tc.wantMsg+`"}`, w.Body.String())
				sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("malformed JSON is a bad request", func(t *testing.T) {
		sender := new(MockSender)
		router := newTestRouter(t, sender, 5)

		w := postContact(router, `{"nombre":`, "203.0.113.7")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Solicitud no válida"}`, w.Body.String())
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("sixth rapid request from one client is rate limited", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(nil)
		router := newTestRouter(t, sender, 5)

		body := `{"nombre":"Ana","telefono":"612345678"}`
		for i := 0; i < 5; i++ {
			w := postContact(router, body, "203.0.113.7")
			assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		}

		w := postContact(router, body, "203.0.113.7")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"error":"Demasiadas solicitudes. Intente de nuevo más tarde."}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("Retry-After"))

		sender.AssertNumberOfCalls(t, "Send", 5)
	})

	t.Run("rate limit buckets are per client", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(nil)
		router := newTestRouter(t, sender, 1)

		body := `{"nombre":"Ana","telefono":"612345678"}`
		assert.Equal(t, http.StatusOK, postContact(router, body, "203.0.113.7").Code)
		assert.Equal(t, http.StatusTooManyRequests, postContact(router, body, "203.0.113.7").Code)
		assert.Equal(t, http.StatusOK, postContact(router, body, "203.0.113.8").Code)
	})

	t.Run("rejected submissions still consume window budget", func(t *testing.T) {
		sender := new(MockSender)
		router := newTestRouter(t, sender, 1)

		assert.Equal(t, http.StatusBadRequest, postContact(router, `{"nombre":""}`, "203.0.113.7").Code)
		assert.Equal(t, http.StatusTooManyRequests, postContact(router, `{"nombre":""}`, "203.0.113.7").Code)
	})

	t.Run("missing email provider is a configuration error", func(t *testing.T) {
		router := newTestRouter(t, email.Unconfigured{}, 5)

		w := postContact(router, `{"nombre":"Ana","telefono":"612345678"}`, "203.0.113.7")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Error de configuración del servidor"}`, w.Body.String())
	})

	t.Run("provider failure is opaque to the client", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).
			Return(&email.ProviderError{Provider: "resend", Err: context.DeadlineExceeded}).Once()
		router := newTestRouter(t, sender, 5)

		w := postContact(router, `{"nombre":"Ana","telefono":"612345678"}`, "203.0.113.7")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Error al enviar el mensaje"}`, w.Body.String())
		sender.AssertNumberOfCalls(t, "Send", 1)
	})
}
