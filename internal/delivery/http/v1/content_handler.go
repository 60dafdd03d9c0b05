package v1

import (
	"errors"
	"net/http"
	"strconv"

	"go-fontaneria-backend/internal/delivery/http/middleware"
	"go-fontaneria-backend/internal/delivery/http/response"
	"go-fontaneria-backend/internal/domain"
	"go-fontaneria-backend/pkg/apperror"
	"go-fontaneria-backend/pkg/i18n"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUC domain.ContentUsecase
}

// NewContentHandler registers the public read-only content API consumed
// by the website pages.
func NewContentHandler(public *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{contentUC: contentUC}

	public.GET("/negocio", handler.GetBusiness)
	public.GET("/servicios", handler.ListServices)
	public.GET("/servicios/:slug", handler.GetService)
	public.GET("/zonas", handler.ListCities)
	public.GET("/zonas/:slug", handler.GetCity)
	public.GET("/testimonios", handler.ListTestimonials)
	public.GET("/traducciones", handler.GetTranslations)
}

func (h *ContentHandler) GetBusiness(c *gin.Context) {
	business, err := h.contentUC.GetBusiness(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Data(c, http.StatusOK, business)
}

func (h *ContentHandler) ListServices(c *gin.Context) {
	services, err := h.contentUC.ListServices(c.Request.Context(), middleware.GetLocale(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Data(c, http.StatusOK, services)
}

func (h *ContentHandler) GetService(c *gin.Context) {
	detail, err := h.contentUC.GetService(c.Request.Context(), c.Param("slug"), middleware.GetLocale(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Servicio no encontrado"))
			return
		}
		c.Error(err)
		return
	}
	response.Data(c, http.StatusOK, detail)
}

func (h *ContentHandler) ListCities(c *gin.Context) {
	cities, err := h.contentUC.ListCities(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Data(c, http.StatusOK, cities)
}

func (h *ContentHandler) GetCity(c *gin.Context) {
	city, err := h.contentUC.GetCity(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Zona no encontrada"))
			return
		}
		c.Error(err)
		return
	}
	response.Data(c, http.StatusOK, city)
}

func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	testimonials, err := h.contentUC.ListTestimonials(c.Request.Context(), middleware.GetLocale(c), limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Data(c, http.StatusOK, testimonials)
}

// GetTranslations serves the flat UI string table for the negotiated
// language, so the frontend fetches its strings in one request.
func (h *ContentHandler) GetTranslations(c *gin.Context) {
	response.Data(c, http.StatusOK, i18n.Strings(middleware.GetLocale(c)))
}
