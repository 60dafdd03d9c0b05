package v1

import (
	"errors"
	"net/http"

	"go-fontaneria-backend/internal/delivery/http/response"
	"go-fontaneria-backend/internal/domain"
	"go-fontaneria-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

// NewAdminHandler registers the admin CRUD routes for business metadata
// and testimonials. Authentication is handled by an access-control layer
// in front of this service, not here.
func NewAdminHandler(public *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := public.Group("/admin")
	{
		admin.GET("/negocio", handler.GetBusiness)
		admin.PUT("/negocio", handler.UpdateBusiness)

		admin.GET("/testimonios", handler.ListTestimonials)
		admin.POST("/testimonios", handler.CreateTestimonial)
		admin.PUT("/testimonios/:id", handler.UpdateTestimonial)
		admin.DELETE("/testimonios/:id", handler.DeleteTestimonial)
	}
}

func (h *AdminHandler) GetBusiness(c *gin.Context) {
	cfg, err := h.adminUC.GetBusiness(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Data(c, http.StatusOK, cfg)
}

func (h *AdminHandler) UpdateBusiness(c *gin.Context) {
	var cfg domain.BusinessConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.Error(apperror.BadRequest("Configuración no válida"))
		return
	}

	if err := h.adminUC.UpdateBusiness(c.Request.Context(), &cfg); err != nil {
		c.Error(mapAdminError(err, "Configuración no válida"))
		return
	}
	response.OK(c)
}

func (h *AdminHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.adminUC.ListTestimonials(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Data(c, http.StatusOK, testimonials)
}

func (h *AdminHandler) CreateTestimonial(c *gin.Context) {
	var t domain.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.Error(apperror.BadRequest("Testimonio no válido"))
		return
	}

	created, err := h.adminUC.CreateTestimonial(c.Request.Context(), &t)
	if err != nil {
		c.Error(mapAdminError(err, "Testimonio no válido"))
		return
	}
	response.Data(c, http.StatusCreated, created)
}

func (h *AdminHandler) UpdateTestimonial(c *gin.Context) {
	var t domain.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.Error(apperror.BadRequest("Testimonio no válido"))
		return
	}
	t.ID = c.Param("id")

	if err := h.adminUC.UpdateTestimonial(c.Request.Context(), &t); err != nil {
		c.Error(mapAdminError(err, "Testimonio no válido"))
		return
	}
	response.OK(c)
}

func (h *AdminHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.adminUC.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(mapAdminError(err, "Testimonio no válido"))
		return
	}
	response.OK(c)
}

// mapAdminError distinguishes struct-tag validation failures and missing
// resources from genuine server faults.
func mapAdminError(err error, badRequestMsg string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperror.BadRequest(badRequestMsg)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("No encontrado")
	}
	return err
}
