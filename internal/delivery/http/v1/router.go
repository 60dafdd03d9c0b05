package v1

import (
	"net/http"

	"go-fontaneria-backend/config"
	"go-fontaneria-backend/internal/delivery/http/middleware"
	"go-fontaneria-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	ContentUC domain.ContentUsecase
	AdminUC   domain.AdminUsecase
	RateLimit gin.HandlerFunc // applied to the contact form route only
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")
	v1.Use(middleware.Locale())

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	NewContactHandler(v1, deps.ContactUC, deps.RateLimit)
	NewContentHandler(v1, deps.ContentUC)
	NewAdminHandler(v1, deps.AdminUC)
	NewSEOHandler(r, v1, deps.ContentUC)

	return r
}
