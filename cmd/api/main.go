package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-fontaneria-backend/config"
	"go-fontaneria-backend/internal/delivery/http/middleware"
	v1 "go-fontaneria-backend/internal/delivery/http/v1"
	"go-fontaneria-backend/internal/repository/flatfile"
	"go-fontaneria-backend/internal/usecase"
	"go-fontaneria-backend/pkg/email"
	"go-fontaneria-backend/pkg/logger"
	"go-fontaneria-backend/pkg/ratelimit"
	"go-fontaneria-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting fontaneria backend", "port", cfg.Port)

	// 3. Setup Content Store
	store, err := flatfile.New(cfg.ContentDir)
	if err != nil {
		logger.Log.Error("Failed to load content store", "error", err)
		os.Exit(1)
	}

	// 4. Setup Repositories
	businessRepo := flatfile.NewBusinessRepository(store)
	serviceRepo := flatfile.NewServiceRepository(store)
	cityRepo := flatfile.NewCityRepository(store)
	testimonialRepo := flatfile.NewTestimonialRepository(store)

	// 5. Setup Rate Limiter (Redis when configured, in-memory otherwise)
	rlConfig := ratelimit.Config{
		Window: time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
		Max:    cfg.RateLimitMaxRequests,
	}
	memoryStore := ratelimit.NewMemoryStore(rlConfig)
	defer memoryStore.Close()

	var redisStore ratelimit.Store
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		} else {
			redisStore = ratelimit.NewRedisStore(redis.Client(), rlConfig)
			logger.Log.Info("Rate limiting backed by Redis")
		}
	}
	limiter := ratelimit.New(redisStore, memoryStore)

	// 6. Setup Email Sender
	sender := email.NewSenderFromConfig(cfg)

	// 7. Setup UseCases
	loc, err := time.LoadLocation(cfg.BusinessTimezone)
	if err != nil {
		logger.Log.Warn("Invalid BUSINESS_TIMEZONE, using UTC", "timezone", cfg.BusinessTimezone)
		loc = time.UTC
	}

	validate := validator.New()
	contactUC := usecase.NewContactUsecase(sender, businessRepo, cfg.ContactEmailTo, loc)
	contentUC := usecase.NewContentUsecase(serviceRepo, cityRepo, testimonialRepo, businessRepo)
	adminUC := usecase.NewAdminUsecase(businessRepo, testimonialRepo, validate)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ContentUC: contentUC,
		AdminUC:   adminUC,
		RateLimit: middleware.RateLimitMiddleware(limiter, cfg.RateLimitMaxRequests),
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
