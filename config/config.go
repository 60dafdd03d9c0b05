package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Email provider configuration. Resend is the primary provider; the
	// SMTP settings are an alternative for deployments without a Resend
	// account. If neither is configured the contact form returns a
	// configuration error per request instead of failing at startup.
	ResendAPIKey string
	ResendDomain string
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	// Overrides the recipient from the business config when set.
	ContactEmailTo string
	// IANA timezone used for the notification footer timestamp.
	BusinessTimezone string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitMaxRequests   int
	// Redis/Upstash Configuration (optional, for multi-instance rate limiting)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Directory holding the editable content files (business config,
	// testimonials). Seeded from embedded defaults on first run.
	ContentDir string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Email provider configuration
		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		ResendDomain: getEnv("RESEND_DOMAIN", "arturomorgadanes.com"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		ContactEmailTo:   getEnv("CONTACT_EMAIL_TO", ""),
		BusinessTimezone: getEnv("BUSINESS_TIMEZONE", "Europe/Madrid"),
		// Rate Limiting Configuration (defaults match production behavior:
		// 5 contact requests per hour per client)
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 3600),
		RateLimitMaxRequests:   getEnvInt("RATE_LIMIT_MAX_REQUESTS", 5),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),

		ContentDir: getEnv("CONTENT_DIR", "data"),
	}

	if cfg.ResendAPIKey == "" && cfg.SMTPUsername == "" {
		log.Println("WARNING: no email provider configured. Contact form submissions will fail with a configuration error.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory storage.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
