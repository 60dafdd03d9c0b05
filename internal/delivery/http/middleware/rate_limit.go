package middleware

import (
	"strconv"
	"time"

	"go-fontaneria-backend/internal/delivery/http/response"
	"go-fontaneria-backend/pkg/logger"
	"go-fontaneria-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// ClientKey derives the rate-limit bucket for a request: first value of
// X-Forwarded-For, then X-Real-IP, then the literal "unknown". Requests
// without proxy headers therefore share one bucket — a long-standing
// limitation kept on purpose, since the site always runs behind a proxy
// that sets these headers.
func ClientKey(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		key := fwd
		for i := 0; i < len(fwd); i++ {
			if fwd[i] == ',' {
				key = fwd[:i]
				break
			}
		}
		return key
	}
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}
	return "unknown"
}

// RateLimitMiddleware guards an endpoint with the given limiter. It runs
// before body parsing and validation on purpose: rejected submissions
// still consume window budget, so probing the validator costs attempts.
func RateLimitMiddleware(limiter *ratelimit.Limiter, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ClientKey(c)
		res := limiter.Allow(c.Request.Context(), key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Header("X-RateLimit-Reset", res.ResetAt.Format(time.RFC3339))

		if !res.Allowed {
			retryAfter := int(time.Until(res.ResetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("rate limit exceeded", "key", key, "path", c.FullPath())
			response.Error(c, 429, "Demasiadas solicitudes. Intente de nuevo más tarde.")
			c.Abort()
			return
		}

		c.Next()
	}
}
