package middleware

import (
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the website frontend to call this API from another
// origin. The allowed origins are the production domains plus the
// configured frontend URL (localhost during development).
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	allowed := map[string]bool{
		"https://arturomorgadanes.com":     true,
		"https://www.arturomorgadanes.com": true,
		"https://arturomorgadanes.es":      true,
		"https://www.arturomorgadanes.es":  true,
	}
	if frontendURL != "" {
		allowed[frontendURL] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Same-origin requests carry no Origin header and need no CORS.
		if origin != "" && allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Accept-Language, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			c.Header("Access-Control-Max-Age", "86400")
		}

		// Caches must differentiate by origin.
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if origin == "" || allowed[origin] {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
