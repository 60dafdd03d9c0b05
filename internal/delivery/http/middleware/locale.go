package middleware

import (
	"go-fontaneria-backend/pkg/i18n"

	"github.com/gin-gonic/gin"
)

const localeKey = "Locale"

// Locale resolves the request language once: an explicit ?lang= parameter
// wins, otherwise Accept-Language is negotiated, with Spanish as the site
// default.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.Negotiate(c.Query("lang"), c.GetHeader("Accept-Language"))
		c.Set(localeKey, lang)
		c.Next()
	}
}

// GetLocale reads the negotiated language from the context.
func GetLocale(c *gin.Context) string {
	if lang, ok := c.Get(localeKey); ok {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return "es"
}
