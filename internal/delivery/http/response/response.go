package response

import (
	"github.com/gin-gonic/gin"
)

// Response shapes match what the website frontend has always consumed:
// a bare `{"success": true}` acknowledgment for the contact form, raw
// payloads for content reads and `{"error": "..."}` for every failure.

// OK acknowledges a side-effecting request.
func OK(c *gin.Context) {
	c.JSON(200, gin.H{"success": true})
}

// Data sends a raw JSON payload.
func Data(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

// Error sends a failure with a human-readable, localized message.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
