package middleware

import (
	"errors"
	"net/http"

	"go-fontaneria-backend/internal/delivery/http/response"
	"go-fontaneria-backend/pkg/apperror"
	"go-fontaneria-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors attached to the gin context onto the API error
// shape. Client-caused failures (4xx) surface their localized message;
// anything server-caused is logged with full detail and answered with an
// opaque message so provider errors and credentials never reach the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"path", c.FullPath(),
					"status", appErr.Code,
					"error", errUnwrapped(appErr),
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err.Error())
		response.Error(c, http.StatusInternalServerError, "Error interno del servidor")
	}
}

func errUnwrapped(appErr *apperror.AppError) string {
	if appErr.Err != nil {
		return appErr.Err.Error()
	}
	return appErr.Message
}
