package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"staynest/internal/logger"
	"staynest/pkg/apperrors"
)

// ErrorMiddleware renders the last error attached by a handler through the error view.
func ErrorMiddleware(renderer *apperrors.GinErrorHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, _ := apperrors.Normalize(err, renderer.Debug)
		ctx := c.Request.Context()
		if status >= http.StatusInternalServerError {
			logger.CtxWithError(ctx, "Request failed", err, "path", c.Request.URL.Path, "status", status)
		} else {
			logger.CtxWarn(ctx, "Request rejected", "error", err.Error(), "path", c.Request.URL.Path, "status", status)
		}
		renderer.HandleGinError(c, err)
	}
}

// RecoveryMiddleware turns a panic into a rendered 500.
func RecoveryMiddleware(renderer *apperrors.GinErrorHandler) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := apperrors.InternalError(fmt.Errorf("panic: %v", recovered))
		logger.CtxWithError(c.Request.Context(), "Recovered from panic", err, "path", c.Request.URL.Path)
		renderer.HandleGinError(c, err)
		c.Abort()
	})
}
