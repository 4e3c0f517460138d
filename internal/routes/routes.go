package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staynest/internal/handlers"
	"staynest/internal/logger"
	"staynest/internal/views"
	"staynest/pkg/apperrors"
)

// RegisterRoutes registers the page routes, static assets and the fallback 404.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/listings")
	})

	appHandlers.ListingHandler.RegisterRoutes(ginRouter)
	appHandlers.ReviewHandler.RegisterRoutes(ginRouter)

	assets := http.FS(views.Static())
	ginRouter.StaticFileFS("/css/style.css", "css/style.css", assets)
	ginRouter.StaticFileFS("/js/script.js", "js/script.js", assets)

	ginRouter.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrPageNotFound)
	})

	logger.Debug("Routes registered", "count", len(ginRouter.Routes()))
}
