package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"staynest/internal/config"
	"staynest/internal/database"
	"staynest/internal/handlers"
	"staynest/internal/logger"
	"staynest/internal/middleware"
	"staynest/internal/repositories"
	"staynest/internal/routes"
	"staynest/internal/services"
	"staynest/internal/validator"
	"staynest/internal/views"
	"staynest/internal/workers"
	"staynest/pkg/apperrors"
)

func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Disconnect(client, cfg.Database.Timeout)

	db := client.Database(cfg.Database.Name)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("Failed to ensure indexes", "error", err)
	}

	listingRepo := repositories.NewListingRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	ginRouter, err := SetupRouter(cfg, listingRepo, reviewRepo)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	workers.NewReviewWorker(listingRepo, reviewRepo, cfg.Workers.ReviewCleanupInterval, cfg.Workers.ReviewCleanupGrace).Start(ctx)

	srv := &http.Server{
		Addr:    cfg.Address(),
		Handler: Handler(ginRouter),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", cfg.Address())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("Server startup error", "error", err)
			return
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
		return
	}
	logger.Info("Server stopped")
}

// SetupRouter wires services, handlers and middleware on top of the given repositories.
func SetupRouter(cfg *config.Config, listingRepo repositories.ListingRepository, reviewRepo repositories.ReviewRepository) (*gin.Engine, error) {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	serviceContainer := services.NewServiceContainer(listingRepo, reviewRepo)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New(validator.Options{
		AllowUnknown: cfg.Validation.AllowUnknown,
	}))

	ginRouter, err := initializeGinRouter(cfg)
	if err != nil {
		return nil, err
	}
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter, nil
}

// Handler applies the method override ahead of gin's routing.
func Handler(ginRouter *gin.Engine) http.Handler {
	return middleware.MethodOverride(ginRouter)
}

func initializeGinRouter(cfg *config.Config) (*gin.Engine, error) {
	templates, err := views.Templates()
	if err != nil {
		return nil, err
	}

	renderer := &apperrors.GinErrorHandler{Debug: cfg.IsDevelopment()}

	router := gin.New()
	router.SetHTMLTemplate(templates)
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware(renderer))
	router.Use(middleware.ErrorMiddleware(renderer))
	return router, nil
}
