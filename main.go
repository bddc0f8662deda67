// File: tutorhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorhub/config"
	"tutorhub/database"
	availabilityRepo "tutorhub/database/repository/availability"
	"tutorhub/handlers"
	"tutorhub/middleware"
	"tutorhub/routes"
	"tutorhub/services/availability"
	"tutorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	window := cfg.Window()

	repo, err := openRepository(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open %s storage: %v", cfg.StorageDriver, err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = database.CloseDB(ctx)
	}()
	logger.Info("Availability storage ready", zap.String("driver", repo.Name()))

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	monitor := utils.NewHealthMonitor(repo)
	monitor.Start(shutdownCtx, time.Minute)

	// services.
	sessions := availability.NewSessions(repo, cfg.StorageKeyPrefix, window, logger)
	availabilityService := &availability.Controller{
		Sessions:        sessions,
		DefaultWeekdays: cfg.WeekdayDefaults(),
		NoticeTTL:       cfg.NoticeTTL(),
		Loc:             cfg.Location(),
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, cfg.DefaultNamespace)
	handlerBundle := handlers.NewHandlerBundle(
		availabilityHandler,
		handlers.HealthHandler(monitor),
		middleware.TutorNamespaceMiddleware(cfg.AuthRequired, cfg.DefaultNamespace),
	)
	routes.RegisterRoutes(router, handlerBundle)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	<-shutdownCtx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
		os.Exit(1)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// openRepository connects whatever backend STORAGE_DRIVER selects.
func openRepository(cfg config.Config) (availabilityRepo.Repository, error) {
	opts := availabilityRepo.Options{Driver: cfg.StorageDriver, DataDir: cfg.DataDir}

	switch cfg.StorageDriver {
	case availabilityRepo.DriverRedis:
		client, err := utils.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		opts.Redis = client
	case availabilityRepo.DriverMongo:
		db, err := database.InitDB(cfg.DatabaseURL, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		opts.MongoDB = db
	}
	return availabilityRepo.Open(opts)
}
