// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artisanhub/config"
	"artisanhub/database"
	"artisanhub/database/repository"
	"artisanhub/handlers"
	"artisanhub/middleware"
	"artisanhub/routes"
	"artisanhub/services/artisan"
	"artisanhub/services/booking"
	"artisanhub/services/user"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	store := openBlobStore(logger)
	repos := repository.New(store)

	ctx := context.Background()
	if config.AppConfig.SeedDemoData {
		if err := repository.SeedDemoData(ctx, store); err != nil {
			logger.Sugar().Fatalf("main: failed to seed demo data: %v", err)
		}
	}

	// services.
	userService := &user.DefaultUserService{
		Users:    repos.Users,
		Session:  repos.Session,
		Bookings: repos.Bookings,
		Artisans: repos.Artisans,
	}
	artisanService := &artisan.DefaultArtisanService{Repo: repos.Artisans}
	bookingService := &booking.DefaultBookingService{
		Repo:     repos.Bookings,
		Artisans: repos.Artisans,
	}

	// Restore a session a previous run left behind, then bring the advisory
	// per-user caches back in line with the authoritative collections.
	if current, err := userService.CurrentUser(ctx); err != nil {
		logger.Warn("main: could not restore session", zap.Error(err))
	} else if current != nil {
		logger.Info("main: restored session", zap.String("userID", current.ID))
	}
	if err := userService.RebuildUserCaches(ctx); err != nil {
		logger.Warn("main: cache rebuild failed", zap.Error(err))
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := handlers.NewHandlerBundle(repos, userService, artisanService, bookingService)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// openBlobStore picks the persistence backend from configuration.
func openBlobStore(logger *zap.Logger) database.BlobStore {
	switch config.AppConfig.StoreBackend {
	case "redis":
		store, err := database.NewRedisBlobStore()
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		return store
	case "memory":
		return database.NewMemoryBlobStore()
	default:
		store, err := database.NewFileBlobStore(config.AppConfig.DataDir)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		return store
	}
}
