package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resort-admin/config"
	"resort-admin/controllers"
	"resort-admin/middleware"
	"resort-admin/routes"
	"resort-admin/services"
)

func main() {
	cfg := config.Load()

	log, err := config.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(cfg.DB, log)
	if err != nil {
		log.Fatal("database connect failed", zap.Error(err))
	}
	if err := config.Migrate(db); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}
	if err := config.SeedDatabase(db, cfg.DefaultAdminPassword, log); err != nil {
		log.Warn("seeding default admin failed", zap.Error(err))
	}

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled {
		metrics = middleware.NewMetrics(config.ServiceName)
	}

	// Initialize services
	userService := services.NewUserService(db, log)
	roomService := services.NewRoomService(db, log)
	eventSpaceService := services.NewEventSpaceService(db, log)
	bookingService := services.NewBookingService(db)
	statsService := services.NewStatisticsService(db)
	photoService := services.NewPhotoService(db, services.NewLocalBlobStore(cfg.UploadDir), log)
	if metrics != nil {
		photoService.OnUpload = metrics.RecordPhotoUpload
	}

	// Initialize controllers
	router := routes.SetupRouter(routes.Controllers{
		Admin:   controllers.NewAdminController(userService, roomService, eventSpaceService, bookingService, statsService),
		Catalog: controllers.NewCatalogController(roomService, eventSpaceService),
		Photo:   controllers.NewPhotoController(photoService, cfg.MaxUploadMB<<20),
	}, routes.Options{
		CORSOrigins: cfg.CORSOrigins,
		Log:         log,
		Metrics:     metrics,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped gracefully")
}
