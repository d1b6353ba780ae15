package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/routes"
	"hotel-booking/services"
	"hotel-booking/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	config.LoadConfig()
	utils.InitializeLogger(config.GetEnv())
	logger := utils.GetLogger()
	defer logger.Sync()

	// The MySQL catalog source is the only thing that touches a
	// database, and only when configured.
	if config.AppConfig.CatalogSource == "mysql" {
		if err := config.ConnectDatabase(); err != nil {
			logger.Fatal("database connect failed", zap.Error(err))
		}
		logger.Info("database connection established, catalog tables migrated")
	}

	catalogService := services.NewCatalogService(config.DB)
	catalog, err := catalogService.Load(config.AppConfig.CatalogSource, config.AppConfig.CatalogFile)
	if err != nil {
		logger.Fatal("catalog load failed", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.String("source", config.AppConfig.CatalogSource),
		zap.Int("rooms", len(catalog.Rooms)),
		zap.Int("availabilityDates", len(catalog.Availability)),
		zap.Int("maintenanceDates", len(catalog.MaintenanceDates)),
	)

	// Initialize services
	bookingService := services.NewBookingService()
	validationService := services.NewValidationService(config.AppConfig.MinStayNights)

	// Initialize controllers
	homeController := controllers.NewHomeController()
	roomOptionsController := controllers.NewRoomOptionsController(catalog, bookingService, validationService)
	paymentController := controllers.NewPaymentController(catalog, bookingService, validationService)
	roomController := controllers.NewRoomController(catalog, bookingService, validationService)

	// Build router
	router := routes.SetupRouter(homeController, roomOptionsController, paymentController, roomController)

	addr := ":" + config.AppConfig.AppPort

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("🚀 server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe()", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("✅ server stopped gracefully")
}
