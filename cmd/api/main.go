package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mkamande/tillpoint-api/internal/application/service"
	"github.com/mkamande/tillpoint-api/internal/config"
	"github.com/mkamande/tillpoint-api/internal/infrastructure/database"
	"github.com/mkamande/tillpoint-api/internal/infrastructure/repository"
	"github.com/mkamande/tillpoint-api/internal/presentation/http/handler"
	"github.com/mkamande/tillpoint-api/internal/presentation/http/routes"
	"github.com/mkamande/tillpoint-api/pkg/auth"
	"github.com/mkamande/tillpoint-api/pkg/barcode"
	"github.com/mkamande/tillpoint-api/pkg/printer"
	"github.com/mkamande/tillpoint-api/pkg/qr"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default settings rows
	if err := database.SeedDefaultSettings(db); err != nil {
		log.Printf("Warning: Failed to seed default settings: %v", err)
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	settingsService := service.NewSettingsService(settingsRepo)
	receiptService := service.NewReceiptService(settingsService, thermalPrinter, qr.New(qr.LevelMedium), cfg.Printer.AutoPrintDelay)
	labelService := service.NewLabelService(settingsService, thermalPrinter, barcode.New())
	checkoutService := service.NewCheckoutService(receiptService)
	authService := service.NewAuthService(cfg.Auth.TerminalPINHash, jwtManager)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Receipt:  handler.NewReceiptHandler(receiptService),
		Label:    handler.NewLabelHandler(labelService),
		Settings: handler.NewSettingsHandler(settingsService),
		Printer:  handler.NewPrinterHandler(receiptService, cfg.Printer.Type),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
