package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkamande/tillpoint-api/internal/config"
	"github.com/mkamande/tillpoint-api/internal/presentation/http/handler"
	"github.com/mkamande/tillpoint-api/internal/presentation/http/middleware"
	"github.com/mkamande/tillpoint-api/pkg/auth"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Checkout *handler.CheckoutHandler
	Receipt  *handler.ReceiptHandler
	Label    *handler.LabelHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *auth.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/sign-in", h.Auth.SignIn)

		// Protected routes (terminal token required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-terminal rate limiter
		rateLimiter := middleware.NewTerminalRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerCheckoutRoutes(protected, h)
		registerReceiptRoutes(protected, h)
		registerLabelRoutes(protected, h)
		registerSettingsRoutes(protected, h)
		registerPrinterRoutes(protected, h)
	}

	return router
}

func registerCheckoutRoutes(protected *gin.RouterGroup, h *Handlers) {
	checkouts := protected.Group("/checkouts")
	{
		checkouts.POST("", h.Checkout.Open)
		checkouts.GET("/:id", h.Checkout.Get)
		checkouts.PUT("/:id/method", h.Checkout.SelectMethod)
		checkouts.PUT("/:id/cash", h.Checkout.SetCashReceived)
		checkouts.PUT("/:id/confirm", h.Checkout.SetConfirmed)
		checkouts.GET("/:id/suggestions", h.Checkout.Suggestions)
		checkouts.POST("/:id/complete", h.Checkout.Complete)
		checkouts.DELETE("/:id", h.Checkout.Close)
	}
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers) {
	receipts := protected.Group("/receipts")
	{
		receipts.POST("/preview", h.Receipt.Preview)
		receipts.POST("/print", h.Receipt.Print)
		receipts.POST("/pdf", h.Receipt.PDF)
	}
}

func registerLabelRoutes(protected *gin.RouterGroup, h *Handlers) {
	labels := protected.Group("/labels")
	{
		labels.POST("/preview", h.Label.Preview)
		labels.POST("/pdf", h.Label.PDF)
		labels.POST("/print", h.Label.Print)
		labels.POST("/test-print", h.Label.TestPrint)
		labels.GET("/calibration", h.Label.CalibrationPDF)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	{
		settings.GET("/receipt", h.Settings.GetReceiptSettings)
		settings.PUT("/receipt", h.Settings.UpdateReceiptSettings)
		settings.GET("/label", h.Settings.GetLabelSettings)
		settings.PUT("/label", h.Settings.UpdateLabelSettings)
		settings.GET("/general", h.Settings.GetGeneralSettings)
		settings.PUT("/general", h.Settings.UpdateGeneralSettings)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
	}
}
