package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjunpx/fuelbill-api/internal/config"
	"github.com/arjunpx/fuelbill-api/internal/presentation/http/handler"
	"github.com/arjunpx/fuelbill-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Bill    *handler.BillHandler
	Receipt *handler.ReceiptHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.Use(middleware.SessionMiddleware())

		rateLimiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfig{
			Requests:        cfg.RateLimit.Requests,
			WindowSeconds:   cfg.RateLimit.Duration,
			CleanupInterval: 5 * time.Minute,
			EntryTTL:        10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerBillRoutes(v1, h)
		registerReceiptRoutes(v1, h)
	}

	return router
}

func registerBillRoutes(rg *gin.RouterGroup, h *Handlers) {
	bill := rg.Group("/bill")
	{
		bill.GET("", h.Bill.Get)
		bill.PUT("", h.Bill.Replace)
		bill.PATCH("/field", h.Bill.UpdateField)
		bill.POST("/reset", h.Bill.Reset)
		bill.POST("/brand", h.Bill.SwitchBrand)
		bill.POST("/codes", h.Bill.GenerateCodes)
		bill.POST("/logo", h.Bill.UploadLogo)
		bill.DELETE("/logo", h.Bill.RemoveLogo)
	}
}

func registerReceiptRoutes(rg *gin.RouterGroup, h *Handlers) {
	receipt := rg.Group("/receipt")
	{
		receipt.GET("", h.Receipt.Preview)
		receipt.GET("/export", h.Receipt.Export)
		receipt.POST("/print", h.Receipt.Print)
	}

	rg.GET("/printer/status", h.Receipt.PrinterStatus)
}
