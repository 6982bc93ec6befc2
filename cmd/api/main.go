package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/arjunpx/fuelbill-api/internal/application/service"
	"github.com/arjunpx/fuelbill-api/internal/config"
	"github.com/arjunpx/fuelbill-api/internal/domain/billing"
	"github.com/arjunpx/fuelbill-api/internal/infrastructure/repository"
	"github.com/arjunpx/fuelbill-api/internal/logger"
	"github.com/arjunpx/fuelbill-api/internal/presentation/http/handler"
	"github.com/arjunpx/fuelbill-api/internal/presentation/http/routes"
	"github.com/arjunpx/fuelbill-api/pkg/printer"
	"github.com/arjunpx/fuelbill-api/pkg/raster"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}); err != nil {
		log.Fatal().Err(err).Msg("invalid log configuration")
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the session bill store
	billStore := repository.NewMemoryBillStore(repository.MemoryBillStoreConfig{
		EntryTTL:        cfg.Session.TTL,
		CleanupInterval: cfg.Session.CleanupInterval,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize printer, falling back to null printer")
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize the PNG renderer
	renderer, err := raster.NewRenderer(raster.Config{
		Width:    cfg.Render.Width,
		Scale:    cfg.Render.Scale,
		FontPath: cfg.Render.FontPath,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize receipt renderer")
	}

	// Initialize services
	billService := service.NewBillService(billStore, billing.NewCodeGenerator())
	receiptService := service.NewReceiptService(billStore, thermalPrinter, renderer, cfg.Printer.Type, cfg.Printer.PaperWidth)

	// Initialize handlers
	handlers := &routes.Handlers{
		Bill:    handler.NewBillHandler(billService, int(cfg.Upload.MaxLogoSize)),
		Receipt: handler.NewReceiptHandler(receiptService),
	}

	// Setup routes and start the server
	router := routes.Setup(handlers, cfg)

	log.Info().
		Str("service", cfg.App.Name).
		Str("port", cfg.App.Port).
		Str("printer", cfg.Printer.Type).
		Msg("starting server")

	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
