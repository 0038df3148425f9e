package app

import (
	"pdp-backend/internal/comparisons"
	"pdp-backend/internal/config"
	"pdp-backend/internal/database"
	"pdp-backend/internal/health"
	"pdp-backend/internal/imports"
	"pdp-backend/internal/middleware"
	"pdp-backend/internal/reports"
	"pdp-backend/internal/snapshots"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration, opens the snapshot store and migrates its schema.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(middleware.CORS(cfg.FrontendURL))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())
	app.Use(middleware.ResponseFormatter())

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, nil, err
	}

	healthHandlers := &health.Handlers{DB: db}
	app.Get("/health", healthHandlers.JSON)

	// Snapshot store + baseline routes
	store := &snapshots.Service{DB: db}
	baselineHandlers := &snapshots.Handlers{Service: store}
	baselineGroup := app.Group("/api/v1/baselines")
	baselineGroup.Post("/create-baseline", baselineHandlers.CreateBaseline)
	baselineGroup.Get("/get-baselines", baselineHandlers.GetBaselines)
	baselineGroup.Get("/most-recent", baselineHandlers.MostRecent)
	baselineGroup.Delete("/delete-baseline/:id", baselineHandlers.DeleteBaseline)

	// Imports
	importService := &imports.Service{Store: store}
	importHandlers := &imports.Handlers{Service: importService}
	importGroup := app.Group("/api/v1/imports")
	importGroup.Post("/import-report", importHandlers.ImportReport)

	// Reports
	reportService := &reports.Service{Store: store}
	reportHandlers := &reports.Handlers{Service: reportService}
	reportGroup := app.Group("/api/v1/reports")
	reportGroup.Get("/progress-report", reportHandlers.ProgressReport)
	reportGroup.Get("/top-agents", reportHandlers.TopAgents)
	reportGroup.Get("/chart-data", reportHandlers.ChartData)

	// Comparisons
	comparisonService := &comparisons.Service{Store: store}
	comparisonHandlers := &comparisons.Handlers{Service: comparisonService}
	comparisonGroup := app.Group("/api/v1/comparisons")
	comparisonGroup.Post("/compare-baselines", comparisonHandlers.CompareBaselines)

	return app, db, nil
}
