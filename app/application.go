// Package app wires the application's components together
package app

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"weatherdash.app/api"
	"weatherdash.app/config"
	"weatherdash.app/database"
	"weatherdash.app/providers"
	"weatherdash.app/providers/cache"
	"weatherdash.app/repository"
	"weatherdash.app/scheduler"
	"weatherdash.app/service"
)

// Application represents the main application with all its dependencies
type Application struct {
	config    *config.Config
	db        *gorm.DB
	server    *api.Server
	scheduler *scheduler.Scheduler
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeDatabase(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully")
	return nil
}

func (app *Application) initializeDatabase() error {
	slog.Info("Initializing database...")

	db, err := database.InitDB(app.config.Database)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return fmt.Errorf("initialize database connection: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		return fmt.Errorf("run database migrations: %w", err)
	}

	app.db = db
	slog.Info("Database initialized successfully")
	return nil
}

func (app *Application) initializeServices() error {
	slog.Info("Initializing services...")

	provider, err := app.createForecastProvider()
	if err != nil {
		return fmt.Errorf("create forecast provider: %w", err)
	}

	var locator providers.Locator
	if app.config.Geocoder.APIKey != "" {
		locator = providers.NewAddressLocator(app.config.Geocoder.APIKey)
	} else {
		slog.Info("No geocoder API key configured, address lookup disabled")
	}

	historyTTL := time.Duration(app.config.Dashboard.HistoryTTLHours) * time.Hour
	historyRepo := repository.NewSearchHistoryRepository(app.db, historyTTL)

	dashboardService := service.NewDashboardService(provider, locator, historyRepo, app.config.Dashboard.HoursPerPage)

	app.server = api.NewServer(app.config, dashboardService)
	app.scheduler = scheduler.NewScheduler(historyRepo, &app.config.Scheduler)

	slog.Info("Services initialized successfully")
	return nil
}

// createForecastProvider assembles the decorated provider stack from
// configuration
func (app *Application) createForecastProvider() (providers.ForecastProvider, error) {
	slog.Debug("Creating forecast provider stack...")

	forecastCache, err := app.createForecastCache()
	if err != nil {
		return nil, err
	}

	return providers.NewProviderStack(&app.config.Weather, forecastCache), nil
}

func (app *Application) createForecastCache() (cache.ForecastCacheInterface, error) {
	if !app.config.Cache.Enabled {
		slog.Info("Forecast caching disabled")
		return nil, nil
	}

	forecastCache, err := providers.NewForecastCacheFromConfig(&app.config.Cache)
	if err != nil {
		return nil, fmt.Errorf("create forecast cache: %w", err)
	}
	return forecastCache, nil
}

// Start starts the application
func (app *Application) Start() error {
	slog.Info("Starting application...")

	slog.Info("Starting scheduler...")
	if err := app.scheduler.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	slog.Info("Starting HTTP server", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	if app.scheduler != nil {
		app.scheduler.Stop()
	}

	if app.db != nil {
		if err := database.CloseDB(app.db); err != nil {
			slog.Warn("Error closing database", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}
