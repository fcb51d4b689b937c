package bootstrap

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutritional-planner/config"
	deliveryHttp "nutritional-planner/internal/delivery/http"
	"nutritional-planner/internal/delivery/http/handler"
	"nutritional-planner/internal/delivery/http/middleware"
	"nutritional-planner/internal/export"
	"nutritional-planner/internal/infrastructure/database"
	"nutritional-planner/internal/repository"
	"nutritional-planner/internal/service"
	"nutritional-planner/internal/usecase"
	"nutritional-planner/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewSQLiteConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, db)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB) (*http.Server, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize exporter
	exporter, err := export.NewExporter(cfg.Export, log)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository()
	measurementRepo := repository.NewMeasurementRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize services
	planService := service.NewPlanService(rand.New(rand.NewSource(time.Now().UnixNano())))
	lookupService := service.NewLookupService(cfg.Lookup, log)
	auditService := service.NewAuditService(log, auditRepo)

	// Initialize usecases
	profileUsecase := usecase.NewProfileUsecase(db, log, profileRepo, measurementRepo, auditService)
	measurementUsecase := usecase.NewMeasurementUsecase(db, log, profileRepo, measurementRepo, planService, auditService, exporter)

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	measurementHandler := handler.NewMeasurementHandler(measurementUsecase, customValidator)
	catalogHandler := handler.NewCatalogHandler(exporter)
	lookupHandler := handler.NewLookupHandler(lookupService)
	snapshotHandler := handler.NewSnapshotHandler(customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(profileHandler, measurementHandler, catalogHandler, lookupHandler, snapshotHandler, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the database connection
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
