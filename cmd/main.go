package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/examdesk/admin-console/docs"
	"github.com/examdesk/admin-console/internal/apiclient"
	"github.com/examdesk/admin-console/internal/catalog"
	"github.com/examdesk/admin-console/internal/config"
	"github.com/examdesk/admin-console/internal/forms"
	"github.com/examdesk/admin-console/internal/handlers"
	"github.com/examdesk/admin-console/internal/logger"
	"github.com/examdesk/admin-console/internal/middlewares"
	"github.com/examdesk/admin-console/internal/navigation"
	"github.com/examdesk/admin-console/internal/notifications"
	"github.com/examdesk/admin-console/internal/repositories"
	"github.com/examdesk/admin-console/internal/scheduler"
	"github.com/examdesk/admin-console/internal/services"
	"github.com/examdesk/admin-console/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const (
	maxRequestSize   = 50 * 1024 * 1024 // 50MB for file uploads
	maxJSONBodySize  = 1 * 1024 * 1024
	maxUploadMemory  = 10 * 1024 * 1024
	memoryLogEntries = 1000
)

// activityStore is the activity log storage used by the services
type activityStore interface {
	services.ActivityRepository
	services.ActivityReader
}

// @title ExamDesk Admin Console API
// @version 1.0
// @description API of the administration console for the course catalog
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting ExamDesk Admin Console", zap.String("backend", cfg.Backend.BaseURL))

	// Restore the stored session
	tokenStore, err := session.NewTokenStore(cfg.Session.TokenPath)
	if err != nil {
		logger.Logger.Fatal("Failed to open session store", zap.Error(err))
	}

	// Activity log: MySQL when configured, in memory otherwise
	var activityRepo activityStore
	if cfg.ActivityLogEnabled() {
		db, err := connectDB(cfg.DSN())
		if err != nil {
			logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := runMigrations(db); err != nil {
			logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		activityRepo = repositories.NewActivityRepository(db, logger.Logger)
	} else {
		logger.Logger.Info("DB_HOST is not set, keeping the activity log in memory")
		activityRepo = repositories.NewMemoryActivityRepository(memoryLogEntries)
	}

	// Initialize backend client and catalog snapshot
	client := apiclient.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, tokenStore, logger.Logger)
	store := catalog.NewStore(client, logger.Logger)
	notificationCenter := notifications.NewCenter(cfg.Notifications.TTL)

	// Initialize services
	catalogService := services.NewCatalogService(
		client,
		store,
		notificationCenter,
		activityRepo,
		cfg.Notifications.DeleteConfirmationTTL,
		logger.Logger,
	)
	sessionService := services.NewSessionService(client, tokenStore, store, notificationCenter, logger.Logger)
	activityService := services.NewActivityService(activityRepo)
	browser := navigation.NewBrowser(store)
	formBuilder := forms.NewBuilder(store, catalogService)

	// Start scheduled jobs
	sched, err := scheduler.New(scheduler.Config{
		HousekeepingCron:   cfg.Scheduler.HousekeepingCron,
		CatalogRefreshCron: cfg.Scheduler.CatalogRefreshCron,
		RefreshTimeout:     cfg.Backend.Timeout,
	}, notificationCenter, catalogService, store, tokenStore, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to create scheduler", zap.Error(err))
	}
	sched.Start()

	// Load the catalog for a session restored from disk
	go sched.RefreshCatalog(context.Background())

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessionService, logger.Logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, store, logger.Logger)
	versionHandler := handlers.NewVersionHandler(catalogService, logger.Logger)
	examHandler := handlers.NewExamHandler(catalogService, logger.Logger)
	uploadHandler := handlers.NewUploadHandler(catalogService, maxUploadMemory, logger.Logger)
	navigationHandler := handlers.NewNavigationHandler(browser, logger.Logger)
	formHandler := handlers.NewFormHandler(formBuilder, logger.Logger)
	feedbackHandler := handlers.NewFeedbackHandler(notificationCenter, activityService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(middlewares.BodyLimitMiddleware(maxJSONBodySize, maxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		// Session endpoints are public
		sessionHandler.RegisterRoutes(r)

		// Everything else requires a stored, unexpired token
		r.Group(func(r chi.Router) {
			r.Use(middlewares.SessionRequiredMiddleware(tokenStore))
			catalogHandler.RegisterRoutes(r)
			versionHandler.RegisterRoutes(r)
			examHandler.RegisterRoutes(r)
			uploadHandler.RegisterRoutes(r)
			navigationHandler.RegisterRoutes(r)
			formHandler.RegisterRoutes(r)
			feedbackHandler.RegisterRoutes(r)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second, // Longer timeout for file uploads
		WriteTimeout: cfg.Backend.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}
	sched.Stop()

	logger.Logger.Info("Server exited")
}

// connectDB connects to the activity log database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	// The LMS may share the database, so the console keeps its own migration table
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "admin_console_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
