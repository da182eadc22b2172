package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gov-dx-sandbox/company-service/internal/config"
	"github.com/gov-dx-sandbox/company-service/internal/database"
	"github.com/gov-dx-sandbox/company-service/internal/handlers"
	"github.com/gov-dx-sandbox/company-service/internal/logging"
	"github.com/gov-dx-sandbox/company-service/internal/monitoring"
	"github.com/gov-dx-sandbox/company-service/internal/repository"
	"github.com/gov-dx-sandbox/company-service/internal/services"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load .env file if it exists (optional - fails silently if not found)
	_ = godotenv.Load()

	cfg := config.Load()

	logger, closeLogs := logging.NewLogger(cfg.Logging, os.Stdout)
	slog.SetDefault(logger)
	defer func() { _ = closeLogs() }()

	slog.Info("Starting company service", "service", cfg.ServiceName, "port", cfg.Port, "driver", cfg.Database.Driver)

	shutdownMetrics, err := monitoring.Setup(context.Background(), monitoring.Config{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		slog.Warn("Failed to initialize metrics, continuing without them", "error", err)
	}

	db := initDatabase(&cfg.Database)

	repo := repository.NewGormCompanyRepository(db)
	companyService := services.NewCompanyService(repo)
	companyHandler := handlers.NewCompanyHandler(companyService)
	router := handlers.NewRouter(companyHandler, handlers.HealthHandler(db, cfg.ServiceName))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Company service listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-stop:
		slog.Info("Shutting down the server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	if err := database.Close(db); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
	if shutdownMetrics != nil {
		if err := shutdownMetrics(ctx); err != nil {
			slog.Error("Failed to shut down meter provider", "error", err)
		}
	}

	slog.Info("Server gracefully stopped")
}

// initDatabase opens the pool, waits for the database and synchronizes the schema.
// Failures are logged and the service keeps running; requests then fail individually.
func initDatabase(cfg *config.DatabaseConfig) *gorm.DB {
	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		return nil
	}

	if err := database.WaitForConnection(context.Background(), db, cfg); err != nil {
		slog.Error("Unable to connect to the database", "error", err)
		return db
	}

	if !cfg.RunMigration {
		slog.Info("Skipping schema synchronization", "RUN_MIGRATION", false)
		return db
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("Failed to synchronize schema", "error", err)
	}
	return db
}
