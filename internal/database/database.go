package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gov-dx-sandbox/company-service/internal/config"
	"github.com/gov-dx-sandbox/company-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotInitialized is returned when the shared handle was never opened
var ErrNotInitialized = errors.New("database connection is not initialized")

// Open creates the shared GORM handle and configures its pool. No connection is attempted
// here; use WaitForConnection to verify reachability.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               newGormLogger(cfg.LogLevel),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	// Get underlying sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

// WaitForConnection pings the database, retrying up to cfg.RetryAttempts times
func WaitForConnection(ctx context.Context, db *gorm.DB, cfg *config.DatabaseConfig) error {
	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		slog.Info("Attempting database connection", "attempt", attempt, "max_attempts", attempts, "driver", cfg.Driver)

		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		err = Ping(pingCtx, db)
		cancel()
		if err == nil {
			slog.Info("Database connection established",
				"driver", cfg.Driver,
				"host", cfg.Host,
				"database", cfg.Database)
			return nil
		}

		slog.Warn("Failed to ping database", "attempt", attempt, "error", err)
		if attempt < attempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.RetryDelay):
			}
		}
	}

	return fmt.Errorf("failed to reach database after %d attempts: %w", attempts, err)
}

// Migrate synchronizes the companies schema
func Migrate(db *gorm.DB) error {
	if db == nil {
		return ErrNotInitialized
	}
	slog.Info("Running GORM auto-migration for company models")
	if err := db.AutoMigrate(&models.Company{}); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	slog.Info("GORM auto-migration completed successfully")
	return nil
}

// Ping checks connectivity through the shared handle
func Ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return ErrNotInitialized
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newGormLogger(level string) logger.Interface {
	return logger.New(slogWriter{}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLogLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info", "debug":
		return logger.Info
	default:
		return logger.Warn
	}
}

// slogWriter routes GORM's printf-style output into the default slog logger
type slogWriter struct{}

func (slogWriter) Printf(format string, args ...interface{}) {
	slog.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)), "component", "gorm")
}
