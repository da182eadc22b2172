package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the runtime configuration for the company service
type Config struct {
	Port        string
	ServiceName string
	Logging     LoggingConfig
	Database    DatabaseConfig
}

// LoggingConfig controls the slog handler and the optional rotating file sink
type LoggingConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DatabaseConfig holds GORM database connection configuration
type DatabaseConfig struct {
	Driver          string // "postgres" or "sqlite"
	Host            string
	Port            string
	Username        string
	Password        string
	Database        string
	SSLMode         string
	SQLitePath      string
	LogLevel        string // GORM logger level: silent, error, warn, info
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnectTimeout  time.Duration // Timeout for each startup ping
	RetryAttempts   int
	RetryDelay      time.Duration
	RunMigration    bool
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Load builds the configuration from environment variables.
// Callers that want .env support load it before calling Load.
func Load() *Config {
	return &Config{
		Port:        getEnvOrDefault("PORT", "3001"),
		ServiceName: getEnvOrDefault("SERVICE_NAME", "company-service"),
		Logging: LoggingConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
			File:       getEnvOrDefault("LOG_FILE", ""),
			MaxSizeMB:  parseIntOrDefault("LOG_FILE_MAX_SIZE_MB", 100),
			MaxBackups: parseIntOrDefault("LOG_FILE_MAX_BACKUPS", 3),
			MaxAgeDays: parseIntOrDefault("LOG_FILE_MAX_AGE_DAYS", 28),
		},
		Database: NewDatabaseConfig(),
	}
}

// NewDatabaseConfig creates a database configuration from environment variables
func NewDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Driver:          strings.ToLower(getEnvOrDefault("DB_DRIVER", DriverPostgres)),
		Host:            getEnvOrDefault("DB_HOST", "localhost"),
		Port:            getEnvOrDefault("DB_PORT", "5432"),
		Username:        getEnvOrDefault("DB_USER", "postgres"),
		Password:        getEnvOrDefault("DB_PASSWORD", "password"),
		Database:        getEnvOrDefault("DB_NAME", "companies"),
		SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
		SQLitePath:      getEnvOrDefault("DB_SQLITE_PATH", "companies.db"),
		LogLevel:        getEnvOrDefault("DB_LOG_LEVEL", "warn"),
		MaxOpenConns:    parseIntOrDefault("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    parseIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: parseDurationOrDefault("DB_CONN_MAX_LIFETIME", "1h"),
		ConnMaxIdleTime: parseDurationOrDefault("DB_CONN_MAX_IDLE_TIME", "30m"),
		ConnectTimeout:  parseDurationOrDefault("DB_CONNECT_TIMEOUT", "10s"),
		RetryAttempts:   parseIntOrDefault("DB_RETRY_ATTEMPTS", 3),
		RetryDelay:      parseDurationOrDefault("DB_RETRY_DELAY", "1s"),
		RunMigration:    parseBoolOrDefault("RUN_MIGRATION", true),
	}
}

// DSN returns the driver-specific data source name
func (c DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode)
}

// getEnvOrDefault gets environment variable or returns default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIntOrDefault parses an integer from environment variable or returns default
func parseIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// parseDurationOrDefault parses a duration from environment variable or returns default
func parseDurationOrDefault(key, defaultValue string) time.Duration {
	if value := getEnvOrDefault(key, defaultValue); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	// Fallback to parsing the default value
	if parsed, err := time.ParseDuration(defaultValue); err == nil {
		return parsed
	}
	return time.Second
}

func parseBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
