package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SERVICE_NAME", "LOG_LEVEL", "DB_DRIVER", "DB_HOST", "RUN_MIGRATION", "DB_RETRY_DELAY"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "company-service", cfg.ServiceName)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, time.Second, cfg.Database.RetryDelay)
	assert.True(t, cfg.Database.RunMigration)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/test.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_CONNECT_TIMEOUT", "3s")
	t.Setenv("RUN_MIGRATION", "false")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.Equal(t, 3*time.Second, cfg.Database.ConnectTimeout)
	assert.False(t, cfg.Database.RunMigration)
	assert.Equal(t, "/tmp/test.db", cfg.Database.DSN())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "lots")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "forever")
	t.Setenv("RUN_MIGRATION", "maybe")

	cfg := NewDatabaseConfig()

	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxIdleTime)
	assert.True(t, cfg.RunMigration)
}

func TestDatabaseConfig_PostgresDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Driver:   DriverPostgres,
		Host:     "db",
		Port:     "5433",
		Username: "svc",
		Password: "secret",
		Database: "companies",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db port=5433 user=svc password=secret dbname=companies sslmode=require TimeZone=UTC",
		cfg.DSN())
}
