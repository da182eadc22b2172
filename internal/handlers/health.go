package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gov-dx-sandbox/company-service/internal/database"
	"github.com/gov-dx-sandbox/company-service/internal/utils"
	"gorm.io/gorm"
)

const healthCheckTimeout = 5 * time.Second

// HealthStatus is the body of GET /health
type HealthStatus struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// HealthHandler pings the database and reports 200 when reachable, 503 otherwise
func HealthHandler(db *gorm.DB, serviceName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		status := HealthStatus{
			Status:   "healthy",
			Service:  serviceName,
			Database: "connected",
		}

		if err := database.Ping(ctx, db); err != nil {
			slog.Warn("Health check failed", "error", err)
			status.Status = "unhealthy"
			status.Database = "disconnected"
			status.Error = "database unreachable"
			utils.RespondWithJSON(w, http.StatusServiceUnavailable, status)
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, status)
	}
}
