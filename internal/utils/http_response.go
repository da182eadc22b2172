package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gov-dx-sandbox/company-service/internal/models"
)

// InternalServerErrorMessage is the only detail a client sees for unexpected failures
const InternalServerErrorMessage = "Internal Server Error"

// RespondWithJSON sends a JSON response with the given status code
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already written; nothing more can be sent
		slog.Error("Failed to encode JSON response", "error", err, "statusCode", statusCode)
	}
}

// RespondWithError sends a JSON error response with the given status code
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, models.ErrorResponse{Error: message})
}

// RespondInternalError sends the generic 500 envelope
func RespondInternalError(w http.ResponseWriter) {
	RespondWithError(w, http.StatusInternalServerError, InternalServerErrorMessage)
}
