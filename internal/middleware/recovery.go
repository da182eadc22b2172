package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gov-dx-sandbox/company-service/internal/utils"
)

// PanicRecovery recovers from handler panics, logs the stack and answers 500 in the JSON error envelope
func PanicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.Error("Handler panic recovered",
					"error", rec,
					"path", r.URL.Path,
					"requestId", RequestIDFromContext(r.Context()),
					"stack", string(debug.Stack()))
				utils.RespondInternalError(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
