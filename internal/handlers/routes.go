package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gov-dx-sandbox/company-service/internal/docs"
	"github.com/gov-dx-sandbox/company-service/internal/middleware"
	"github.com/gov-dx-sandbox/company-service/internal/monitoring"
	"github.com/gov-dx-sandbox/company-service/internal/utils"
)

// NewRouter wires the middleware chain and every public route
func NewRouter(companies *CompanyHandler, health http.HandlerFunc) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.PanicRecovery)
	r.Use(monitoring.HTTPMetricsMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Hello World!"))
	})
	r.Get("/health", health)
	r.Method(http.MethodGet, "/metrics", monitoring.Handler())
	r.Get("/api-docs/openapi.yaml", docs.YAMLHandler)
	r.Get("/api-docs/openapi.json", docs.JSONHandler)

	r.Route("/companies", companies.RegisterRoutes)

	// Search is declared but has no behaviour yet
	r.HandleFunc("/search", searchNotImplemented)
	r.HandleFunc("/search/*", searchNotImplemented)

	return r
}

func searchNotImplemented(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithError(w, http.StatusNotImplemented, "Search is not implemented")
}
