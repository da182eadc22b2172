package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gov-dx-sandbox/company-service/internal/middleware"
	"github.com/gov-dx-sandbox/company-service/internal/models"
	"github.com/gov-dx-sandbox/company-service/internal/services"
	"github.com/gov-dx-sandbox/company-service/internal/utils"
)

const (
	msgCompanyNotFound    = "Company not found"
	msgInvalidRequestBody = "Invalid request body"
)

// CompanyHandler handles HTTP requests for company records
type CompanyHandler struct {
	service *services.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(service *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// RegisterRoutes mounts the company endpoints on r. Fixed paths are matched before {companyId}.
func (h *CompanyHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.CreateCompany)
	r.Get("/", h.ListCompanies)
	r.Get("/status", h.FilterCompaniesByStatus)
	r.Get("/pagination", h.PaginateCompanies)
	r.Get("/pegination", h.PaginateCompanies)
	r.Get("/{companyId}", h.GetCompany)
	r.Put("/{companyId}", h.UpdateCompany)
	r.Delete("/{companyId}", h.DeleteCompany)
}

// CreateCompany handles POST /companies
func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Invalid JSON body", "error", err, "path", r.URL.Path, "requestId", middleware.RequestIDFromContext(r.Context()))
		utils.RespondWithError(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	company, err := h.service.CreateCompany(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, "create company", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, company)
}

// ListCompanies handles GET /companies
func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.ListCompanies(r.Context())
	if err != nil {
		h.handleServiceError(w, r, "list companies", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, companies)
}

// GetCompany handles GET /companies/{companyId}
func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCompanyID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, msgCompanyNotFound)
		return
	}

	company, err := h.service.GetCompany(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, "get company", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, company)
}

// UpdateCompany handles PUT /companies/{companyId}
func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCompanyID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, msgCompanyNotFound)
		return
	}

	var req models.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Warn("Invalid JSON body", "error", err, "path", r.URL.Path, "requestId", middleware.RequestIDFromContext(r.Context()))
		utils.RespondWithError(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	company, err := h.service.UpdateCompany(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, "update company", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.UpdateCompanyResponse{
		Message:        "Updated Successfully",
		UpdatedCompany: company,
	})
}

// DeleteCompany handles DELETE /companies/{companyId}
func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := parseCompanyID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, msgCompanyNotFound)
		return
	}

	if err := h.service.DeleteCompany(r.Context(), id); err != nil {
		h.handleServiceError(w, r, "delete company", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.MessageResponse{Message: "Company Deleted Successfully"})
}

// FilterCompaniesByStatus handles GET /companies/status?status=
func (h *CompanyHandler) FilterCompaniesByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	companies, err := h.service.FilterByStatus(r.Context(), status)
	if err != nil {
		h.handleServiceError(w, r, "filter companies", err)
		return
	}

	message := "Companies retrieved successfully"
	if status == "" {
		message = "All companies retrieved successfully"
	}
	utils.RespondWithJSON(w, http.StatusOK, models.CompanyListResponse{
		Message:   message,
		Companies: companies,
	})
}

// PaginateCompanies handles GET /companies/pagination?page=
func (h *CompanyHandler) PaginateCompanies(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.PaginateCompanies(r.Context(), parsePage(r.URL.Query().Get("page")))
	if err != nil {
		h.handleServiceError(w, r, "paginate companies", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, page)
}

// parseCompanyID reports false for ids that cannot name a row
func parseCompanyID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "companyId"), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parsePage falls back to the first page for missing, non-numeric or non-positive values
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *CompanyHandler) handleServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	switch {
	case services.IsNotFound(err):
		utils.RespondWithError(w, http.StatusNotFound, msgCompanyNotFound)
	case services.IsValidationError(err):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("Failed to "+action,
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"requestId", middleware.RequestIDFromContext(r.Context()))
		utils.RespondInternalError(w)
	}
}
