package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gov-dx-sandbox/company-service/internal/models"
	"github.com/gov-dx-sandbox/company-service/internal/monitoring"
	"github.com/gov-dx-sandbox/company-service/internal/repository"
)

// DefaultPageSize is the number of companies returned per page
const DefaultPageSize = 3

// CompanyService handles company record operations
type CompanyService struct {
	repo     repository.CompanyRepository
	validate *validator.Validate
	pageSize int
}

// NewCompanyService creates a new company service instance
func NewCompanyService(repo repository.CompanyRepository) *CompanyService {
	return &CompanyService{
		repo:     repo,
		validate: newValidator(),
		pageSize: DefaultPageSize,
	}
}

// CreateCompany validates the request and inserts a new company
func (s *CompanyService) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request body is required", ErrInvalidInput)
	}
	if err := validateRequest(s.validate, req); err != nil {
		monitoring.RecordBusinessEvent(ctx, "company_create", false)
		return nil, err
	}

	company, err := s.repo.Create(ctx, req.ToModel())
	monitoring.RecordBusinessEvent(ctx, "company_create", err == nil)
	if err != nil {
		return nil, err
	}
	return company, nil
}

// ListCompanies returns every company ordered by id
func (s *CompanyService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return s.repo.FindAll(ctx, nil)
}

// GetCompany returns ErrCompanyNotFound when the id matches no row
func (s *CompanyService) GetCompany(ctx context.Context, id uint) (*models.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

// UpdateCompany applies the provided fields and returns the row as re-read after the write.
// An empty request issues no write.
func (s *CompanyService) UpdateCompany(ctx context.Context, id uint, req *models.UpdateCompanyRequest) (*models.Company, error) {
	if req != nil {
		if err := validateRequest(s.validate, req); err != nil {
			monitoring.RecordBusinessEvent(ctx, "company_update", false)
			return nil, err
		}
	}

	if changes := req.Changes(); len(changes) > 0 {
		if _, err := s.repo.Update(ctx, id, changes); err != nil {
			monitoring.RecordBusinessEvent(ctx, "company_update", false)
			return nil, err
		}
	}

	company, err := s.GetCompany(ctx, id)
	monitoring.RecordBusinessEvent(ctx, "company_update", err == nil)
	if err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany removes the company; a missing id is reported without issuing a delete
func (s *CompanyService) DeleteCompany(ctx context.Context, id uint) error {
	if _, err := s.GetCompany(ctx, id); err != nil {
		monitoring.RecordBusinessEvent(ctx, "company_delete", false)
		return err
	}

	_, err := s.repo.Delete(ctx, id)
	monitoring.RecordBusinessEvent(ctx, "company_delete", err == nil)
	return err
}

// FilterByStatus returns companies whose status equals status exactly.
// An empty status returns every company.
func (s *CompanyService) FilterByStatus(ctx context.Context, status string) ([]models.Company, error) {
	if status == "" {
		return s.repo.FindAll(ctx, nil)
	}
	companyStatus := models.CompanyStatus(status)
	return s.repo.FindAll(ctx, &repository.CompanyFilters{Status: &companyStatus})
}

// PaginateCompanies returns one page of companies ordered by id. Pages are 1-based;
// anything below 1 is treated as the first page.
func (s *CompanyService) PaginateCompanies(ctx context.Context, page int) (*models.CompanyPage, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := (total + int64(s.pageSize) - 1) / int64(s.pageSize)
	result := &models.CompanyPage{
		Companies:  []models.Company{},
		TotalPages: int(totalPages),
		Page:       page,
	}

	// Past the last page there is nothing to read, and the offset could overflow
	if int64(page) > totalPages {
		return result, nil
	}

	companies, err := s.repo.FindAll(ctx, &repository.CompanyFilters{
		Limit:  s.pageSize,
		Offset: (page - 1) * s.pageSize,
	})
	if err != nil {
		return nil, err
	}
	result.Companies = companies
	return result, nil
}
