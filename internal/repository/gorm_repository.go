package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gov-dx-sandbox/company-service/internal/database"
	"github.com/gov-dx-sandbox/company-service/internal/models"
	"github.com/gov-dx-sandbox/company-service/internal/monitoring"
	"gorm.io/gorm"
)

const companiesTable = "companies"

// GormCompanyRepository implements CompanyRepository using GORM (works with SQLite or PostgreSQL)
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a repository over the shared handle. A nil handle is
// accepted; every call then fails with database.ErrNotInitialized.
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Create inserts a new company row
func (r *GormCompanyRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	if r.db == nil {
		return nil, database.ErrNotInitialized
	}
	defer observe(ctx, "create", time.Now())

	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

// FindAll retrieves companies with optional status filter and paging
func (r *GormCompanyRepository) FindAll(ctx context.Context, filters *CompanyFilters) ([]models.Company, error) {
	if r.db == nil {
		return nil, database.ErrNotInitialized
	}
	defer observe(ctx, "find_all", time.Now())

	query := r.db.WithContext(ctx).Model(&models.Company{})
	if filters != nil {
		if filters.Status != nil {
			query = query.Where("company_status = ?", string(*filters.Status))
		}
		if filters.Limit > 0 {
			query = query.Limit(filters.Limit).Offset(filters.Offset)
		}
	}

	var companies []models.Company
	if err := query.Order("id ASC").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve companies: %w", err)
	}
	if companies == nil {
		companies = []models.Company{}
	}
	return companies, nil
}

// FindByID retrieves a single company
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uint) (*models.Company, error) {
	if r.db == nil {
		return nil, database.ErrNotInitialized
	}
	defer observe(ctx, "find_by_id", time.Now())

	var company models.Company
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&company)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil // No company found, not an error
		}
		return nil, fmt.Errorf("failed to retrieve company %d: %w", id, result.Error)
	}
	return &company, nil
}

// Update applies the given column values; matching zero rows is not an error
func (r *GormCompanyRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	if r.db == nil {
		return 0, database.ErrNotInitialized
	}
	defer observe(ctx, "update", time.Now())

	result := r.db.WithContext(ctx).Model(&models.Company{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update company %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes the company row
func (r *GormCompanyRepository) Delete(ctx context.Context, id uint) (int64, error) {
	if r.db == nil {
		return 0, database.ErrNotInitialized
	}
	defer observe(ctx, "delete", time.Now())

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Company{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete company %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// Count returns the number of company rows
func (r *GormCompanyRepository) Count(ctx context.Context) (int64, error) {
	if r.db == nil {
		return 0, database.ErrNotInitialized
	}
	defer observe(ctx, "count", time.Now())

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Company{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return total, nil
}

func observe(ctx context.Context, operation string, start time.Time) {
	monitoring.RecordDBLatency(ctx, companiesTable, operation, time.Since(start))
}
