package repository

import (
	"context"

	"github.com/gov-dx-sandbox/company-service/internal/models"
)

// CompanyRepository defines the persistence operations the company service depends on
type CompanyRepository interface {
	// Create inserts a company; the store assigns the ID
	Create(ctx context.Context, company *models.Company) (*models.Company, error)

	// FindAll returns companies matching the optional filters, ordered by ID
	FindAll(ctx context.Context, filters *CompanyFilters) ([]models.Company, error)

	// FindByID returns nil and no error when no row matches
	FindByID(ctx context.Context, id uint) (*models.Company, error)

	// Update applies column values to the row with the given ID and reports rows matched
	Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)

	// Delete removes the row with the given ID and reports rows removed
	Delete(ctx context.Context, id uint) (int64, error)

	// Count returns the total number of companies
	Count(ctx context.Context) (int64, error)
}

// CompanyFilters represents query filters for listing companies
type CompanyFilters struct {
	Status *models.CompanyStatus
	Limit  int // zero means no limit
	Offset int
}
