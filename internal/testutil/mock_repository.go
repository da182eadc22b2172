package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/gov-dx-sandbox/company-service/internal/models"
	"github.com/gov-dx-sandbox/company-service/internal/repository"
)

// MockRepository is an in-memory implementation of repository.CompanyRepository for testing
type MockRepository struct {
	mu        sync.Mutex
	companies map[uint]models.Company
	nextID    uint

	// Err, when set, is returned by every operation (simulates a failing database)
	Err error

	// Calls records the operations invoked, in order
	Calls []string
}

var _ repository.CompanyRepository = (*MockRepository)(nil)

// NewMockRepository creates a new MockRepository instance
func NewMockRepository() *MockRepository {
	return &MockRepository{
		companies: make(map[uint]models.Company),
		nextID:    1,
	}
}

func (m *MockRepository) record(call string) error {
	m.Calls = append(m.Calls, call)
	return m.Err
}

// Create stores the company and assigns the next ID
func (m *MockRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Create"); err != nil {
		return nil, err
	}

	company.ID = m.nextID
	m.nextID++
	m.companies[company.ID] = *company
	return company, nil
}

// FindAll returns stored companies ordered by ID, honouring status and paging filters
func (m *MockRepository) FindAll(ctx context.Context, filters *repository.CompanyFilters) ([]models.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("FindAll"); err != nil {
		return nil, err
	}

	result := make([]models.Company, 0, len(m.companies))
	for _, c := range m.companies {
		if filters != nil && filters.Status != nil && c.CompanyStatus != *filters.Status {
			continue
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	if filters != nil && filters.Limit > 0 {
		if filters.Offset >= len(result) {
			return []models.Company{}, nil
		}
		end := filters.Offset + filters.Limit
		if end > len(result) {
			end = len(result)
		}
		result = result[filters.Offset:end]
	}
	return result, nil
}

// FindByID returns nil when the ID is unknown
func (m *MockRepository) FindByID(ctx context.Context, id uint) (*models.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("FindByID"); err != nil {
		return nil, err
	}

	c, ok := m.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Update applies the known columns to the stored company
func (m *MockRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Update"); err != nil {
		return 0, err
	}

	c, ok := m.companies[id]
	if !ok {
		return 0, nil
	}
	for column, value := range fields {
		switch column {
		case "company_name":
			c.CompanyName = value.(string)
		case "contact_name":
			c.ContactName = value.(string)
		case "email":
			c.Email = value.(string)
		case "phone":
			c.Phone = value.(string)
		case "address":
			c.Address = value.(string)
		case "city":
			c.City = value.(string)
		case "state":
			c.State = value.(string)
		case "zip_code":
			c.ZipCode = value.(int)
		case "website":
			if website, ok := value.(string); ok {
				c.Website = &website
			} else {
				c.Website = nil
			}
		case "company_status":
			c.CompanyStatus = models.CompanyStatus(value.(string))
		}
	}
	m.companies[id] = c
	return 1, nil
}

// Delete removes the stored company
func (m *MockRepository) Delete(ctx context.Context, id uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Delete"); err != nil {
		return 0, err
	}

	if _, ok := m.companies[id]; !ok {
		return 0, nil
	}
	delete(m.companies, id)
	return 1, nil
}

// Count returns the number of stored companies
func (m *MockRepository) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Count"); err != nil {
		return 0, err
	}
	return int64(len(m.companies)), nil
}

// CallCount returns how many times the named operation was invoked
func (m *MockRepository) CallCount(call string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, c := range m.Calls {
		if c == call {
			n++
		}
	}
	return n
}
