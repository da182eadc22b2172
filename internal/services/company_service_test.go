package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gov-dx-sandbox/company-service/internal/models"
	"github.com/gov-dx-sandbox/company-service/internal/repository"
	"github.com/gov-dx-sandbox/company-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validCreateRequest() *models.CreateCompanyRequest {
	return &models.CreateCompanyRequest{
		CompanyName:   "Acme Corp",
		ContactName:   "Jane Doe",
		Email:         "jane@acme.example",
		Phone:         "555-0100",
		Address:       "1 Main St",
		City:          "Springfield",
		State:         "IL",
		ZipCode:       62701,
		Website:       strPtr("https://acme.example"),
		CompanyStatus: models.CompanyStatusActive,
	}
}

func newSQLiteService(t *testing.T) *CompanyService {
	db := testutil.SetupSQLiteTestDB(t)
	return NewCompanyService(repository.NewGormCompanyRepository(db))
}

func TestNewCompanyService(t *testing.T) {
	service := NewCompanyService(testutil.NewMockRepository())
	assert.NotNil(t, service)
	assert.Equal(t, DefaultPageSize, service.pageSize)
}

func TestCompanyService_CreateCompany(t *testing.T) {
	service := newSQLiteService(t)
	ctx := context.Background()

	t.Run("valid request is stored with a fresh id", func(t *testing.T) {
		company, err := service.CreateCompany(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.NotZero(t, company.ID)
		assert.Equal(t, "Acme Corp", company.CompanyName)
		require.NotNil(t, company.Website)
		assert.Equal(t, "https://acme.example", *company.Website)

		companies, err := service.ListCompanies(ctx)
		require.NoError(t, err)
		assert.Len(t, companies, 1)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(r *models.CreateCompanyRequest)
			message string
		}{
			{"missing name", func(r *models.CreateCompanyRequest) { r.CompanyName = "" }, "companyName is required"},
			{"bad email", func(r *models.CreateCompanyRequest) { r.Email = "not-an-email" }, "email must be a valid email address"},
			{"bad website", func(r *models.CreateCompanyRequest) { r.Website = strPtr("nope") }, "website must be a valid URL"},
			{"unknown status", func(r *models.CreateCompanyRequest) { r.CompanyStatus = "Archived" }, "companyStatus must be one of: Active, Inactive"},
			{"missing status", func(r *models.CreateCompanyRequest) { r.CompanyStatus = "" }, "companyStatus is required"},
			{"missing zip", func(r *models.CreateCompanyRequest) { r.ZipCode = 0 }, "zipCode is required"},
			{"negative zip", func(r *models.CreateCompanyRequest) { r.ZipCode = -5 }, "zipCode must be greater than 0"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validCreateRequest()
				tt.mutate(req)

				company, err := service.CreateCompany(ctx, req)
				require.Error(t, err)
				assert.Nil(t, company)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.message)
			})
		}
	})

	t.Run("website is optional", func(t *testing.T) {
		req := validCreateRequest()
		req.Website = nil
		company, err := service.CreateCompany(ctx, req)
		require.NoError(t, err)
		assert.Nil(t, company.Website)
	})

	t.Run("nil request", func(t *testing.T) {
		_, err := service.CreateCompany(ctx, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCompanyService_UpdateCompany(t *testing.T) {
	service := newSQLiteService(t)
	ctx := context.Background()

	created, err := service.CreateCompany(ctx, validCreateRequest())
	require.NoError(t, err)

	t.Run("status change is visible on re-read", func(t *testing.T) {
		inactive := models.CompanyStatusInactive
		updated, err := service.UpdateCompany(ctx, created.ID, &models.UpdateCompanyRequest{CompanyStatus: &inactive})
		require.NoError(t, err)
		assert.Equal(t, models.CompanyStatusInactive, updated.CompanyStatus)
		assert.Equal(t, created.CompanyName, updated.CompanyName)

		fetched, err := service.GetCompany(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.CompanyStatusInactive, fetched.CompanyStatus)
	})

	t.Run("empty request returns the unchanged row", func(t *testing.T) {
		before, err := service.GetCompany(ctx, created.ID)
		require.NoError(t, err)

		updated, err := service.UpdateCompany(ctx, created.ID, &models.UpdateCompanyRequest{})
		require.NoError(t, err)
		assert.Equal(t, before.CompanyStatus, updated.CompanyStatus)
		assert.True(t, before.UpdatedAt.Equal(updated.UpdatedAt))
	})

	t.Run("missing id", func(t *testing.T) {
		city := "Nowhere"
		updated, err := service.UpdateCompany(ctx, created.ID+100, &models.UpdateCompanyRequest{City: &city})
		assert.ErrorIs(t, err, ErrCompanyNotFound)
		assert.Nil(t, updated)
	})

	t.Run("empty website is stored as null", func(t *testing.T) {
		empty := ""
		updated, err := service.UpdateCompany(ctx, created.ID, &models.UpdateCompanyRequest{Website: &empty})
		require.NoError(t, err)
		assert.Nil(t, updated.Website)

		fetched, err := service.GetCompany(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, fetched.Website)
	})

	t.Run("invalid field is rejected", func(t *testing.T) {
		status := models.CompanyStatus("Archived")
		_, err := service.UpdateCompany(ctx, created.ID, &models.UpdateCompanyRequest{CompanyStatus: &status})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestCompanyService_UpdateCompany_EmptyBodySkipsWrite(t *testing.T) {
	repo := testutil.NewMockRepository()
	service := NewCompanyService(repo)
	ctx := context.Background()

	created, err := service.CreateCompany(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = service.UpdateCompany(ctx, created.ID, nil)
	require.NoError(t, err)
	assert.Zero(t, repo.CallCount("Update"))
}

func TestCompanyService_DeleteCompany(t *testing.T) {
	repo := testutil.NewMockRepository()
	service := NewCompanyService(repo)
	ctx := context.Background()

	created, err := service.CreateCompany(ctx, validCreateRequest())
	require.NoError(t, err)

	t.Run("missing id issues no delete", func(t *testing.T) {
		err := service.DeleteCompany(ctx, created.ID+1)
		assert.ErrorIs(t, err, ErrCompanyNotFound)
		assert.Zero(t, repo.CallCount("Delete"))

		companies, err := service.ListCompanies(ctx)
		require.NoError(t, err)
		assert.Len(t, companies, 1)
	})

	t.Run("existing id is removed", func(t *testing.T) {
		require.NoError(t, service.DeleteCompany(ctx, created.ID))

		_, err := service.GetCompany(ctx, created.ID)
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})
}

func TestCompanyService_FilterByStatus(t *testing.T) {
	db := testutil.SetupSQLiteTestDB(t)
	service := NewCompanyService(repository.NewGormCompanyRepository(db))
	testutil.SeedCompanies(t, db, 5)
	ctx := context.Background()

	active, err := service.FilterByStatus(ctx, "Active")
	require.NoError(t, err)
	assert.Len(t, active, 3)
	for _, c := range active {
		assert.Equal(t, models.CompanyStatusActive, c.CompanyStatus)
	}

	all, err := service.FilterByStatus(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	none, err := service.FilterByStatus(ctx, "Pending")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCompanyService_PaginateCompanies(t *testing.T) {
	db := testutil.SetupSQLiteTestDB(t)
	service := NewCompanyService(repository.NewGormCompanyRepository(db))
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		page, err := service.PaginateCompanies(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, page.Companies)
		assert.Equal(t, 0, page.TotalPages)
		assert.Equal(t, 1, page.Page)
	})

	testutil.SeedCompanies(t, db, 7)

	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantNames []string
	}{
		{"first page", 1, 1, []string{"Company 1", "Company 2", "Company 3"}},
		{"middle page", 2, 2, []string{"Company 4", "Company 5", "Company 6"}},
		{"last partial page", 3, 3, []string{"Company 7"}},
		{"beyond last page", 4, 4, nil},
		{"zero falls back to first", 0, 1, []string{"Company 1", "Company 2", "Company 3"}},
		{"negative falls back to first", -2, 1, []string{"Company 1", "Company 2", "Company 3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := service.PaginateCompanies(ctx, tt.page)
			require.NoError(t, err)
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.NotNil(t, page.Companies)

			names := make([]string, 0, len(page.Companies))
			for _, c := range page.Companies {
				names = append(names, c.CompanyName)
			}
			if tt.wantNames == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.wantNames, names)
			}
		})
	}
}

func TestCompanyService_PaginateCompanies_PastLastPage(t *testing.T) {
	repo := testutil.NewMockRepository()
	service := NewCompanyService(repo)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := service.CreateCompany(ctx, validCreateRequest())
		require.NoError(t, err)
	}

	const maxInt = int(^uint(0) >> 1)
	for _, p := range []int{4, maxInt / 3, maxInt} {
		page, err := service.PaginateCompanies(ctx, p)
		require.NoError(t, err)
		assert.NotNil(t, page.Companies)
		assert.Empty(t, page.Companies)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, p, page.Page)
	}
	assert.Zero(t, repo.CallCount("FindAll"))
}

func TestCompanyService_RepositoryFailures(t *testing.T) {
	dbErr := errors.New("connection reset")
	repo := testutil.NewMockRepository()
	repo.Err = dbErr
	service := NewCompanyService(repo)
	ctx := context.Background()

	_, err := service.CreateCompany(ctx, validCreateRequest())
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, IsValidationError(err))

	_, err = service.ListCompanies(ctx)
	assert.ErrorIs(t, err, dbErr)

	_, err = service.GetCompany(ctx, 1)
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, IsNotFound(err))

	city := "Boston"
	_, err = service.UpdateCompany(ctx, 1, &models.UpdateCompanyRequest{City: &city})
	assert.ErrorIs(t, err, dbErr)

	assert.ErrorIs(t, service.DeleteCompany(ctx, 1), dbErr)

	_, err = service.FilterByStatus(ctx, "Active")
	assert.ErrorIs(t, err, dbErr)

	_, err = service.PaginateCompanies(ctx, 1)
	assert.ErrorIs(t, err, dbErr)
}

func TestCompanyService_ConcurrentCreates(t *testing.T) {
	service := newSQLiteService(t)
	ctx := context.Background()

	const workers = 10
	ids := make(chan uint, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			company, err := service.CreateCompany(ctx, validCreateRequest())
			if assert.NoError(t, err) {
				ids <- company.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}
