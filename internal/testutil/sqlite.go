package testutil

import (
	"strconv"
	"testing"
	"time"

	"github.com/gov-dx-sandbox/company-service/internal/config"
	"github.com/gov-dx-sandbox/company-service/internal/database"
	"github.com/gov-dx-sandbox/company-service/internal/models"
	"gorm.io/gorm"
)

// SetupSQLiteTestDB creates a migrated in-memory SQLite database for one test.
// The pool is pinned to a single connection so every query sees the same memory database.
func SetupSQLiteTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		SQLitePath:      ":memory:",
		LogLevel:        "silent",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Hour,
	}

	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Close(db)
	})

	return db
}

// SeedCompanies inserts n companies named "Company 1".."Company n", alternating Active and Inactive
func SeedCompanies(t *testing.T, db *gorm.DB, n int) []models.Company {
	t.Helper()

	companies := make([]models.Company, 0, n)
	for i := 1; i <= n; i++ {
		status := models.CompanyStatusActive
		if i%2 == 0 {
			status = models.CompanyStatusInactive
		}
		company := NewCompany(i, status)
		if err := db.Create(&company).Error; err != nil {
			t.Fatalf("Failed to seed company %d: %v", i, err)
		}
		companies = append(companies, company)
	}
	return companies
}

// NewCompany returns an unsaved company with every required field populated
func NewCompany(i int, status models.CompanyStatus) models.Company {
	return models.Company{
		CompanyName:   "Company " + strconv.Itoa(i),
		ContactName:   "Contact " + strconv.Itoa(i),
		Email:         "contact" + strconv.Itoa(i) + "@example.com",
		Phone:         "555000" + strconv.Itoa(i),
		Address:       strconv.Itoa(i) + " Main St",
		City:          "New York",
		State:         "NY",
		ZipCode:       10000 + i,
		CompanyStatus: status,
	}
}
