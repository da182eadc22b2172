package models

// CompanyStatus is the lifecycle state of a company record
type CompanyStatus string

const (
	CompanyStatusActive   CompanyStatus = "Active"
	CompanyStatusInactive CompanyStatus = "Inactive"
)

// IsValid reports whether s is one of the enumerated statuses
func (s CompanyStatus) IsValid() bool {
	switch s {
	case CompanyStatusActive, CompanyStatusInactive:
		return true
	default:
		return false
	}
}

// Company represents the companies table
type Company struct {
	ID            uint          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	CompanyName   string        `gorm:"column:company_name;type:varchar(255);not null" json:"companyName"`
	ContactName   string        `gorm:"column:contact_name;type:varchar(255);not null" json:"contactName"`
	Email         string        `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Phone         string        `gorm:"column:phone;type:varchar(50);not null" json:"phone"`
	Address       string        `gorm:"column:address;type:varchar(255);not null" json:"address"`
	City          string        `gorm:"column:city;type:varchar(100);not null" json:"city"`
	State         string        `gorm:"column:state;type:varchar(100);not null" json:"state"`
	ZipCode       int           `gorm:"column:zip_code;not null" json:"zipCode"`
	Website       *string       `gorm:"column:website;type:varchar(255)" json:"website"`
	CompanyStatus CompanyStatus `gorm:"column:company_status;type:varchar(20);not null;check:company_status IN ('Active','Inactive')" json:"companyStatus"`
	BaseModel
}

// TableName sets the table name for GORM
func (Company) TableName() string {
	return "companies"
}
