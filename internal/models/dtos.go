package models

// CreateCompanyRequest is the body of POST /companies
type CreateCompanyRequest struct {
	CompanyName   string        `json:"companyName" validate:"required"`
	ContactName   string        `json:"contactName" validate:"required"`
	Email         string        `json:"email" validate:"required,email"`
	Phone         string        `json:"phone" validate:"required"`
	Address       string        `json:"address" validate:"required"`
	City          string        `json:"city" validate:"required"`
	State         string        `json:"state" validate:"required"`
	ZipCode       int           `json:"zipCode" validate:"required,gt=0"`
	Website       *string       `json:"website,omitempty" validate:"omitempty,url"`
	CompanyStatus CompanyStatus `json:"companyStatus" validate:"required,oneof=Active Inactive"`
}

// ToModel converts the request into a new Company row
func (r *CreateCompanyRequest) ToModel() *Company {
	website := r.Website
	if website != nil && *website == "" {
		website = nil
	}
	return &Company{
		CompanyName:   r.CompanyName,
		ContactName:   r.ContactName,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		City:          r.City,
		State:         r.State,
		ZipCode:       r.ZipCode,
		Website:       website,
		CompanyStatus: r.CompanyStatus,
	}
}

// UpdateCompanyRequest is the body of PUT /companies/{companyId}.
// Pointers distinguish omitted fields from provided ones.
type UpdateCompanyRequest struct {
	CompanyName   *string        `json:"companyName,omitempty" validate:"omitnil,min=1"`
	ContactName   *string        `json:"contactName,omitempty" validate:"omitnil,min=1"`
	Email         *string        `json:"email,omitempty" validate:"omitnil,email"`
	Phone         *string        `json:"phone,omitempty" validate:"omitnil,min=1"`
	Address       *string        `json:"address,omitempty" validate:"omitnil,min=1"`
	City          *string        `json:"city,omitempty" validate:"omitnil,min=1"`
	State         *string        `json:"state,omitempty" validate:"omitnil,min=1"`
	ZipCode       *int           `json:"zipCode,omitempty" validate:"omitnil,gt=0"`
	Website       *string        `json:"website,omitempty" validate:"omitempty,url"`
	CompanyStatus *CompanyStatus `json:"companyStatus,omitempty" validate:"omitnil,oneof=Active Inactive"`
}

// Changes returns the provided fields keyed by column name
func (r *UpdateCompanyRequest) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if r == nil {
		return changes
	}
	if r.CompanyName != nil {
		changes["company_name"] = *r.CompanyName
	}
	if r.ContactName != nil {
		changes["contact_name"] = *r.ContactName
	}
	if r.Email != nil {
		changes["email"] = *r.Email
	}
	if r.Phone != nil {
		changes["phone"] = *r.Phone
	}
	if r.Address != nil {
		changes["address"] = *r.Address
	}
	if r.City != nil {
		changes["city"] = *r.City
	}
	if r.State != nil {
		changes["state"] = *r.State
	}
	if r.ZipCode != nil {
		changes["zip_code"] = *r.ZipCode
	}
	if r.Website != nil {
		// An empty website clears the column, matching a create without one
		if *r.Website == "" {
			changes["website"] = nil
		} else {
			changes["website"] = *r.Website
		}
	}
	if r.CompanyStatus != nil {
		changes["company_status"] = string(*r.CompanyStatus)
	}
	return changes
}

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a bare confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// UpdateCompanyResponse wraps the re-read row after an update
type UpdateCompanyResponse struct {
	Message        string   `json:"message"`
	UpdatedCompany *Company `json:"updatedCompany"`
}

// CompanyListResponse is the message envelope used by the status filter
type CompanyListResponse struct {
	Message   string    `json:"message"`
	Companies []Company `json:"companies"`
}

// CompanyPage is one page of companies plus paging metadata
type CompanyPage struct {
	Companies  []Company `json:"companies"`
	TotalPages int       `json:"totalPages"`
	Page       int       `json:"page"`
}
