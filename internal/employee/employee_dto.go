package employee

import (
	"github.com/marvik-ai/success-orchestry-api/internal/employeesalary"
)

// PersonalInfoInput carries the fields owned by the personal-info record.
type PersonalInfoInput struct {
	FirstName      string  `json:"first_name" binding:"required"`
	LastName       string  `json:"last_name" binding:"required"`
	Nickname       *string `json:"nickname"`
	DocumentNumber string  `json:"document_number" binding:"required"`
	TaxID          *string `json:"tax_id"`
	PersonalEmail  string  `json:"personal_email" binding:"required,email"`
	Phone          *string `json:"phone"`
	PhotoURL       *string `json:"photo_url" binding:"omitempty,url"`
	City           *string `json:"city"`
	CountryID      *int64  `json:"country_id" binding:"omitempty,gt=0"`
	Address        *string `json:"address"`
}

// CreateEmployeeRequest is one flat JSON object; identity fields stay on the
// request and the embedded group goes to the personal-info record.
type CreateEmployeeRequest struct {
	Code   string  `json:"code" binding:"required,employee_code"`
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
	PersonalInfoInput
}

// EmployeeResponse is the assembled aggregate. Field groups are embedded by
// value so the JSON shape is flat.
type EmployeeResponse struct {
	ID string `json:"id"`
	Identity
	PersonName
	Documents
	Contact
	Location
	Timestamps
	FinancialInfo *employeesalary.FinancialInfoResponse `json:"financial_info,omitempty"`
}

type SearchResult struct {
	Items []EmployeeResponse
	Total int64
	Page  int
	Limit int
}
