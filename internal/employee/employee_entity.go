package employee

import (
	"strings"
	"time"

	"github.com/marvik-ai/success-orchestry-api/internal/employeesalary"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusTerminated:
		return true
	}
	return false
}

// ParseStatus accepts any casing of the closed status vocabulary.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", apperror.Validation("status", apperror.RuleOneOf, "status must be one of: active inactive terminated")
	}
	return s, nil
}

type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Identity struct {
	Code   string  `gorm:"type:varchar(7);not null;uniqueIndex:uq_employee_code" json:"code"`
	Status Status  `gorm:"type:varchar(16);not null;default:active" json:"status"`
	Notes  *string `gorm:"type:text" json:"notes,omitempty"`
}

type Employee struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Identity
	Timestamps
	DeletedAt gorm.DeletedAt `gorm:"index"`

	PersonalInfo     *PersonalInfo                  `gorm:"foreignKey:EmployeeID"`
	FinancialRecords []employeesalary.FinancialInfo `gorm:"foreignKey:EmployeeID"`
}

func (Employee) TableName() string {
	return "employees"
}

type PersonName struct {
	FirstName string  `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string  `gorm:"type:varchar(100);not null" json:"last_name"`
	Nickname  *string `gorm:"type:varchar(100)" json:"nickname,omitempty"`
}

type Documents struct {
	DocumentNumber string  `gorm:"type:varchar(32);not null" json:"document_number"`
	TaxID          *string `gorm:"type:varchar(32)" json:"tax_id,omitempty"`
}

type Contact struct {
	PersonalEmail string  `gorm:"type:varchar(255);not null;uniqueIndex:uq_personal_info_email" json:"personal_email"`
	Phone         *string `gorm:"type:varchar(32)" json:"phone,omitempty"`
	PhotoURL      *string `gorm:"type:text" json:"photo_url,omitempty"`
}

type Location struct {
	City      *string `gorm:"type:varchar(100)" json:"city,omitempty"`
	CountryID *int64  `json:"country_id,omitempty"`
	Address   *string `gorm:"type:text" json:"address,omitempty"`
}

// PersonalInfo is hard-deleted when its employee is soft-deleted.
type PersonalInfo struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_personal_info_employee"`
	PersonName
	Documents
	Contact
	Location
	Timestamps
}

func (PersonalInfo) TableName() string {
	return "employee_personal_infos"
}
