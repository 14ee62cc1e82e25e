package employeesalary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialInfo is one version of an employee's compensation. Rows are
// append-only; at most one per employee is open (EffectiveTo nil).
type FinancialInfo struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_financial_employee;uniqueIndex:uq_financial_current,where:effective_to IS NULL"`
	SalaryAmount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CurrencyCode      string          `gorm:"type:char(3);not null"`
	CompanyCostAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	EffectiveFrom     time.Time       `gorm:"type:date;not null"`
	EffectiveTo       *time.Time      `gorm:"type:date"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (FinancialInfo) TableName() string {
	return "employee_financial_infos"
}

func (f FinancialInfo) IsCurrent() bool {
	return f.EffectiveTo == nil
}

// Current returns the open record of records, or nil.
func Current(records []FinancialInfo) *FinancialInfo {
	for i := range records {
		if records[i].IsCurrent() {
			return &records[i]
		}
	}
	return nil
}
