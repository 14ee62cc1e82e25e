package employeesalary

import (
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

type CreateFinancialInfoRequest struct {
	SalaryAmount      *decimal.Decimal `json:"salary_amount" binding:"required"`
	CurrencyCode      string           `json:"currency_code" binding:"required,len=3"`
	CompanyCostAmount *decimal.Decimal `json:"company_cost_amount" binding:"required"`
	EffectiveFrom     string           `json:"effective_from" binding:"required"`
	EffectiveTo       *string          `json:"effective_to"`
}

type FinancialInfoResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	SalaryAmount      decimal.Decimal `json:"salary_amount"`
	CompanyCostAmount decimal.Decimal `json:"company_cost_amount"`
	CurrencyCode      string          `json:"currency_code"`
	SalaryDisplay     string          `json:"salary_display"`
	EffectiveFrom     string          `json:"effective_from"`
	EffectiveTo       *string         `json:"effective_to"`
	IsCurrent         bool            `json:"is_current"`
	CreatedAt         time.Time       `json:"created_at"`
}

func ToResponse(f FinancialInfo) FinancialInfoResponse {
	resp := FinancialInfoResponse{
		ID:                f.ID.String(),
		EmployeeID:        f.EmployeeID.String(),
		SalaryAmount:      f.SalaryAmount,
		CompanyCostAmount: f.CompanyCostAmount,
		CurrencyCode:      f.CurrencyCode,
		SalaryDisplay:     displayAmount(f.SalaryAmount, f.CurrencyCode),
		EffectiveFrom:     f.EffectiveFrom.Format(time.DateOnly),
		IsCurrent:         f.IsCurrent(),
		CreatedAt:         f.CreatedAt,
	}
	if f.EffectiveTo != nil {
		to := f.EffectiveTo.Format(time.DateOnly)
		resp.EffectiveTo = &to
	}
	return resp
}

func ToListResponse(records []FinancialInfo) []FinancialInfoResponse {
	res := make([]FinancialInfoResponse, len(records))
	for i, r := range records {
		res[i] = ToResponse(r)
	}
	return res
}

// displayAmount renders amount with the currency's symbol and minor units,
// e.g. "$5,000.00".
func displayAmount(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2) + " " + code
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}
