// Package validation holds the pure normalization rules applied to employee
// input before anything is written. Every rule returns the normalized value or
// an apperror validation error naming the field and the violated rule.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"

	"github.com/Rhymond/go-money"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	employeeCodePattern = regexp.MustCompile(`^[A-Z]{3}-[0-9]{3}$`)
	documentStripper    = strings.NewReplacer("-", "", ".", "", " ", "")

	// validate runs single-value tag rules outside request binding.
	validate = validator.New()
)

// EmployeeCode upper-cases and trims raw, then requires the AAA-000 shape.
func EmployeeCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return "", apperror.RequiredField("code")
	}
	if !employeeCodePattern.MatchString(code) {
		return "", apperror.Validation("code", apperror.RuleFormat, "code must look like ABC-123")
	}
	return code, nil
}

// Name title-cases a required personal name.
func Name(field, raw string) (string, error) {
	name := titleCase(raw)
	if name == "" {
		return "", apperror.RequiredField(field)
	}
	return name, nil
}

// OptionalName title-cases raw; nil and blank input both yield nil.
func OptionalName(raw *string) *string {
	if raw == nil {
		return nil
	}
	name := titleCase(*raw)
	if name == "" {
		return nil
	}
	return &name
}

func titleCase(raw string) string {
	collapsed := strings.Join(strings.Fields(raw), " ")
	if collapsed == "" {
		return ""
	}
	// A fresh caser per call: cases.Caser is not safe for concurrent use.
	return cases.Title(language.Und).String(collapsed)
}

// Document strips separators from a government document or tax number.
func Document(field, raw string) (string, error) {
	doc := strings.ToUpper(documentStripper.Replace(strings.TrimSpace(raw)))
	if doc == "" {
		return "", apperror.RequiredField(field)
	}
	return doc, nil
}

// OptionalDocument is Document for nullable columns.
func OptionalDocument(field string, raw *string) (*string, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	doc, err := Document(field, *raw)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Email lower-cases raw and checks it with validator's email rule.
func Email(field, raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", apperror.RequiredField(field)
	}
	if err := validate.Var(email, "email"); err != nil {
		return "", apperror.Validation(field, apperror.RuleFormat, field+" must be a valid email address")
	}
	return email, nil
}

// Money checks the salary/company-cost pair.
func Money(salary, companyCost decimal.Decimal) error {
	if salary.IsNegative() {
		return apperror.Validation("salary_amount", apperror.RuleNonNegative, "salary_amount must not be negative")
	}
	if companyCost.IsNegative() {
		return apperror.Validation("company_cost_amount", apperror.RuleNonNegative, "company_cost_amount must not be negative")
	}
	if companyCost.LessThan(salary) {
		return apperror.Validation("company_cost_amount", apperror.RuleGTESalary, "company_cost_amount must be greater than or equal to salary_amount")
	}
	return nil
}

// Currency requires a known ISO-4217 code.
func Currency(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return "", apperror.RequiredField("currency_code")
	}
	if money.GetCurrency(code) == nil {
		return "", apperror.Validation("currency_code", apperror.RuleFormat, "currency_code must be an ISO-4217 code")
	}
	return code, nil
}

// DateRange rejects an effective_to earlier than effective_from.
func DateRange(from time.Time, to *time.Time) error {
	if to != nil && to.Before(from) {
		return apperror.Validation("effective_to", apperror.RuleDateOrder, "effective_to must not be earlier than effective_from")
	}
	return nil
}

// Date parses a YYYY-MM-DD value.
func Date(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, apperror.RequiredField(field)
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, apperror.Validation(field, apperror.RuleFormat, field+" must use the YYYY-MM-DD format")
	}
	return d, nil
}

// OptionalText trims raw and maps blank input to nil.
func OptionalText(raw *string) *string {
	if raw == nil {
		return nil
	}
	v := strings.TrimSpace(*raw)
	if v == "" {
		return nil
	}
	return &v
}
