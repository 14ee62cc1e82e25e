package apperror

import (
	"errors"
	"net/http"
)

const (
	RuleRequired     = "required"
	RuleFormat       = "format"
	RuleNonNegative  = "non_negative"
	RuleGTESalary    = "gte_salary"
	RuleDateOrder    = "after_effective_from"
	RuleOneOf        = "one_of"
	RuleUnknownField = "unknown_field"
	RuleType         = "type"
)

// FieldViolation is the field-level detail attached to validation errors.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Validation builds a 400 error naming the offending field and rule.
func Validation(field, rule, message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Details:    []FieldViolation{{Field: field, Rule: rule}},
	}
}

// ViolationOf returns the first field violation carried by err, if any.
func ViolationOf(err error) (FieldViolation, bool) {
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Code != CodeInvalidInput {
		return FieldViolation{}, false
	}
	violations, ok := appErr.Details.([]FieldViolation)
	if !ok || len(violations) == 0 {
		return FieldViolation{}, false
	}
	return violations[0], true
}
