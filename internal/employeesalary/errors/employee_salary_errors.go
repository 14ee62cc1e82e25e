package employeesalaryerrors

import (
	"net/http"

	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrFinancialRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee has no current financial record",
		http.StatusNotFound,
	)
	ErrCurrentRecordExists = apperror.New(
		apperror.CodeConflict,
		"Employee already has a current financial record",
		http.StatusConflict,
	)
	ErrCurrentRecordChanged = apperror.New(
		apperror.CodeConflict,
		"The current financial record was modified concurrently",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.Validation(
		"id",
		apperror.RuleFormat,
		"Invalid employee ID",
	)
	ErrEffectiveFromBeforeCurrent = apperror.Validation(
		"effective_from",
		apperror.RuleDateOrder,
		"effective_from must not precede the current record's effective_from",
	)
	ErrFinancialIntegrity = apperror.New(
		apperror.CodeIntegrity,
		"Financial record violates a data integrity rule",
		http.StatusUnprocessableEntity,
	)
)
