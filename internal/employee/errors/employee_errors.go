package employeeerrors

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
	ErrEmployeeCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee code already exists",
		http.StatusConflict,
	)
	ErrEmployeeEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same personal email already exists",
		http.StatusConflict,
	)
	ErrPersonalInfoAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee already has personal information",
		http.StatusConflict,
	)
	ErrEmployeeHasActiveAssignments = apperror.New(
		apperror.CodeConflict,
		"Employee still has active project assignments",
		http.StatusConflict,
	)
	ErrMissingPersonalInfo = apperror.New(
		apperror.CodeIntegrity,
		"Employee record has no personal information",
		http.StatusUnprocessableEntity,
	)
	ErrEmployeeIntegrity = apperror.New(
		apperror.CodeIntegrity,
		"Employee record violates a data integrity rule",
		http.StatusUnprocessableEntity,
	)
	ErrUnknownCountry = apperror.New(
		apperror.CodeIntegrity,
		"country_id does not reference a known country",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidEmployeeID = apperror.Validation(
		"id",
		apperror.RuleFormat,
		"Invalid employee ID",
	)
	ErrEmptyPatch = apperror.Validation(
		"body",
		apperror.RuleRequired,
		"At least one field must be supplied",
	)
)
