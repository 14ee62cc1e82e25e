package countryerrors

import (
	"net/http"

	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"
)

var (
	ErrCountryAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Country already exists",
		http.StatusConflict,
	)
	ErrCountryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Country not found",
		http.StatusNotFound,
	)
)
