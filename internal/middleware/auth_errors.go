package middleware

import (
	"net/http"

	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"
)

var (
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrMissingRole = apperror.New(
		apperror.CodeForbidden,
		"Token carries no role",
		http.StatusForbidden,
	)
)
