package apperror

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// recipient_phone -> Recipient Phone
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns gin binding errors into a field-level AppError.
// Field names come from the json tags registered in Init.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := e.Field()
		label := formatFieldName(field)

		switch e.Tag() {
		case "required":
			return Validation(field, RuleRequired, label+" is required")
		case "oneof":
			return Validation(field, RuleOneOf, label+" must be one of: "+e.Param())
		case "gte", "min":
			return Validation(field, RuleNonNegative, label+" must not be negative")
		default:
			return Validation(field, RuleFormat, label+" is invalid")
		}
	}

	return Wrap(err, CodeInvalidInput, "Invalid request body", ErrInvalidInput.HTTPStatus)
}
