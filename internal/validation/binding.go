package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindingRules exposes the rules to gin's request binding as tags.
func RegisterBindingRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("employee_code", func(fl validator.FieldLevel) bool {
		_, err := EmployeeCode(fl.Field().String())
		return err == nil
	})
}
