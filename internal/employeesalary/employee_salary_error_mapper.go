package employeesalary

import (
	"errors"
	"strings"

	employeesalaryerrors "github.com/marvik-ai/success-orchestry-api/internal/employeesalary/errors"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeesalaryerrors.ErrFinancialRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_financial_current" {
				return employeesalaryerrors.ErrCurrentRecordExists
			}
			return apperror.ErrConflict
		case "23503":
			return employeesalaryerrors.ErrEmployeeNotFound
		case "23514", "23502":
			return employeesalaryerrors.ErrFinancialIntegrity
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_financial_current") {
		return employeesalaryerrors.ErrCurrentRecordExists
	}
	// sqlite reports the indexed column instead of the index name.
	if strings.Contains(errMsg, "unique constraint failed") && strings.Contains(errMsg, "employee_financial_infos.employee_id") {
		return employeesalaryerrors.ErrCurrentRecordExists
	}

	return err
}
