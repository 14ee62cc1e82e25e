package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/marvik-ai/success-orchestry-api/internal/employee/errors"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolations maps a constraint to its error. Postgres reports the
// constraint name, sqlite the table.column it covers.
var uniqueViolations = []struct {
	constraint string
	column     string
	err        error
}{
	{"uq_employee_code", "employees.code", employeeerrors.ErrEmployeeCodeAlreadyExists},
	{"uq_personal_info_email", "employee_personal_infos.personal_email", employeeerrors.ErrEmployeeEmailAlreadyExists},
	{"uq_personal_info_employee", "employee_personal_infos.employee_id", employeeerrors.ErrPersonalInfoAlreadyExists},
}

const countryForeignKey = "fk_personal_info_country"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			for _, v := range uniqueViolations {
				if pgErr.ConstraintName == v.constraint {
					return v.err
				}
			}
			return apperror.ErrConflict
		case "23503":
			if pgErr.ConstraintName == countryForeignKey {
				return employeeerrors.ErrUnknownCountry
			}
			return employeeerrors.ErrEmployeeIntegrity
		case "23514", "23502":
			return employeeerrors.ErrEmployeeIntegrity
		}
	}

	errMsg := strings.ToLower(err.Error())
	for _, v := range uniqueViolations {
		if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, v.constraint) {
			return v.err
		}
		if strings.Contains(errMsg, "unique constraint failed") && strings.Contains(errMsg, v.column) {
			return v.err
		}
	}

	if strings.Contains(errMsg, "duplicate key value") || strings.Contains(errMsg, "unique constraint failed") {
		return apperror.ErrConflict
	}

	return err
}
