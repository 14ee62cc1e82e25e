package country

import (
	"errors"
	"strings"

	countryerrors "github.com/marvik-ai/success-orchestry-api/internal/country/errors"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return countryerrors.ErrCountryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_country_name" {
			return countryerrors.ErrCountryAlreadyExists
		}
		return apperror.ErrConflict
	}

	// sqlite reports the indexed column instead of the index name.
	if strings.Contains(strings.ToLower(err.Error()), "unique constraint failed: countries.name") {
		return countryerrors.ErrCountryAlreadyExists
	}

	return err
}
