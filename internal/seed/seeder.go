// Package seed fills a database with plausible employees through the same
// services the API uses, so every seeded row passes the normal validation.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/marvik-ai/success-orchestry-api/internal/employee"
	employeeerrors "github.com/marvik-ai/success-orchestry-api/internal/employee/errors"
	"github.com/marvik-ai/success-orchestry-api/internal/employeesalary"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// maxAttemptsPerEmployee bounds retries when a random code or email collides.
const maxAttemptsPerEmployee = 5

var (
	codePrefixes = []string{"ENG", "OPS", "FIN", "HRM", "SAL", "MKT"}
	firstNames   = []string{"ana", "bruno", "carla", "diego", "elena", "facundo", "gabriela", "hugo", "inés", "julián", "lucía", "martín"}
	lastNames    = []string{"gonzález", "rodríguez", "fernández", "lópez", "martínez", "pérez", "gómez", "díaz", "sosa", "romero"}
	cities       = []string{"buenos aires", "montevideo", "santiago", "lima", "bogotá"}
	currencies   = []string{"USD", "ARS", "UYU", "CLP", "EUR"}
)

type Seeder struct {
	employees employee.Service
	financial employeesalary.Service
	rng       *rand.Rand
	logger    *zap.Logger
}

func NewSeeder(employees employee.Service, financial employeesalary.Service, rng *rand.Rand, logger ...*zap.Logger) *Seeder {
	l := zap.L().Named("seed")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("seed")
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Seeder{employees: employees, financial: financial, rng: rng, logger: l}
}

// Employees creates qty employees, each with personal info and one current
// financial record, and returns how many were created.
func (s *Seeder) Employees(ctx context.Context, qty int) (int, error) {
	created := 0
	for i := 0; i < qty; i++ {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		if err := s.one(ctx); err != nil {
			return created, fmt.Errorf("seed employee %d of %d: %w", i+1, qty, err)
		}
		created++
	}
	s.logger.Info("seeded employees", zap.Int("count", created))
	return created, nil
}

func (s *Seeder) one(ctx context.Context) error {
	var lastErr error
	for attempt := 0; attempt < maxAttemptsPerEmployee; attempt++ {
		emp, err := s.employees.Create(ctx, s.randomEmployee())
		if isCollision(err) {
			lastErr = err
			s.logger.Debug("seed collision, retrying", zap.Int("attempt", attempt+1), zap.Error(err))
			continue
		}
		if err != nil {
			return err
		}

		_, err = s.financial.Append(ctx, emp.ID, s.randomFinancial())
		return err
	}
	return lastErr
}

func isCollision(err error) bool {
	return errors.Is(err, employeeerrors.ErrEmployeeCodeAlreadyExists) ||
		errors.Is(err, employeeerrors.ErrEmployeeEmailAlreadyExists)
}

func (s *Seeder) pick(values []string) string {
	return values[s.rng.IntN(len(values))]
}

func (s *Seeder) randomEmployee() employee.CreateEmployeeRequest {
	code := fmt.Sprintf("%s-%03d", s.pick(codePrefixes), s.rng.IntN(1000))
	first := s.pick(firstNames)
	last := s.pick(lastNames)
	city := s.pick(cities)

	return employee.CreateEmployeeRequest{
		Code: code,
		PersonalInfoInput: employee.PersonalInfoInput{
			FirstName:      first,
			LastName:       last,
			DocumentNumber: fmt.Sprintf("%08d", s.rng.IntN(100_000_000)),
			PersonalEmail:  emailFor(first, last, code),
			City:           &city,
		},
	}
}

func (s *Seeder) randomFinancial() employeesalary.CreateFinancialInfoRequest {
	salary := decimal.NewFromInt(int64(1500 + s.rng.IntN(8500)))
	// Company cost sits 20-45% above salary.
	markup := decimal.NewFromInt(int64(120 + s.rng.IntN(26))).Div(decimal.NewFromInt(100))
	cost := salary.Mul(markup).Round(2)

	return employeesalary.CreateFinancialInfoRequest{
		SalaryAmount:      &salary,
		CurrencyCode:      s.pick(currencies),
		CompanyCostAmount: &cost,
		EffectiveFrom:     fmt.Sprintf("%d-%02d-01", 2020+s.rng.IntN(5), 1+s.rng.IntN(12)),
	}
}

var asciiFolder = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n")

func emailFor(first, last, code string) string {
	local := asciiFolder.Replace(first + "." + last + "." + strings.ToLower(code))
	return local + "@example.com"
}
