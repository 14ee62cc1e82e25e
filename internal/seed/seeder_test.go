package seed

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/marvik-ai/success-orchestry-api/internal/employee"
	employeeerrors "github.com/marvik-ai/success-orchestry-api/internal/employee/errors"
	"github.com/marvik-ai/success-orchestry-api/internal/employeesalary"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/testdb"
	"github.com/marvik-ai/success-orchestry-api/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_Employees(t *testing.T) {
	db := testdb.Open(t, &employee.Employee{}, &employee.PersonalInfo{}, &employeesalary.FinancialInfo{})
	employees := employee.NewService(db, employee.NewRepository(db))
	financial := employeesalary.NewService(db, employeesalary.NewRepository(db))
	seeder := NewSeeder(employees, financial, rand.New(rand.NewPCG(1, 2)))

	created, err := seeder.Employees(context.Background(), 12)

	require.NoError(t, err)
	assert.Equal(t, 12, created)

	result, err := employees.Search(context.Background(), employee.SearchParams{Limit: 100, IncludeFinancial: true})
	require.NoError(t, err)
	assert.Equal(t, int64(12), result.Total)
	for _, item := range result.Items {
		assert.NotNil(t, item.FinancialInfo, "employee %s has no current record", item.Code)
	}
}

func TestSeeder_RandomValuesPassValidation(t *testing.T) {
	seeder := NewSeeder(nil, nil, rand.New(rand.NewPCG(7, 7)))

	for i := 0; i < 50; i++ {
		req := seeder.randomEmployee()
		_, err := validation.EmployeeCode(req.Code)
		require.NoError(t, err)
		_, err = validation.Email("personal_email", req.PersonalEmail)
		require.NoError(t, err, req.PersonalEmail)

		fin := seeder.randomFinancial()
		assert.True(t, fin.CompanyCostAmount.GreaterThanOrEqual(*fin.SalaryAmount))
	}
}

type collidingService struct {
	employee.Service
	calls int
}

func (c *collidingService) Create(context.Context, employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	c.calls++
	return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeCodeAlreadyExists
}

func TestSeeder_GivesUpAfterRepeatedCollisions(t *testing.T) {
	svc := &collidingService{}
	seeder := NewSeeder(svc, nil, rand.New(rand.NewPCG(1, 1)))

	created, err := seeder.Employees(context.Background(), 1)

	assert.Zero(t, created)
	assert.True(t, errors.Is(err, employeeerrors.ErrEmployeeCodeAlreadyExists))
	assert.Equal(t, maxAttemptsPerEmployee, svc.calls)
}
