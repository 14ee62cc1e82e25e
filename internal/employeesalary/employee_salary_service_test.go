package employeesalary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marvik-ai/success-orchestry-api/internal/employeesalary"
	employeesalaryerrors "github.com/marvik-ai/success-orchestry-api/internal/employeesalary/errors"
	"github.com/marvik-ai/success-orchestry-api/internal/events"
	"github.com/marvik-ai/success-orchestry-api/internal/messaging/kafka"
	kafkaMock "github.com/marvik-ai/success-orchestry-api/internal/messaging/kafka/mock"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/testdb"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeFinancialRepository struct {
	employeeExistsFn func(ctx context.Context, employeeID uuid.UUID, includeDeleted bool) (bool, error)
	createFn         func(ctx context.Context, record *employeesalary.FinancialInfo) error
	findCurrentFn    func(ctx context.Context, employeeID uuid.UUID) (*employeesalary.FinancialInfo, error)
	closeCurrentFn   func(ctx context.Context, id uuid.UUID, effectiveTo time.Time) error
	findHistoryFn    func(ctx context.Context, employeeID uuid.UUID) ([]employeesalary.FinancialInfo, error)
}

func (f *fakeFinancialRepository) WithTx(*gorm.DB) employeesalary.Repository {
	return f
}

func (f *fakeFinancialRepository) EmployeeExists(ctx context.Context, employeeID uuid.UUID, includeDeleted bool) (bool, error) {
	if f.employeeExistsFn != nil {
		return f.employeeExistsFn(ctx, employeeID, includeDeleted)
	}
	return true, nil
}

func (f *fakeFinancialRepository) Create(ctx context.Context, record *employeesalary.FinancialInfo) error {
	if f.createFn != nil {
		return f.createFn(ctx, record)
	}
	return nil
}

func (f *fakeFinancialRepository) FindCurrent(ctx context.Context, employeeID uuid.UUID) (*employeesalary.FinancialInfo, error) {
	if f.findCurrentFn != nil {
		return f.findCurrentFn(ctx, employeeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFinancialRepository) CloseCurrent(ctx context.Context, id uuid.UUID, effectiveTo time.Time) error {
	if f.closeCurrentFn != nil {
		return f.closeCurrentFn(ctx, id, effectiveTo)
	}
	return nil
}

func (f *fakeFinancialRepository) FindHistory(ctx context.Context, employeeID uuid.UUID) ([]employeesalary.FinancialInfo, error) {
	if f.findHistoryFn != nil {
		return f.findHistoryFn(ctx, employeeID)
	}
	return nil, nil
}

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	service employeesalary.Service
	repo    *fakeFinancialRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock := testdb.Mock(t)
	repo := &fakeFinancialRepository{}

	return &serviceDeps{
		sqlMock: sqlMock,
		service: employeesalary.NewService(db, repo),
		repo:    repo,
	}
}

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validRequest(from string) employeesalary.CreateFinancialInfoRequest {
	return employeesalary.CreateFinancialInfoRequest{
		SalaryAmount:      dec("5000"),
		CurrencyCode:      "usd",
		CompanyCostAmount: dec("6500.50"),
		EffectiveFrom:     from,
	}
}

func TestFinancialService_Append(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("closes the current record before inserting the new one", func(t *testing.T) {
		deps := setupServiceTest(t)
		currentID := uuid.New()
		var closedOn time.Time

		testdb.ExpectTx(deps.sqlMock, true)
		deps.repo.findCurrentFn = func(ctx context.Context, id uuid.UUID) (*employeesalary.FinancialInfo, error) {
			assert.Equal(t, employeeID, id)
			return &employeesalary.FinancialInfo{ID: currentID, EmployeeID: id, EffectiveFrom: date(2023, 1, 1)}, nil
		}
		deps.repo.closeCurrentFn = func(ctx context.Context, id uuid.UUID, to time.Time) error {
			assert.Equal(t, currentID, id)
			closedOn = to
			return nil
		}
		deps.repo.createFn = func(ctx context.Context, record *employeesalary.FinancialInfo) error {
			assert.False(t, closedOn.IsZero(), "current record must be closed first")
			assert.Equal(t, "USD", record.CurrencyCode)
			assert.True(t, record.CompanyCostAmount.Equal(decimal.RequireFromString("6500.50")))
			assert.Nil(t, record.EffectiveTo)
			return nil
		}

		resp, err := deps.service.Append(ctx, employeeID.String(), validRequest("2024-03-01"))

		assert.NoError(t, err)
		assert.Equal(t, date(2024, 3, 1), closedOn)
		assert.True(t, resp.IsCurrent)
		assert.Equal(t, "2024-03-01", resp.EffectiveFrom)
		assert.Equal(t, "$5,000.00", resp.SalaryDisplay)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("first record needs no closing", func(t *testing.T) {
		deps := setupServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, true)
		deps.repo.closeCurrentFn = func(context.Context, uuid.UUID, time.Time) error {
			t.Fatal("nothing to close")
			return nil
		}

		_, err := deps.service.Append(ctx, employeeID.String(), validRequest("2024-03-01"))

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("closed record is appended as history", func(t *testing.T) {
		deps := setupServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, true)
		deps.repo.findCurrentFn = func(context.Context, uuid.UUID) (*employeesalary.FinancialInfo, error) {
			t.Fatal("closed records do not touch the current one")
			return nil, nil
		}

		req := validRequest("2020-01-01")
		to := "2020-12-31"
		req.EffectiveTo = &to
		resp, err := deps.service.Append(ctx, employeeID.String(), req)

		assert.NoError(t, err)
		assert.False(t, resp.IsCurrent)
		assert.Equal(t, &to, resp.EffectiveTo)
	})

	t.Run("company cost below salary is rejected before any write", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest("2024-01-01")
		req.CompanyCostAmount = dec("4000")

		_, err := deps.service.Append(ctx, employeeID.String(), req)

		v, ok := apperror.ViolationOf(err)
		assert.True(t, ok)
		assert.Equal(t, apperror.RuleGTESalary, v.Rule)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reversed dates are rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest("2024-01-01")
		to := "2023-01-01"
		req.EffectiveTo = &to

		_, err := deps.service.Append(ctx, employeeID.String(), req)

		v, ok := apperror.ViolationOf(err)
		assert.True(t, ok)
		assert.Equal(t, "effective_to", v.Field)
	})

	t.Run("unknown currency is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest("2024-01-01")
		req.CurrencyCode = "ZZZ"

		_, err := deps.service.Append(ctx, employeeID.String(), req)

		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
	})

	t.Run("invalid employee id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Append(ctx, "not-a-uuid", validRequest("2024-01-01"))

		assert.ErrorIs(t, err, employeesalaryerrors.ErrInvalidEmployeeID)
	})

	t.Run("missing or deleted employee rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, false)
		deps.repo.employeeExistsFn = func(ctx context.Context, id uuid.UUID, includeDeleted bool) (bool, error) {
			assert.False(t, includeDeleted)
			return false, nil
		}

		_, err := deps.service.Append(ctx, employeeID.String(), validRequest("2024-01-01"))

		assert.ErrorIs(t, err, employeesalaryerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("new record may not start before the current one", func(t *testing.T) {
		deps := setupServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, false)
		deps.repo.findCurrentFn = func(context.Context, uuid.UUID) (*employeesalary.FinancialInfo, error) {
			return &employeesalary.FinancialInfo{ID: uuid.New(), EffectiveFrom: date(2024, 6, 1)}, nil
		}

		_, err := deps.service.Append(ctx, employeeID.String(), validRequest("2024-01-01"))

		assert.ErrorIs(t, err, employeesalaryerrors.ErrEffectiveFromBeforeCurrent)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("concurrent current insert maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, false)
		deps.repo.createFn = func(context.Context, *employeesalary.FinancialInfo) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_financial_current"}
		}

		_, err := deps.service.Append(ctx, employeeID.String(), validRequest("2024-01-01"))

		assert.ErrorIs(t, err, employeesalaryerrors.ErrCurrentRecordExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("backend failure is not classified", func(t *testing.T) {
		deps := setupServiceTest(t)
		testdb.ExpectTx(deps.sqlMock, false)
		deps.repo.createFn = func(context.Context, *employeesalary.FinancialInfo) error {
			return errors.New("connection reset")
		}

		_, err := deps.service.Append(ctx, employeeID.String(), validRequest("2024-01-01"))

		assert.Equal(t, apperror.CodeInternalError, apperror.ToHTTP(err).Code)
	})
}

func TestFinancialService_AppendWritesOutboxEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, sqlMock := testdb.Mock(t)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	svc := employeesalary.NewServiceWithOutbox(db, &fakeFinancialRepository{}, outbox)
	employeeID := uuid.New()

	testdb.ExpectTx(sqlMock, true)
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
	outbox.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event kafka.OutboxEvent) error {
			assert.Equal(t, events.FinancialInfoAppended, event.EventType)
			assert.Equal(t, events.EmployeeLifecycleTopic, event.Topic)
			assert.Equal(t, employeeID.String(), event.AggregateID)
			assert.Equal(t, kafka.OutboxStatusPending, event.Status)
			return nil
		})

	_, err := svc.Append(context.Background(), employeeID.String(), validRequest("2024-01-01"))

	assert.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestFinancialService_GetHistory(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("includes soft-deleted employees", func(t *testing.T) {
		deps := setupServiceTest(t)
		closed := date(2024, 1, 1)
		deps.repo.employeeExistsFn = func(ctx context.Context, id uuid.UUID, includeDeleted bool) (bool, error) {
			assert.True(t, includeDeleted)
			return true, nil
		}
		deps.repo.findHistoryFn = func(context.Context, uuid.UUID) ([]employeesalary.FinancialInfo, error) {
			return []employeesalary.FinancialInfo{
				{ID: uuid.New(), EmployeeID: employeeID, CurrencyCode: "USD", EffectiveFrom: date(2024, 1, 1)},
				{ID: uuid.New(), EmployeeID: employeeID, CurrencyCode: "USD", EffectiveFrom: date(2023, 1, 1), EffectiveTo: &closed},
			}, nil
		}

		resp, err := deps.service.GetHistory(ctx, employeeID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.True(t, resp[0].IsCurrent)
		assert.False(t, resp[1].IsCurrent)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.employeeExistsFn = func(context.Context, uuid.UUID, bool) (bool, error) {
			return false, nil
		}

		_, err := deps.service.GetHistory(ctx, employeeID.String())

		assert.ErrorIs(t, err, employeesalaryerrors.ErrEmployeeNotFound)
	})
}

func TestFinancialService_GetCurrent(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.findCurrentFn = func(context.Context, uuid.UUID) (*employeesalary.FinancialInfo, error) {
			return &employeesalary.FinancialInfo{ID: uuid.New(), EmployeeID: employeeID, CurrencyCode: "EUR", SalaryAmount: decimal.NewFromInt(4200), EffectiveFrom: date(2024, 1, 1)}, nil
		}

		resp, err := deps.service.GetCurrent(ctx, employeeID.String())

		assert.NoError(t, err)
		assert.Equal(t, "EUR", resp.CurrencyCode)
		assert.True(t, resp.IsCurrent)
	})

	t.Run("none open", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetCurrent(ctx, employeeID.String())

		assert.ErrorIs(t, err, employeesalaryerrors.ErrFinancialRecordNotFound)
	})
}
