package employeesalary

import (
	"context"
	"errors"
	"time"

	employeesalaryerrors "github.com/marvik-ai/success-orchestry-api/internal/employeesalary/errors"
	"github.com/marvik-ai/success-orchestry-api/internal/events"
	"github.com/marvik-ai/success-orchestry-api/internal/messaging/kafka"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/contextutil"
	"github.com/marvik-ai/success-orchestry-api/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Append(ctx context.Context, employeeID string, req CreateFinancialInfoRequest) (FinancialInfoResponse, error)
	GetHistory(ctx context.Context, employeeID string) ([]FinancialInfoResponse, error)
	GetCurrent(ctx context.Context, employeeID string) (FinancialInfoResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(db *gorm.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeesalary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeesalary.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

// Append adds a financial record. An open-ended record replaces the current
// one, which is closed on the new record's effective_from.
func (s *service) Append(
	ctx context.Context,
	employeeID string,
	req CreateFinancialInfoRequest,
) (FinancialInfoResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("append financial record requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return FinancialInfoResponse{}, employeesalaryerrors.ErrInvalidEmployeeID
	}

	record, err := buildRecord(empID, req)
	if err != nil {
		s.logger.Warn("append financial record validation failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return FinancialInfoResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.EmployeeExists(ctx, empID, false)
		if err != nil {
			return err
		}
		if !exists {
			return employeesalaryerrors.ErrEmployeeNotFound
		}

		if record.IsCurrent() {
			current, err := qtx.FindCurrent(ctx, empID)
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
			case err != nil:
				return err
			default:
				if record.EffectiveFrom.Before(current.EffectiveFrom) {
					return employeesalaryerrors.ErrEffectiveFromBeforeCurrent
				}
				if err := qtx.CloseCurrent(ctx, current.ID, record.EffectiveFrom); err != nil {
					return err
				}
				s.logger.Debug("closed current financial record",
					zap.String("record_id", current.ID.String()),
					zap.String("effective_to", record.EffectiveFrom.Format(time.DateOnly)),
				)
			}
		}

		if err := qtx.Create(ctx, record); err != nil {
			return err
		}

		if s.outbox != nil {
			event, err := kafka.NewOutboxEvent(ctx, "employee", empID.String(), events.FinancialInfoAppended, events.EmployeeLifecycleTopic,
				events.FinancialInfoAppendedEvent{
					EventType:     events.FinancialInfoAppended,
					RequestID:     rid,
					EmployeeID:    empID.String(),
					RecordID:      record.ID.String(),
					CurrencyCode:  record.CurrencyCode,
					EffectiveFrom: record.EffectiveFrom.Format(time.DateOnly),
					OccurredAt:    time.Now().UTC(),
				})
			if err != nil {
				return err
			}
			if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("append financial record failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return FinancialInfoResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("append financial record success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("record_id", record.ID.String()),
	)
	return ToResponse(*record), nil
}

// GetHistory lists every record newest first. Soft-deleted employees keep
// their history readable for audit.
func (s *service) GetHistory(ctx context.Context, employeeID string) ([]FinancialInfoResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, employeesalaryerrors.ErrInvalidEmployeeID
	}

	exists, err := s.repo.EmployeeExists(ctx, empID, true)
	if err != nil {
		s.logger.Error("financial history employee lookup failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if !exists {
		return nil, employeesalaryerrors.ErrEmployeeNotFound
	}

	records, err := s.repo.FindHistory(ctx, empID)
	if err != nil {
		s.logger.Error("get financial history failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return ToListResponse(records), nil
}

func (s *service) GetCurrent(ctx context.Context, employeeID string) (FinancialInfoResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return FinancialInfoResponse{}, employeesalaryerrors.ErrInvalidEmployeeID
	}

	record, err := s.repo.FindCurrent(ctx, empID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get current financial record failed", zap.Error(err))
		}
		return FinancialInfoResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*record), nil
}

func buildRecord(employeeID uuid.UUID, req CreateFinancialInfoRequest) (*FinancialInfo, error) {
	if req.SalaryAmount == nil {
		return nil, apperror.RequiredField("salary_amount")
	}
	if req.CompanyCostAmount == nil {
		return nil, apperror.RequiredField("company_cost_amount")
	}
	if err := validation.Money(*req.SalaryAmount, *req.CompanyCostAmount); err != nil {
		return nil, err
	}
	currency, err := validation.Currency(req.CurrencyCode)
	if err != nil {
		return nil, err
	}
	from, err := validation.Date("effective_from", req.EffectiveFrom)
	if err != nil {
		return nil, err
	}

	var to *time.Time
	if req.EffectiveTo != nil {
		d, err := validation.Date("effective_to", *req.EffectiveTo)
		if err != nil {
			return nil, err
		}
		to = &d
	}
	if err := validation.DateRange(from, to); err != nil {
		return nil, err
	}

	return &FinancialInfo{
		ID:                uuid.New(),
		EmployeeID:        employeeID,
		SalaryAmount:      req.SalaryAmount.Round(2),
		CurrencyCode:      currency,
		CompanyCostAmount: req.CompanyCostAmount.Round(2),
		EffectiveFrom:     from,
		EffectiveTo:       to,
	}, nil
}
