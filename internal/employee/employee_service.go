package employee

import (
	"context"
	"time"

	employeeerrors "github.com/marvik-ai/success-orchestry-api/internal/employee/errors"
	"github.com/marvik-ai/success-orchestry-api/internal/events"
	"github.com/marvik-ai/success-orchestry-api/internal/messaging/kafka"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AssignmentChecker reports unresolved project assignments that block a
// soft delete. It is owned by the project staffing side.
type AssignmentChecker interface {
	HasActiveAssignments(ctx context.Context, employeeID uuid.UUID) (bool, error)
}

type noAssignments struct{}

func (noAssignments) HasActiveAssignments(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string, includeFinancial bool) (EmployeeResponse, error)
	Update(ctx context.Context, id string, patch Patch) (EmployeeResponse, error)
	SoftDelete(ctx context.Context, id string) error
	Search(ctx context.Context, params SearchParams) (SearchResult, error)
}

type service struct {
	db          *gorm.DB
	repo        Repository
	outbox      kafka.OutboxRepository
	assignments AssignmentChecker
	logger      *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	assignments AssignmentChecker,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if assignments == nil {
		assignments = noAssignments{}
	}
	return &service{
		db:          db,
		repo:        repo,
		outbox:      outboxRepo,
		assignments: assignments,
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("code", req.Code),
	)

	emp, pi, err := req.toEntities()
	if err != nil {
		s.logger.Warn("create employee validation failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := qtx.Create(ctx, emp); err != nil {
			return err
		}
		if err := qtx.CreatePersonalInfo(ctx, pi); err != nil {
			return err
		}
		return s.queueLifecycleEvent(ctx, tx, events.EmployeeCreated, emp, nil)
	})
	if err != nil {
		s.logger.Error("create employee persist failed",
			zap.String("request_id", rid),
			zap.String("code", emp.Code),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID.String()),
	)

	emp.PersonalInfo = pi
	return Assemble(*emp, false)
}

func (s *service) GetByID(ctx context.Context, id string, includeFinancial bool) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested",
		zap.String("employee_id", id),
		zap.Bool("include_financial", includeFinancial),
	)

	empID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, empID, FindOptions{IncludeFinancial: includeFinancial})
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	resp, err := Assemble(*emp, includeFinancial)
	if err != nil {
		s.logger.Error("employee record is missing personal info", zap.String("employee_id", id))
		return EmployeeResponse{}, err
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, patch Patch) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.Strings("fields", patch.Fields()),
	)

	empID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if err := patch.Validate(); err != nil {
		return EmployeeResponse{}, err
	}

	var emp *Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		emp, err = qtx.FindByID(ctx, empID, FindOptions{})
		if err != nil {
			return err
		}

		t, err := patch.Apply(emp)
		if err != nil {
			return err
		}
		// The root row is written for every patch so its updated_at moves
		// with any change to the aggregate.
		now := time.Now().UTC()
		emp.UpdatedAt = now
		if err := qtx.Update(ctx, emp); err != nil {
			return err
		}
		if t.personal {
			emp.PersonalInfo.UpdatedAt = now
			if err := qtx.UpdatePersonalInfo(ctx, emp.PersonalInfo); err != nil {
				return err
			}
		}
		return s.queueLifecycleEvent(ctx, tx, events.EmployeeUpdated, emp, patch.Fields())
	})
	if err != nil {
		s.logger.Warn("update employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return Assemble(*emp, false)
}

// SoftDelete terminates an employee: status and deleted_at are stamped, the
// personal-info row is removed and financial history is kept for audit.
func (s *service) SoftDelete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	empID, err := uuid.Parse(id)
	if err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		emp, err := qtx.FindByID(ctx, empID, FindOptions{})
		if err != nil {
			return err
		}

		busy, err := s.assignments.HasActiveAssignments(ctx, empID)
		if err != nil {
			return err
		}
		if busy {
			return employeeerrors.ErrEmployeeHasActiveAssignments
		}

		if err := qtx.SoftDelete(ctx, empID, time.Now().UTC()); err != nil {
			return err
		}
		if err := qtx.DeletePersonalInfo(ctx, empID); err != nil {
			return err
		}

		emp.Status = StatusTerminated
		return s.queueLifecycleEvent(ctx, tx, events.EmployeeTerminated, emp, nil)
	})
	if err != nil {
		s.logger.Warn("delete employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return nil
}

func (s *service) Search(ctx context.Context, params SearchParams) (SearchResult, error) {
	params, err := params.Normalize()
	if err != nil {
		return SearchResult{}, err
	}
	s.logger.Debug("search employees requested",
		zap.String("status", params.Status),
		zap.String("sort_by", params.SortBy),
		zap.String("order", params.Order),
		zap.Int("page", params.Page),
		zap.Int("limit", params.Limit),
	)

	employees, total, err := s.repo.Search(ctx, params)
	if err != nil {
		s.logger.Error("search employees failed", zap.Error(err))
		return SearchResult{}, mapRepositoryError(err)
	}

	items, err := AssembleAll(employees, params.IncludeFinancial)
	if err != nil {
		s.logger.Error("search employees assembly failed", zap.Error(err))
		return SearchResult{}, err
	}

	return SearchResult{
		Items: items,
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
	}, nil
}

func (s *service) queueLifecycleEvent(ctx context.Context, tx *gorm.DB, eventType string, emp *Employee, fields []string) error {
	if s.outbox == nil {
		return nil
	}

	event, err := kafka.NewOutboxEvent(ctx, "employee", emp.ID.String(), eventType, events.EmployeeLifecycleTopic,
		events.EmployeeLifecycleEvent{
			EventType:  eventType,
			RequestID:  contextutil.GetRequestID(ctx),
			EmployeeID: emp.ID.String(),
			Code:       emp.Code,
			Status:     string(emp.Status),
			Fields:     fields,
			OccurredAt: time.Now().UTC(),
		})
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}
