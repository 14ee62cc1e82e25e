package employeesalary

import (
	"context"
	"time"

	employeesalaryerrors "github.com/marvik-ai/success-orchestry-api/internal/employeesalary/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	EmployeeExists(ctx context.Context, employeeID uuid.UUID, includeDeleted bool) (bool, error)
	Create(ctx context.Context, record *FinancialInfo) error
	FindCurrent(ctx context.Context, employeeID uuid.UUID) (*FinancialInfo, error)
	CloseCurrent(ctx context.Context, id uuid.UUID, effectiveTo time.Time) error
	FindHistory(ctx context.Context, employeeID uuid.UUID) ([]FinancialInfo, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uuid.UUID, includeDeleted bool) (bool, error) {
	q := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID)
	if !includeDeleted {
		q = q.Where("deleted_at IS NULL")
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repository) Create(ctx context.Context, record *FinancialInfo) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindCurrent(ctx context.Context, employeeID uuid.UUID) (*FinancialInfo, error) {
	var record FinancialInfo
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("effective_to IS NULL").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// CloseCurrent stamps effective_to on a record that is still open. A record
// closed by someone else in the meantime is reported as a conflict.
func (r *repository) CloseCurrent(ctx context.Context, id uuid.UUID, effectiveTo time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&FinancialInfo{}).
		Where("id = ?", id).
		Where("effective_to IS NULL").
		Update("effective_to", effectiveTo)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return employeesalaryerrors.ErrCurrentRecordChanged
	}
	return nil
}

func (r *repository) FindHistory(ctx context.Context, employeeID uuid.UUID) ([]FinancialInfo, error) {
	records := make([]FinancialInfo, 0)
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_from DESC").
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}
