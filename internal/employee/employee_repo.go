package employee

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FindOptions struct {
	IncludeFinancial bool
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, emp *Employee) error
	CreatePersonalInfo(ctx context.Context, pi *PersonalInfo) error
	FindByID(ctx context.Context, id uuid.UUID, opts FindOptions) (*Employee, error)
	Update(ctx context.Context, emp *Employee) error
	UpdatePersonalInfo(ctx context.Context, pi *PersonalInfo) error
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
	DeletePersonalInfo(ctx context.Context, employeeID uuid.UUID) error
	Search(ctx context.Context, params SearchParams) ([]Employee, int64, error)
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

// Create inserts the identity row only; personal info has its own call so
// the service controls both inside one transaction.
func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(emp).Error
}

func (r *repository) CreatePersonalInfo(ctx context.Context, pi *PersonalInfo) error {
	return r.db.WithContext(ctx).Create(pi).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID, opts FindOptions) (*Employee, error) {
	q := r.db.WithContext(ctx).Preload("PersonalInfo")
	if opts.IncludeFinancial {
		q = q.Preload("FinancialRecords", "effective_to IS NULL")
	}

	var emp Employee
	if err := q.First(&emp, "employees.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", emp.ID).
		Updates(map[string]any{
			"code":       emp.Code,
			"status":     emp.Status,
			"notes":      emp.Notes,
			"updated_at": emp.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) UpdatePersonalInfo(ctx context.Context, pi *PersonalInfo) error {
	res := r.db.WithContext(ctx).
		Model(&PersonalInfo{}).
		Where("employee_id = ?", pi.EmployeeID).
		Updates(map[string]any{
			"first_name":      pi.FirstName,
			"last_name":       pi.LastName,
			"nickname":        pi.Nickname,
			"document_number": pi.DocumentNumber,
			"tax_id":          pi.TaxID,
			"personal_email":  pi.PersonalEmail,
			"phone":           pi.Phone,
			"photo_url":       pi.PhotoURL,
			"city":            pi.City,
			"country_id":      pi.CountryID,
			"address":         pi.Address,
			"updated_at":      pi.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDelete marks a live employee terminated. Already-deleted rows are
// filtered by the DeletedAt scope and report not found.
func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     StatusTerminated,
			"deleted_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeletePersonalInfo hard-deletes; personal data does not outlive the
// employee even though the employee row itself is kept.
func (r *repository) DeletePersonalInfo(ctx context.Context, employeeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&PersonalInfo{}).Error
}

func (r *repository) Search(ctx context.Context, params SearchParams) ([]Employee, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(searchScope(params)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	employees := make([]Employee, 0, params.Limit)
	if total == 0 {
		return employees, 0, nil
	}

	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(searchScope(params)).
		Select("employees.*").
		Preload("PersonalInfo")
	if params.IncludeFinancial {
		q = q.Preload("FinancialRecords", "effective_to IS NULL")
	}

	err := q.Order(params.orderClause()).
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&employees).Error
	return employees, total, err
}
