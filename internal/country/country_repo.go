package country

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, c *Country) error
	FindAll(ctx context.Context) ([]Country, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Country) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Country, error) {
	countries := make([]Country, 0)
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&countries).Error
	return countries, err
}
