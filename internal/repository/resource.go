package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Resource provides the storage operations shared by every catalog entity.
// Each call is a single gorm statement so the store's own transaction
// covers it.
type Resource[T any] struct {
	db *gorm.DB
}

func NewResource[T any](db *gorm.DB) *Resource[T] {
	return &Resource[T]{db: db}
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var list []T
	if err := r.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return list, nil
}

// Get returns the row by primary key. gorm.ErrRecordNotFound is passed
// through untouched so callers can map it to a 404.
func (r *Resource[T]) Get(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Resource[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Save persists every column of an already-loaded row.
func (r *Resource[T]) Save(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes the row by primary key; foreign key constraints cascade
// to dependents. Reports gorm.ErrRecordNotFound when nothing matched.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
