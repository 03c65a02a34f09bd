package service

import (
	"context"

	"bookshelf/internal/repository"
)

// Resource is the CRUD surface a handler needs for one entity type.
type Resource[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id int64) error
}

type resourceService[T any] struct {
	repo *repository.Resource[T]
}

func NewResource[T any](repo *repository.Resource[T]) Resource[T] {
	return &resourceService[T]{repo: repo}
}

func (s *resourceService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *resourceService[T]) Get(ctx context.Context, id int64) (*T, error) {
	return s.repo.Get(ctx, id)
}

func (s *resourceService[T]) Create(ctx context.Context, item *T) error {
	return s.repo.Create(ctx, item)
}

func (s *resourceService[T]) Update(ctx context.Context, item *T) error {
	return s.repo.Save(ctx, item)
}

func (s *resourceService[T]) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
