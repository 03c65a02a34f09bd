package service

import (
	"context"

	"bookshelf/internal/cache"
	"bookshelf/internal/models"
	"bookshelf/internal/repository"
)

// BookService adds the creator filter on top of the generic CRUD surface.
type BookService interface {
	Resource[models.Book]
	ListByCreator(ctx context.Context, creatorID int64) ([]models.Book, error)
}

type bookService struct {
	repo  *repository.BookRepo
	cache *cache.Books
}

func NewBookService(repo *repository.BookRepo, cache *cache.Books) BookService {
	return &bookService{repo: repo, cache: cache}
}

func (s *bookService) List(ctx context.Context) ([]models.Book, error) {
	return s.repo.List(ctx)
}

func (s *bookService) ListByCreator(ctx context.Context, creatorID int64) ([]models.Book, error) {
	return s.repo.ListByCreator(ctx, creatorID)
}

func (s *bookService) Get(ctx context.Context, id int64) (*models.Book, error) {
	if book, ok := s.cache.Get(ctx, id); ok {
		return book, nil
	}
	book, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, book)
	return book, nil
}

func (s *bookService) Create(ctx context.Context, book *models.Book) error {
	return s.repo.Create(ctx, book)
}

func (s *bookService) Update(ctx context.Context, book *models.Book) error {
	if err := s.repo.Save(ctx, book); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, book.ID)
	return nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	return nil
}
