package repository

import (
	"context"
	"fmt"

	"bookshelf/internal/models"

	"gorm.io/gorm"
)

// BookRepo extends the generic resource with the creator filter used by
// the book listing.
type BookRepo struct {
	*Resource[models.Book]
}

func NewBookRepo(db *gorm.DB) *BookRepo {
	return &BookRepo{Resource: NewResource[models.Book](db)}
}

// ListByCreator returns the books submitted by one user.
func (r *BookRepo) ListByCreator(ctx context.Context, creatorID int64) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Where("created_by = ?", creatorID).
		Order("id").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list books by creator: %w", err)
	}
	return list, nil
}
