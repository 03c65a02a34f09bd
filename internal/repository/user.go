package repository

import (
	"context"

	"bookshelf/internal/models"

	"gorm.io/gorm"
)

// UserRepo extends the generic resource with the username lookup used by
// login.
type UserRepo struct {
	*Resource[models.User]
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{Resource: NewResource[models.User](db)}
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
