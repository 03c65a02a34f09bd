package service

import (
	"context"
	"errors"

	"bookshelf/internal/models"
	"bookshelf/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
}

type authService struct {
	users *repository.UserRepo
}

func NewAuthService(users *repository.UserRepo) AuthService {
	return &authService{users: users}
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	// Passwords are stored and compared in plaintext, matching the data
	// this service inherited. TODO: migrate stored passwords to bcrypt.
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
