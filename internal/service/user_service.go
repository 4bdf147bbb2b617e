package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "jrphotography/internal/errors"
	"jrphotography/internal/model"
	"jrphotography/internal/repository"
)

const bcryptCost = 10

// UserService manages admin dashboard accounts.
type UserService interface {
	List(ctx context.Context) ([]model.AdminUser, error)
	Create(ctx context.Context, username, password, role string) (*model.AdminUser, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new admin user service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// List returns all admin users.
func (s *userService) List(ctx context.Context) ([]model.AdminUser, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create adds an admin user with a hashed password.
func (s *userService) Create(ctx context.Context, username, password, role string) (*model.AdminUser, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if role == "" {
		role = "admin"
	}
	user := &model.AdminUser{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an admin user, refusing to delete the last one so the
// dashboard can never lock itself out.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count <= 1 {
		return apperrors.ErrLastAdmin
	}
	return s.repo.DeleteByID(ctx, id)
}
