package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "jrphotography/internal/errors"
	"jrphotography/internal/model"
)

// UserRepository defines admin user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.AdminUser) error
	FindByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	ListAll(ctx context.Context) ([]model.AdminUser, error)
	Count(ctx context.Context) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new admin user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new admin user.
func (r *userRepository) Create(ctx context.Context, user *model.AdminUser) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if isDuplicateKey(err) {
			return apperrors.ErrUserExists
		}
		return err
	}
	return nil
}

// FindByUsername finds an admin user by username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListAll returns all admin users.
func (r *userRepository) ListAll(ctx context.Context) ([]model.AdminUser, error) {
	var users []model.AdminUser
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the number of admin users.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.AdminUser{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// DeleteByID removes an admin user.
func (r *userRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.AdminUser{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
