package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	apperrors "jrphotography/internal/errors"
	"jrphotography/internal/model"
)

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.AdminUser")).Return(nil)
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), "editor", "s3cret-pass", "")

	assert.NoError(t, err)
	assert.Equal(t, "editor", user.Username)
	assert.Equal(t, "admin", user.Role, "empty role defaults to admin")
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
	repo.AssertExpectations(t)
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(apperrors.ErrUserExists)
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), "admin", "whatever123", "admin")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrUserExists)
}

func TestUserService_Delete_RefusesLastAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Count", mock.Anything).Return(int64(1), nil)
	svc := NewUserService(repo)

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apperrors.ErrLastAdmin)
	repo.AssertNotCalled(t, "DeleteByID")
}

func TestUserService_Delete_AllowsWhenOthersRemain(t *testing.T) {
	repo := new(MockUserRepository)
	id := uuid.New()
	repo.On("Count", mock.Anything).Return(int64(2), nil)
	repo.On("DeleteByID", mock.Anything, id).Return(nil)
	svc := NewUserService(repo)

	assert.NoError(t, svc.Delete(context.Background(), id))
	repo.AssertExpectations(t)
}

func TestUserService_List(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("ListAll", mock.Anything).Return([]model.AdminUser{
		{ID: uuid.New(), Username: "admin", Role: "admin"},
	}, nil)
	svc := NewUserService(repo)

	users, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 1)
}
