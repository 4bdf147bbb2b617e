package service

import (
	"context"
	"mime/multipart"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "jrphotography/internal/errors"
	"jrphotography/internal/model"
)

// MockPortfolioRepository is a mock implementation of PortfolioRepository.
type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) Create(ctx context.Context, item *model.PortfolioItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPortfolioRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PortfolioItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioRepository) ListAll(ctx context.Context) ([]model.PortfolioItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioRepository) ListFeatured(ctx context.Context, limit int) ([]model.PortfolioItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeStorage records saves and deletes in memory.
type fakeStorage struct {
	mu      sync.Mutex
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakeStorage) Save(ctx context.Context, file *multipart.FileHeader, subDir string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	relPath := subDir + "/" + file.Filename
	f.saved = append(f.saved, relPath)
	return relPath, nil
}

func (f *fakeStorage) Delete(ctx context.Context, relPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, relPath)
	return nil
}

func TestPortfolioService_Upload_RejectsUnknownCategory(t *testing.T) {
	repo := new(MockPortfolioRepository)
	store := &fakeStorage{}
	svc := NewPortfolioService(repo, store, "/uploads")

	item, err := svc.Upload(context.Background(), UploadInput{
		Title:    "Sunset",
		Category: "astrophotography",
		AltText:  "a sunset",
		File:     &multipart.FileHeader{Filename: "sunset.jpg"},
	})

	assert.Nil(t, item)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
	assert.Empty(t, store.saved, "nothing is written for a rejected category")
}

func TestPortfolioService_Upload_BuildsPublicURL(t *testing.T) {
	repo := new(MockPortfolioRepository)
	store := &fakeStorage{}
	svc := NewPortfolioService(repo, store, "/uploads/")

	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.PortfolioItem")).Return(nil)

	item, err := svc.Upload(context.Background(), UploadInput{
		Title:    "Sunset",
		Category: "wedding",
		AltText:  "a sunset",
		File:     &multipart.FileHeader{Filename: "sunset.jpg"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "/uploads/portfolio/sunset.jpg", item.ImageURL)
	assert.Equal(t, "portfolio/sunset.jpg", item.StoragePath)
}

func TestPortfolioService_Upload_RemovesOrphanOnInsertFailure(t *testing.T) {
	repo := new(MockPortfolioRepository)
	store := &fakeStorage{}
	svc := NewPortfolioService(repo, store, "/uploads")

	repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	item, err := svc.Upload(context.Background(), UploadInput{
		Title:    "Sunset",
		Category: "wedding",
		AltText:  "a sunset",
		File:     &multipart.FileHeader{Filename: "sunset.jpg"},
	})

	assert.Nil(t, item)
	assert.Error(t, err)
	assert.Equal(t, []string{"portfolio/sunset.jpg"}, store.deleted)
}

func TestPortfolioService_Delete_RemovesRowThenAsset(t *testing.T) {
	repo := new(MockPortfolioRepository)
	store := &fakeStorage{}
	svc := NewPortfolioService(repo, store, "/uploads")

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(&model.PortfolioItem{
		ID:          id,
		StoragePath: "portfolio/old.jpg",
	}, nil)
	repo.On("DeleteByID", mock.Anything, id).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), id))
	assert.Equal(t, []string{"portfolio/old.jpg"}, store.deleted)
	repo.AssertExpectations(t)
}

func TestPortfolioService_Delete_NotFoundLeavesStorageAlone(t *testing.T) {
	repo := new(MockPortfolioRepository)
	store := &fakeStorage{}
	svc := NewPortfolioService(repo, store, "/uploads")

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, apperrors.ErrPortfolioItemNotFound)

	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrPortfolioItemNotFound)
	assert.Empty(t, store.deleted)
}
