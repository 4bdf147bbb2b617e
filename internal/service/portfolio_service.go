package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"

	apperrors "jrphotography/internal/errors"
	"jrphotography/internal/model"
	"jrphotography/internal/repository"
	"jrphotography/internal/storage"
)

const (
	portfolioSubDir = "portfolio"
	featuredCount   = 6
)

// UploadInput is one admin gallery upload.
type UploadInput struct {
	Title    string
	Category string
	AltText  string
	File     *multipart.FileHeader
}

// PortfolioService handles the public gallery and admin uploads.
type PortfolioService interface {
	List(ctx context.Context) ([]model.PortfolioItem, error)
	Featured(ctx context.Context) ([]model.PortfolioItem, error)
	Upload(ctx context.Context, input UploadInput) (*model.PortfolioItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type portfolioService struct {
	repo    repository.PortfolioRepository
	storage storage.Storage
	baseURL string
}

// NewPortfolioService creates a new portfolio service. baseURL is the
// public prefix under which stored images are served.
func NewPortfolioService(repo repository.PortfolioRepository, store storage.Storage, baseURL string) PortfolioService {
	return &portfolioService{
		repo:    repo,
		storage: store,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// List returns the full gallery, newest first.
func (s *portfolioService) List(ctx context.Context) ([]model.PortfolioItem, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list portfolio: %w", err)
	}
	if items == nil {
		items = []model.PortfolioItem{}
	}
	return items, nil
}

// Featured returns the newest entries for the landing page.
func (s *portfolioService) Featured(ctx context.Context) ([]model.PortfolioItem, error) {
	items, err := s.repo.ListFeatured(ctx, featuredCount)
	if err != nil {
		return nil, fmt.Errorf("list featured: %w", err)
	}
	if items == nil {
		items = []model.PortfolioItem{}
	}
	return items, nil
}

// Upload stores the image asset and creates the gallery entry. The row is
// only written after the asset is safely on disk.
func (s *portfolioService) Upload(ctx context.Context, input UploadInput) (*model.PortfolioItem, error) {
	category := model.PortfolioCategory(input.Category)
	if !model.ValidCategory(category) {
		return nil, apperrors.ErrInvalidCategory
	}

	relPath, err := s.storage.Save(ctx, input.File, portfolioSubDir)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	item := &model.PortfolioItem{
		Title:       input.Title,
		Category:    category,
		ImageURL:    s.baseURL + "/" + relPath,
		StoragePath: relPath,
		AltText:     input.AltText,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		// Do not leave an orphaned asset behind a failed insert.
		_ = s.storage.Delete(ctx, relPath)
		return nil, fmt.Errorf("create portfolio item: %w", err)
	}

	return item, nil
}

// Delete removes the gallery entry, then its stored asset. The row is the
// source of truth; a failed file removal is logged and left for cleanup.
func (s *portfolioService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, item.StoragePath); err != nil {
		log.Printf("portfolio: failed to remove asset %s: %v", item.StoragePath, err)
	}
	return nil
}
