package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "jrphotography/internal/errors"
	"jrphotography/internal/model"
)

// PortfolioRepository defines gallery persistence operations.
type PortfolioRepository interface {
	Create(ctx context.Context, item *model.PortfolioItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PortfolioItem, error)
	ListAll(ctx context.Context) ([]model.PortfolioItem, error)
	ListFeatured(ctx context.Context, limit int) ([]model.PortfolioItem, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository creates a new portfolio repository.
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

// Create inserts a new gallery entry.
func (r *portfolioRepository) Create(ctx context.Context, item *model.PortfolioItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID finds a gallery entry by ID.
func (r *portfolioRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PortfolioItem, error) {
	var item model.PortfolioItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// ListAll returns all gallery entries, newest first.
func (r *portfolioRepository) ListAll(ctx context.Context) ([]model.PortfolioItem, error) {
	var items []model.PortfolioItem
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListFeatured returns the newest entries for the landing page strip.
func (r *portfolioRepository) ListFeatured(ctx context.Context, limit int) ([]model.PortfolioItem, error) {
	var items []model.PortfolioItem
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByID removes a gallery entry.
func (r *portfolioRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.PortfolioItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrPortfolioItemNotFound
	}
	return nil
}
