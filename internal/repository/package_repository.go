package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "jrphotography/internal/errors"
	"jrphotography/internal/model"
)

// PackageRepository defines service package persistence operations.
type PackageRepository interface {
	Create(ctx context.Context, pkg *model.Package) error
	Update(ctx context.Context, pkg *model.Package) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Package, error)
	ListAll(ctx context.Context) ([]model.Package, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new package repository.
func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

// Create inserts a new package with its feature lines.
func (r *packageRepository) Create(ctx context.Context, pkg *model.Package) error {
	err := r.db.WithContext(ctx).Create(pkg).Error
	if err != nil {
		if isDuplicateKey(err) {
			return apperrors.ErrPackageExists
		}
		return err
	}
	return nil
}

// Update saves the package fields and replaces its feature lines in one
// transaction, keeping the ordered list consistent.
func (r *packageRepository) Update(ctx context.Context, pkg *model.Package) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Package{}).
			Where("id = ?", pkg.ID).
			Updates(map[string]interface{}{
				"name":        pkg.Name,
				"price":       pkg.Price,
				"description": pkg.Description,
			})
		if res.Error != nil {
			if isDuplicateKey(res.Error) {
				return apperrors.ErrPackageExists
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrPackageNotFound
		}

		if err := tx.Where("package_id = ?", pkg.ID).
			Delete(&model.PackageFeature{}).Error; err != nil {
			return err
		}
		for i := range pkg.Features {
			pkg.Features[i].ID = 0
			pkg.Features[i].PackageID = pkg.ID
			pkg.Features[i].Position = i
		}
		if len(pkg.Features) == 0 {
			return nil
		}
		return tx.Create(&pkg.Features).Error
	})
}

// FindByID finds a package with its features.
func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Package, error) {
	var pkg model.Package
	err := r.db.WithContext(ctx).
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

// ListAll returns all packages with features, oldest first.
func (r *packageRepository) ListAll(ctx context.Context) ([]model.Package, error) {
	var pkgs []model.Package
	if err := r.db.WithContext(ctx).
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at ASC").
		Find(&pkgs).Error; err != nil {
		return nil, err
	}
	return pkgs, nil
}

// DeleteByID removes a package and its features.
func (r *packageRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("package_id = ?", id).
			Delete(&model.PackageFeature{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Package{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrPackageNotFound
		}
		return nil
	})
}
