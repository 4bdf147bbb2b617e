package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"jrphotography/internal/cache"
	"jrphotography/internal/model"
	"jrphotography/internal/repository"
)

const (
	packagesCacheKey = "packages:all"
	packagesCacheTTL = 5 * time.Minute
)

// PackageInput is the admin-facing create/update shape.
type PackageInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Features    []FeatureInput
}

// FeatureInput is one ordered feature line.
type FeatureInput struct {
	Text          string
	Strikethrough bool
}

// PackageService handles the service package catalogue.
type PackageService interface {
	List(ctx context.Context) ([]model.Package, error)
	Create(ctx context.Context, input PackageInput) (*model.Package, error)
	Update(ctx context.Context, id uuid.UUID, input PackageInput) (*model.Package, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type packageService struct {
	repo  repository.PackageRepository
	cache *cache.Client
}

// NewPackageService creates a new package service.
func NewPackageService(repo repository.PackageRepository, cacheClient *cache.Client) PackageService {
	return &packageService{
		repo:  repo,
		cache: cacheClient,
	}
}

// List returns all packages with caching; the pricing page reads this on
// every visit while the catalogue changes rarely.
func (s *packageService) List(ctx context.Context) ([]model.Package, error) {
	var cached []model.Package
	if s.cache.GetJSON(ctx, packagesCacheKey, &cached) {
		return cached, nil
	}

	pkgs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	if pkgs == nil {
		pkgs = []model.Package{}
	}

	s.cache.SetJSON(ctx, packagesCacheKey, pkgs, packagesCacheTTL)

	return pkgs, nil
}

// Create adds a new package to the catalogue.
func (s *packageService) Create(ctx context.Context, input PackageInput) (*model.Package, error) {
	pkg := &model.Package{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Features:    buildFeatures(input.Features),
	}
	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, packagesCacheKey)
	return pkg, nil
}

// Update replaces a package's fields and feature lines.
func (s *packageService) Update(ctx context.Context, id uuid.UUID, input PackageInput) (*model.Package, error) {
	pkg := &model.Package{
		ID:          id,
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Features:    buildFeatures(input.Features),
	}
	if err := s.repo.Update(ctx, pkg); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, packagesCacheKey)
	return s.repo.FindByID(ctx, id)
}

// Delete removes a package from the catalogue.
func (s *packageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, packagesCacheKey)
	return nil
}

func buildFeatures(inputs []FeatureInput) []model.PackageFeature {
	features := make([]model.PackageFeature, 0, len(inputs))
	for i, f := range inputs {
		features = append(features, model.PackageFeature{
			Text:          f.Text,
			Strikethrough: f.Strikethrough,
			Position:      i,
		})
	}
	return features
}
