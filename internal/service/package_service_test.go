package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "jrphotography/internal/errors"
	"jrphotography/internal/model"
)

// MockPackageRepository is a mock implementation of PackageRepository.
type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) Create(ctx context.Context, pkg *model.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, pkg *model.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Package), args.Error(1)
}

func (m *MockPackageRepository) ListAll(ctx context.Context) ([]model.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Package), args.Error(1)
}

func (m *MockPackageRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func portraitInput() PackageInput {
	return PackageInput{
		Name:        "Portrait Session",
		Price:       decimal.NewFromInt(250),
		Description: "One hour studio portrait session",
		Features: []FeatureInput{
			{Text: "1 hour session"},
			{Text: "10 edited photos"},
			{Text: "Print rights included", Strikethrough: true},
		},
	}
}

func TestPackageService_Create_OrdersFeatures(t *testing.T) {
	repo := new(MockPackageRepository)
	svc := NewPackageService(repo, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Package) bool {
		if len(p.Features) != 3 {
			return false
		}
		for i, f := range p.Features {
			if f.Position != i {
				return false
			}
		}
		return p.Features[2].Strikethrough
	})).Return(nil)

	pkg, err := svc.Create(context.Background(), portraitInput())

	assert.NoError(t, err)
	assert.Equal(t, "Portrait Session", pkg.Name)
	repo.AssertExpectations(t)
}

func TestPackageService_Create_DuplicateName(t *testing.T) {
	repo := new(MockPackageRepository)
	svc := NewPackageService(repo, nil)

	repo.On("Create", mock.Anything, mock.Anything).Return(apperrors.ErrPackageExists)

	pkg, err := svc.Create(context.Background(), portraitInput())

	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, apperrors.ErrPackageExists)
}

func TestPackageService_Update_ReplacesFeatures(t *testing.T) {
	repo := new(MockPackageRepository)
	svc := NewPackageService(repo, nil)

	id := uuid.New()
	input := portraitInput()
	input.Features = []FeatureInput{{Text: "2 hour session"}}

	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Package) bool {
		// The update carries only the new feature set; the old lines are
		// gone once it lands.
		return p.ID == id && len(p.Features) == 1 && p.Features[0].Text == "2 hour session"
	})).Return(nil)
	repo.On("FindByID", mock.Anything, id).Return(&model.Package{
		ID:   id,
		Name: input.Name,
		Features: []model.PackageFeature{
			{Text: "2 hour session", Position: 0},
		},
	}, nil)

	pkg, err := svc.Update(context.Background(), id, input)

	assert.NoError(t, err)
	assert.Len(t, pkg.Features, 1)
	assert.Equal(t, "2 hour session", pkg.Features[0].Text)
	repo.AssertExpectations(t)
}

func TestPackageService_Update_NotFound(t *testing.T) {
	repo := new(MockPackageRepository)
	svc := NewPackageService(repo, nil)

	repo.On("Update", mock.Anything, mock.Anything).Return(apperrors.ErrPackageNotFound)

	pkg, err := svc.Update(context.Background(), uuid.New(), portraitInput())

	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, apperrors.ErrPackageNotFound)
}

func TestPackageService_List_NeverNil(t *testing.T) {
	repo := new(MockPackageRepository)
	svc := NewPackageService(repo, nil)

	repo.On("ListAll", mock.Anything).Return([]model.Package{}, nil)

	pkgs, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, pkgs)
	assert.Empty(t, pkgs)
}
