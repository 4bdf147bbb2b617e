package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"jrphotography/internal/auth"
	apperrors "jrphotography/internal/errors"
	"jrphotography/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockUserRepository) ListAll(ctx context.Context) ([]model.AdminUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AdminUser), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, userID, username string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, username, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, string, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func TestAuthService_Login(t *testing.T) {
	adminID := uuid.New()

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "admin",
			password: "admin123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
				mRepo.On("FindByUsername", mock.Anything, "admin").Return(&model.AdminUser{
					ID:           adminID,
					Username:     "admin",
					PasswordHash: string(hashedPassword),
					Role:         "admin",
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, adminID.String(), "admin", auth.RefreshTokenExpiry).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "admin123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "nobody").Return(nil, apperrors.ErrUserNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "not-the-password",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
				mRepo.On("FindByUsername", mock.Anything, "admin").Return(&model.AdminUser{
					ID:           adminID,
					Username:     "admin",
					PasswordHash: string(hashedPassword),
					Role:         "admin",
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockTokenStore)

			accessToken, refreshToken, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	adminID := uuid.New().String()
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(adminID, "admin", "admin")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		token         string
		setupMock     func(*MockTokenStore)
		expectedError error
	}{
		{
			name:  "valid refresh token",
			token: refreshToken,
			setupMock: func(mToken *MockTokenStore) {
				mToken.On("GetRefreshToken", mock.Anything, tokenID).Return(adminID, "admin", nil)
			},
			expectedError: nil,
		},
		{
			name:          "garbage token",
			token:         "not-a-jwt",
			setupMock:     func(mToken *MockTokenStore) {},
			expectedError: ErrInvalidRefreshToken,
		},
		{
			name:  "token unknown to the store",
			token: refreshToken,
			setupMock: func(mToken *MockTokenStore) {
				mToken.On("GetRefreshToken", mock.Anything, tokenID).Return("", "", assert.AnError)
			},
			expectedError: ErrInvalidRefreshToken,
		},
		{
			name:  "stored identity does not match claims",
			token: refreshToken,
			setupMock: func(mToken *MockTokenStore) {
				mToken.On("GetRefreshToken", mock.Anything, tokenID).Return(uuid.New().String(), "admin", nil)
			},
			expectedError: ErrInvalidRefreshToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockTokenStore)

			service := NewAuthService(mockRepo, jwtService, mockTokenStore)
			accessToken, err := service.RefreshToken(context.Background(), tt.token)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
			}

			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	adminID := uuid.New().String()
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(adminID, "admin", "admin")
	assert.NoError(t, err)

	mockRepo := new(MockUserRepository)
	mockTokenStore := new(MockTokenStore)
	mockTokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	service := NewAuthService(mockRepo, jwtService, mockTokenStore)

	assert.NoError(t, service.Logout(context.Background(), refreshToken))
	assert.Equal(t, ErrInvalidRefreshToken, service.Logout(context.Background(), "not-a-jwt"))
	mockTokenStore.AssertExpectations(t)
}
