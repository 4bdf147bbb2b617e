package auth

import (
	"context"
	"fmt"
	"time"

	"jrphotography/internal/cache"
)

const refreshTokenKeyPrefix = "refresh_token:"

// TokenStoreInterface defines the interface for refresh token storage.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID, userID, username string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (userID, username string, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

// TokenStore handles storage and retrieval of refresh tokens in Redis.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

type refreshTokenData struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// StoreRefreshToken stores a refresh token in Redis with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID, userID, username string, ttl time.Duration) error {
	key := refreshTokenKeyPrefix + tokenID
	s.cache.SetJSON(ctx, key, refreshTokenData{UserID: userID, Username: username}, ttl)
	return nil
}

// GetRefreshToken retrieves refresh token data from Redis.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (userID, username string, err error) {
	key := refreshTokenKeyPrefix + tokenID
	var tokenData refreshTokenData
	if !s.cache.GetJSON(ctx, key, &tokenData) {
		return "", "", fmt.Errorf("refresh token not found")
	}
	return tokenData.UserID, tokenData.Username, nil
}

// DeleteRefreshToken removes a refresh token from Redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	key := refreshTokenKeyPrefix + tokenID
	s.cache.Delete(ctx, key)
	return nil
}
