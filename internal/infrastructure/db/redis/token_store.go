package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore mirrors refresh credentials in Redis, one key per user.
// Key format: refresh_token:<user_id>
//
// Save overwrites, so a new login revokes the previous refresh credential
// immediately; the key TTL matches the token's own validity window.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Save(ctx context.Context, userID, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

// Get returns the stored refresh token for userID, or "" when none exists.
func (s *TokenStore) Get(ctx context.Context, userID string) (string, error) {
	val, err := s.client.Get(ctx, s.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("read refresh token: %w", err)
	}
	return val, nil
}

func (s *TokenStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

func (s *TokenStore) key(userID string) string {
	return fmt.Sprintf("refresh_token:%s", userID)
}
