package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"user-accounts/internal/application"
)

const refreshTokenPrefix = "auth:refresh:"

// RefreshTokenStore keeps refresh tokens in Redis with a TTL matching the
// token expiry, so revocation and expiry need no sweeper.
type RefreshTokenStore struct {
	rdb *redis.Client
}

func NewRefreshTokenStore(rdb *redis.Client) *RefreshTokenStore {
	return &RefreshTokenStore{rdb: rdb}
}

func (s *RefreshTokenStore) Store(ctx context.Context, token, username string, ttl time.Duration) error {
	return s.rdb.Set(ctx, refreshTokenPrefix+token, username, ttl).Err()
}

func (s *RefreshTokenStore) Exists(ctx context.Context, token string) (bool, error) {
	err := s.rdb.Get(ctx, refreshTokenPrefix+token).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *RefreshTokenStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, refreshTokenPrefix+token).Err()
}

var _ application.RefreshTokenStore = (*RefreshTokenStore)(nil)
