package repository

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const blocklistPrefix = "jwt:blocklist:"

// TokenRepository keeps revoked JWT ids in redis. Entries expire together
// with the token they revoke, so the blocklist never needs sweeping.
type TokenRepository struct {
	RDB *redis.Client
}

func NewTokenRepository(rdb *redis.Client) *TokenRepository {
	return &TokenRepository{RDB: rdb}
}

func (r *TokenRepository) Block(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// token already expired
		ttl = time.Minute
	}
	return r.RDB.Set(ctx, blocklistPrefix+jti, 1, ttl).Err()
}

func (r *TokenRepository) IsBlocked(ctx context.Context, jti string) (bool, error) {
	n, err := r.RDB.Exists(ctx, blocklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
