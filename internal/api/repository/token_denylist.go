package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records tokens revoked by logout until their natural expiry.
type TokenDenylist interface {
	Revoke(token string, ttl time.Duration) error
	IsRevoked(token string) (bool, error)
}

// redisTokenDenylist keeps revoked tokens in Redis with TTL.
type redisTokenDenylist struct {
	client *redis.Client
}

func NewTokenDenylist(addr, password string) TokenDenylist {
	return &redisTokenDenylist{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

const denylistPrefix = "denylist:"

// Revoke stores the token until ttl elapses. A non-positive ttl means the
// token is already expired and nothing needs to be recorded.
func (d *redisTokenDenylist) Revoke(token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return d.client.Set(ctx, denylistPrefix+token, "1", ttl).Err()
}

func (d *redisTokenDenylist) IsRevoked(token string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err := d.client.Get(ctx, denylistPrefix+token).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
