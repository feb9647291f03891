package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRevoked is returned for tokens that were never saved, expired out of the
// store, or were deleted by logout.
var ErrRevoked = errors.New("token revoked")

const keyPrefix = "access_token:"

// Sessions tracks which access tokens are currently live. A token missing
// from the store does not authorize, no matter what its signature says.
type Sessions interface {
	Save(ctx context.Context, token string, ttl time.Duration) error
	Validate(ctx context.Context, token string) error
	Revoke(ctx context.Context, token string) error
}

// Client is the subset of redis.Client the redis-backed store needs.
type Client interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type Redis struct {
	client Client
}

var _ Sessions = (*Redis)(nil)

func NewRedis(client Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Save(ctx context.Context, token string, ttl time.Duration) error {
	return r.client.Set(ctx, keyPrefix+token, "valid", ttl).Err()
}

func (r *Redis) Validate(ctx context.Context, token string) error {
	err := r.client.Get(ctx, keyPrefix+token).Err()
	if errors.Is(err, redis.Nil) {
		return ErrRevoked
	}

	return err
}

func (r *Redis) Revoke(ctx context.Context, token string) error {
	return r.client.Del(ctx, keyPrefix+token).Err()
}
