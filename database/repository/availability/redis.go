// File: database/repository/availability/redis.go
package availabilityRepo

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type redisRepo struct {
	client *redis.Client
}

// NewRedisRepo stores each record as a plain string value at its key.
func NewRedisRepo(client *redis.Client) Repository {
	return &redisRepo{client: client}
}

func (r *redisRepo) Name() string { return DriverRedis }

func (r *redisRepo) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *redisRepo) Put(ctx context.Context, key string, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	// No expiration: the record lives until overwritten.
	return r.client.Set(ctx, key, payload, 0).Err()
}

func (r *redisRepo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.client.Ping(ctx).Err()
}
