package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const deleteBatchSize = 100

// RedisStore keeps snapshots in Redis so several gateway processes share
// warm reads.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to url and verifies the server answers.
func NewRedisStore(ctx context.Context, url, prefix string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opt.PoolSize = 10
	opt.MinIdleConns = 2

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (r *RedisStore) Save(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return r.client.Set(ctx, r.prefix+key, data, ttl).Err()
}

// Delete removes exact keys directly and scans for prefix patterns in batches.
func (r *RedisStore) Delete(ctx context.Context, patterns ...string) error {
	var exact []string
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if p[len(p)-1] != '*' {
			exact = append(exact, r.prefix+p)
			continue
		}
		if err := r.deletePattern(ctx, r.prefix+p); err != nil {
			return err
		}
	}
	if len(exact) == 0 {
		return nil
	}
	return r.client.Del(ctx, exact...).Err()
}

func (r *RedisStore) deletePattern(ctx context.Context, pattern string) error {
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	pipe := r.client.Pipeline()
	count := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		count++
		if count >= deleteBatchSize {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
			count = 0
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if count > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the Redis connection pool.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
