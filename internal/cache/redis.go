package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/logger"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const redisKeyPrefix = "banshi-admin:"

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(ctx context.Context, addr, password string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("unable to ping redis: %w", err)
	}

	logger.Log.Info("connected to redis", zap.String("addr", addr))
	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, redisKeyPrefix+key, value, ttl).Err()
}

// Delete removes keys. A key ending in "*" removes every key with that prefix.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	var plain []string
	for _, key := range keys {
		if !strings.HasSuffix(key, "*") {
			plain = append(plain, redisKeyPrefix+key)
			continue
		}

		iter := c.client.Scan(ctx, 0, redisKeyPrefix+key, 100).Iterator()
		for iter.Next(ctx) {
			plain = append(plain, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}

	if len(plain) == 0 {
		return nil
	}
	return c.client.Del(ctx, plain...).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
