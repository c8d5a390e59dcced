package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/a2sh3r/banshi-admin/internal/apperrors"
	"github.com/a2sh3r/banshi-admin/internal/logger"
	"go.uber.org/zap"
)

// Cache stores encoded resources keyed by resource and query, e.g. "users:all".
// Get returns apperrors.ErrCacheMiss when the key is absent or expired.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Key joins a resource name and a query into a cache key.
func Key(resource, query string) string {
	return resource + ":" + query
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, apperrors.ErrCacheMiss
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, apperrors.ErrCacheMiss
	}
	return e.value, nil
}

// Set stores value under key. A non-positive ttl keeps the entry until it is deleted.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.entries[key] = e
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		if strings.HasSuffix(key, "*") {
			prefix := strings.TrimSuffix(key, "*")
			for k := range c.entries {
				if strings.HasPrefix(k, prefix) {
					delete(c.entries, k)
				}
			}
			continue
		}
		delete(c.entries, key)
	}
	return nil
}

// Load is a read-through helper: it returns the cached value for key or calls fetch and stores the result.
// A broken cache never fails the read; fetch errors are returned as is and nothing is stored.
func Load[T any](ctx context.Context, c Cache, key string, ttl time.Duration, fetch func(ctx context.Context) (T, error)) (T, error) {
	data, err := c.Get(ctx, key)
	switch {
	case err == nil:
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			return v, nil
		}
		logger.Log.Warn("dropping undecodable cache entry", zap.String("key", key))
	case !errors.Is(err, apperrors.ErrCacheMiss):
		logger.Log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err := fetch(ctx)
	if err != nil {
		return v, err
	}

	if err := Store(ctx, c, key, v, ttl); err != nil {
		logger.Log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return v, nil
}

// Store encodes v and writes it under key.
func Store[T any](ctx context.Context, c Cache, key string, v T, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %s: %w", key, err)
	}
	return c.Set(ctx, key, data, ttl)
}

// Peek returns the cached value without fetching. ok is false on a miss.
func Peek[T any](ctx context.Context, c Cache, key string) (v T, ok bool, err error) {
	data, err := c.Get(ctx, key)
	if errors.Is(err, apperrors.ErrCacheMiss) {
		return v, false, nil
	}
	if err != nil {
		return v, false, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, false, fmt.Errorf("failed to decode cache entry %s: %w", key, err)
	}
	return v, true, nil
}
