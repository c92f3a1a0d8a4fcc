package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Cache is a short-lived JSON cache for list endpoints.
type Cache interface {
	// Get unmarshals the cached value for key into dest, or ErrMiss.
	Get(ctx context.Context, key string, dest interface{}) error

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

// Config selects and configures a cache backend.
type Config struct {
	Type     string // memory, redis
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// New creates a cache instance based on configuration.
func New(cfg Config) (Cache, error) {
	switch cfg.Type {
	case "memory", "":
		return NewMemoryCache(), nil
	case "redis":
		return NewRedisCache(cfg)
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}

// PageKey builds the cache key for page n of a listing, e.g.
// "categories_page_3_size_20". The size is part of the key so two
// requests with different page sizes never share an entry.
func PageKey(prefix string, page, pageSize int) string {
	return fmt.Sprintf("%s_page_%d_size_%d", prefix, page, pageSize)
}

// PageKeys returns the keys for pages 1..maxPages at one page size,
// the window the list endpoints proactively invalidate on writes.
func PageKeys(prefix string, maxPages, pageSize int) []string {
	keys := make([]string, 0, maxPages)
	for page := 1; page <= maxPages; page++ {
		keys = append(keys, PageKey(prefix, page, pageSize))
	}
	return keys
}
