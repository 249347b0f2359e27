// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/feature/userlist/usecase"
)

// CachingUserDirectory decorates a UserDirectoryRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Registrations bypass this layer, so
// the directory is eventually consistent within the TTL; keep the TTL short.
type CachingUserDirectory struct {
	inner     usecase.UserDirectoryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingUserDirectory decorates a UserDirectoryRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "users".
func NewCachingUserDirectory(rdb *redis.Client, ttl time.Duration, inner usecase.UserDirectoryRepository, namespace string) *CachingUserDirectory {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserDirectory{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListAll retrieves the user directory, checking cache first then falling
// back to the database.
func (c *CachingUserDirectory) ListAll(ctx context.Context) ([]entity.User, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListAll(ctx)
	}

	key := c.namespace + ":all"

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.User
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
