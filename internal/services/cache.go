package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/reverie-app/journal-backend/internal/database"
)

const (
	// CacheKeyPrefix namespaces all cache keys in Redis.
	CacheKeyPrefix = "cache:"
	// RecipeCacheTTL: the catalog only changes on reseed or admin create, so a
	// long TTL is fine.
	RecipeCacheTTL = 6 * time.Hour
)

// CacheService is a small JSON cache over Redis. Misses and Redis errors are
// both reported as a miss; callers fall through to the database.
type CacheService struct{}

var Cache = &CacheService{}

// Get retrieves a cached value into dest. Returns false on miss.
func (c *CacheService) Get(ctx context.Context, key string, dest interface{}) bool {
	if database.RedisClient == nil {
		return false
	}

	val, err := database.RedisClient.Get(ctx, CacheKeyPrefix+key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

// Set stores a value with the given TTL. Errors are swallowed; caching is
// best-effort.
func (c *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if database.RedisClient == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	database.RedisClient.Set(ctx, CacheKeyPrefix+key, data, ttl)
}

// Delete removes a cached value.
func (c *CacheService) Delete(ctx context.Context, keys ...string) {
	if database.RedisClient == nil || len(keys) == 0 {
		return
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = CacheKeyPrefix + k
	}
	database.RedisClient.Del(ctx, full...)
}

// RecipeCacheKey builds the cache key for a mood-filtered recipe list.
func RecipeCacheKey(mood string) string {
	if mood == "" {
		return "recipes:all"
	}
	return "recipes:" + mood
}
