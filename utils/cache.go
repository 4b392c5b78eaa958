// File: utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"tempora/config"
)

// CacheClient is the shared Redis cache client.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client using the configured address and DB.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the shared cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// LookupJSON loads the JSON entry under key into out. It returns false
// on a miss, a stale unparseable entry, or a read error; callers fall
// back to the backing store.
func LookupJSON(ctx context.Context, client *redis.Client, key string, out interface{}) bool {
	if client == nil {
		return false
	}
	data, err := client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			GetLogger().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		GetLogger().Warn("Discarding unparseable cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// StoreJSON writes v as JSON under key with the given TTL. The cache is
// best-effort: failures are logged and never surfaced to the caller.
func StoreJSON(ctx context.Context, client *redis.Client, key string, v interface{}, ttl time.Duration) {
	if client == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := client.Set(ctx, key, b, ttl).Err(); err != nil {
		GetLogger().Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}
