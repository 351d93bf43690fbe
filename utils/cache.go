package utils

import (
	"context"
	"time"

	"servana/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthCachePrefix namespaces resolved-principal cache keys.
const AuthCachePrefix = "auth:"

var authCacheClient *redis.Client

// InitRedis builds the Redis clients used by the auth cache and verifies
// connectivity. Failure is logged, not fatal; auth falls back to Mongo.
func InitRedis() {
	authCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := authCacheClient.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis unavailable, auth cache disabled", zap.Error(err))
	}
}

// GetAuthCacheClient returns the auth cache client, or nil when Redis was
// never initialized.
func GetAuthCacheClient() *redis.Client {
	return authCacheClient
}
