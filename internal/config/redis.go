package config

import "github.com/go-redis/redis/v8"

// NewRedisClient returns nil when REDIS_ADDR is empty.
func NewRedisClient(cfg RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
	})
}
