package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyGuard lets a client retry a create safely by sending the same
// Idempotent-Key header: only the first request with a given key is applied.
type IdempotencyGuard interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// NewIdempotencyGuard accepts every key when rdb is nil.
func NewIdempotencyGuard(rdb *redis.Client) IdempotencyGuard {
	if rdb == nil {
		return noopGuard{}
	}
	return &RedisGuard{rdb: rdb, ttl: idempotencyTTL}
}

type RedisGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func redisKey(key string) string {
	return "idempotent-key:" + key
}

func (g *RedisGuard) Claim(ctx context.Context, key string) (bool, error) {
	return g.rdb.SetNX(ctx, redisKey(key), "exists", g.ttl).Result()
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.rdb.Del(ctx, redisKey(key)).Err()
}

type noopGuard struct{}

func (noopGuard) Claim(context.Context, string) (bool, error) { return true, nil }
func (noopGuard) Release(context.Context, string) error       { return nil }

// claim returns ErrDuplicateRequest for a key seen before. An empty key is
// always accepted.
func claim(ctx context.Context, g IdempotencyGuard, key string) error {
	if key == "" {
		return nil
	}
	ok, err := g.Claim(ctx, key)
	if err != nil {
		logger.Error().Err(err).Msg("Error claiming idempotent key")
		return err
	}
	if !ok {
		logger.Warn().Msgf("Idempotent key %q already used", key)
		return ErrDuplicateRequest
	}
	return nil
}

func release(ctx context.Context, g IdempotencyGuard, key string) {
	if key == "" {
		return
	}
	if err := g.Release(ctx, key); err != nil {
		logger.Error().Err(err).Msgf("Error releasing idempotent key %q", key)
	}
}
