// Package redislock keeps two deletions of the same target from running at
// once across server replicas.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/medvault/medvault-backend/internal/config"
	"github.com/medvault/medvault-backend/internal/domain"
)

const keyPrefix = "medvault:deletion:"

// NewRedisClient creates a Redis client from config.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Only delete the key if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Guard is a Redis-backed per-key mutex with a TTL.
type Guard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGuard creates a Guard. The TTL bounds how long a crashed holder can
// block a retry.
func NewGuard(client *redis.Client, ttl time.Duration) *Guard {
	return &Guard{client: client, ttl: ttl}
}

// Ping checks the Redis connection.
func (g *Guard) Ping(ctx context.Context) error {
	return g.client.Ping(ctx).Err()
}

// Acquire takes the lock for key. It returns domain.ErrDeletionInProgress when another
// holder has it. The returned func gives the lock back; releasing a lock
// that already expired or was taken over is a no-op.
func (g *Guard) Acquire(ctx context.Context, key string) (func(context.Context) error, error) {
	token := uuid.NewString()
	redisKey := keyPrefix + key

	ok, err := g.client.SetNX(ctx, redisKey, token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire deletion lock %s: %w", key, err)
	}
	if !ok {
		return nil, fmt.Errorf("deletion of %s: %w", key, domain.ErrDeletionInProgress)
	}

	return func(ctx context.Context) error {
		err := releaseScript.Run(ctx, g.client, []string{redisKey}, token).Err()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("release deletion lock %s: %w", key, err)
		}
		return nil
	}, nil
}
