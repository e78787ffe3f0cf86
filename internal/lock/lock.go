// Package lock provides the per-charge exclusivity guard used by the
// recovery engine: while one pass holds a charge's lock, no other pass may
// decide, dispatch or log for that charge.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/redis"
)

// Redis implements the lock with SETNX plus a TTL, so a pass that dies
// mid-charge releases the charge automatically.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed lock.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Acquire claims the key for ttl. It returns false when another holder
// already owns it.
func (l *Redis) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	return ok, nil
}

// Release drops the key. Releasing a key that already expired is harmless.
func (l *Redis) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release lock %s: %w", key, err)
	}

	return nil
}
