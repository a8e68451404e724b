package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CalculationCache stores serialized calculation responses keyed by input.
// Both sides are best effort: a miss or a failed write never surfaces.
type CalculationCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

type redisCalculationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCalculationCache wraps a Redis client with a fixed entry TTL.
func NewRedisCalculationCache(client *redis.Client, ttl time.Duration) CalculationCache {
	return &redisCalculationCache{client: client, ttl: ttl}
}

func (c *redisCalculationCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *redisCalculationCache) Set(ctx context.Context, key string, value []byte) {
	_ = c.client.Set(ctx, key, value, c.ttl).Err()
}

// Key derives a deterministic cache key from the calculation type and its
// input payload.
func Key(calculationType string, inputs any) string {
	raw, err := json.Marshal(inputs)
	if err != nil {
		raw = []byte(fmt.Sprintf("%+v", inputs))
	}
	sum := sha256.Sum256(raw)
	return "calc:" + calculationType + ":" + hex.EncodeToString(sum[:16])
}
