package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // Cache key construction
	"time"          // Time durations

	"transaction_system/internal/domain" // Transaction model

	"github.com/redis/go-redis/v9" // Redis client
)

// TransactionCacheTTL bounds how long a cached transaction view lives; the
// primary eviction path is explicit invalidation on mutation.
const TransactionCacheTTL = 60 * time.Second

// TransactionCache is the Redis-backed id-keyed cache for transaction views
type TransactionCache struct {
	rdb *redis.Client // Redis client
}

// NewTransactionCache wraps a Redis client in a transaction view cache
func NewTransactionCache(rdb *redis.Client) *TransactionCache {
	return &TransactionCache{rdb: rdb}
}

// cacheKey builds the Redis key for a transaction id
func cacheKey(id uint) string {
	return "transaction:" + strconv.Itoa(int(id))
}

// Get retrieves the cached transaction for an id, reporting a hit
func (c *TransactionCache) Get(ctx context.Context, id uint) (*domain.Transaction, bool) {
	val, err := c.rdb.Get(ctx, cacheKey(id)).Result()
	if err != nil {
		return nil, false // Missing key and Redis errors both read as a miss
	}
	var tx domain.Transaction
	if err := json.Unmarshal([]byte(val), &tx); err != nil {
		return nil, false
	}
	return &tx, true
}

// Set caches a transaction under its id with the standard TTL
func (c *TransactionCache) Set(ctx context.Context, id uint, tx *domain.Transaction) {
	b, err := json.Marshal(tx)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, cacheKey(id), b, TransactionCacheTTL).Err()
}

// Invalidate deletes the cached entry for an id
func (c *TransactionCache) Invalidate(ctx context.Context, id uint) error {
	return c.rdb.Del(ctx, cacheKey(id)).Err()
}
