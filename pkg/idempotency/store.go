package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/pkg/cache"
	"github.com/redis/go-redis/v9"
)

const (
	claimed   = "processing"
	completed = "done"
)

// RedisStore claims keys with SET NX so that concurrent replicas agree on who
// processes a notification first. A claim lives for claimTTL until Complete
// keeps the key for ttl.
type RedisStore struct {
	rdb      *redis.Client
	claimTTL time.Duration
	ttl      time.Duration
}

func NewRedisStore(rdb *redis.Client, claimTTL, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, claimTTL: claimTTL, ttl: ttl}
}

func Key(scope, id string) string {
	return fmt.Sprintf("idem:%s:%s", scope, id)
}

// Claim reports whether the caller is the first to see key.
func (s *RedisStore) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, key, claimed, s.claimTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim key: %w", err)
	}
	return ok, nil
}

// Complete keeps key for the full dedup window once its work is committed.
func (s *RedisStore) Complete(ctx context.Context, key string) error {
	if err := s.rdb.Set(ctx, key, completed, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to complete key: %w", err)
	}
	return nil
}

// Release forgets key so that a redelivery can be processed again.
func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release key: %w", err)
	}
	return nil
}

// MemoryStore is the single-replica fallback used when Redis is not configured.
// Completed keys live for the cache TTL.
type MemoryStore struct {
	cache    *cache.LRUCache
	claimTTL time.Duration
}

func NewMemoryStore(c *cache.LRUCache, claimTTL time.Duration) *MemoryStore {
	return &MemoryStore{cache: c, claimTTL: claimTTL}
}

func (s *MemoryStore) Claim(_ context.Context, key string) (bool, error) {
	return s.cache.SetIfAbsentWithTTL(key, []byte(claimed), s.claimTTL), nil
}

func (s *MemoryStore) Complete(_ context.Context, key string) error {
	s.cache.Set(key, []byte(completed))
	return nil
}

func (s *MemoryStore) Release(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}
