package idempotency_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/idempotency"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type claimer interface {
	Claim(ctx context.Context, key string) (bool, error)
	Complete(ctx context.Context, key string) error
	Release(ctx context.Context, key string) error
}

func TestStores(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	stores := map[string]func() claimer{
		"redis": func() claimer {
			mr.FlushAll()
			return idempotency.NewRedisStore(rdb, time.Minute, time.Hour)
		},
		"memory": func() claimer {
			return idempotency.NewMemoryStore(cache.NewLRUCache(10, time.Hour), time.Minute)
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore()
			key := idempotency.Key("stripe", "evt_1")

			first, err := store.Claim(ctx, key)
			require.NoError(t, err)
			assert.True(t, first)

			second, err := store.Claim(ctx, key)
			require.NoError(t, err)
			assert.False(t, second)

			require.NoError(t, store.Release(ctx, key))

			again, err := store.Claim(ctx, key)
			require.NoError(t, err)
			assert.True(t, again)

			require.NoError(t, store.Complete(ctx, key))

			done, err := store.Claim(ctx, key)
			require.NoError(t, err)
			assert.False(t, done)
		})
	}
}

func TestRedisStore_ClaimExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	ctx := context.Background()
	store := idempotency.NewRedisStore(rdb, time.Minute, time.Hour)

	// заявка без Complete (процесс упал до коммита) живёт только claimTTL
	ok, err := store.Claim(ctx, "idem:stripe:evt_2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Minute, mr.TTL("idem:stripe:evt_2"))

	mr.FastForward(2 * time.Minute)

	ok, err = store.Claim(ctx, "idem:stripe:evt_2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisStore_CompleteExtendsWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	ctx := context.Background()
	store := idempotency.NewRedisStore(rdb, time.Minute, time.Hour)
	key := "idem:stripe:evt_4"

	ok, err := store.Claim(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, store.Complete(ctx, key))
	assert.Equal(t, time.Hour, mr.TTL(key))

	mr.FastForward(2 * time.Minute)

	ok, err = store.Claim(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { rdb.Close() })
	mr.Close()

	store := idempotency.NewRedisStore(rdb, time.Minute, time.Hour)
	_, err := store.Claim(context.Background(), "idem:stripe:evt_3")
	assert.Error(t, err)
	assert.Error(t, store.Complete(context.Background(), "idem:stripe:evt_3"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "idem:stripe:evt_1", idempotency.Key("stripe", "evt_1"))
}
