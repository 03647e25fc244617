package dedup

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_MarkDelivered(t *testing.T) {
	store, mr := newStore(t, time.Hour)
	ctx := context.Background()

	first, err := store.MarkDelivered(ctx, "tx-1")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := store.MarkDelivered(ctx, "tx-1")
	require.NoError(t, err)
	assert.False(t, again)

	other, err := store.MarkDelivered(ctx, "tx-2")
	require.NoError(t, err)
	assert.True(t, other)

	assert.True(t, mr.Exists("webhook:delivery:tx-1"))
	assert.Equal(t, time.Hour, mr.TTL("webhook:delivery:tx-1"))
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := newStore(t, time.Minute)
	ctx := context.Background()

	_, err := store.MarkDelivered(ctx, "tx-1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	first, err := store.MarkDelivered(ctx, "tx-1")
	require.NoError(t, err)
	assert.True(t, first)
}

func TestRedisStore_DefaultTTL(t *testing.T) {
	store, _ := newStore(t, 0)
	assert.Equal(t, DefaultTTL, store.ttl)
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := newStore(t, time.Hour)
	mr.Close()

	_, err := store.MarkDelivered(context.Background(), "tx-1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestNopStore(t *testing.T) {
	var store NopStore
	for i := 0; i < 3; i++ {
		first, err := store.MarkDelivered(context.Background(), "tx-1")
		require.NoError(t, err)
		assert.True(t, first)
	}
}
