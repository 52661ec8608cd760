package statestore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trift-shop/storefront/internal/core/port"
)

func setupRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := NewRedisStore(context.Background(), mr.Addr(), ttl)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store, mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingKey", func(t *testing.T) {
		store, _ := setupRedisStore(t, 0)

		_, err := store.Load(ctx, "cart:none")
		assert.ErrorIs(t, err, port.ErrNoValue)
	})

	t.Run("SaveThenLoad", func(t *testing.T) {
		store, _ := setupRedisStore(t, 0)

		require.NoError(t, store.Save(ctx, "wishlist:sid", []byte(`["1","2"]`)))

		got, err := store.Load(ctx, "wishlist:sid")
		require.NoError(t, err)
		assert.Equal(t, []byte(`["1","2"]`), got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		store, _ := setupRedisStore(t, 0)

		require.NoError(t, store.Save(ctx, "k", []byte("v1")))
		require.NoError(t, store.Save(ctx, "k", []byte("v2")))

		got, err := store.Load(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("PositiveTTLExpiresIdleSessions", func(t *testing.T) {
		store, mr := setupRedisStore(t, time.Minute)

		require.NoError(t, store.Save(ctx, "cart:sid", []byte("[]")))
		assert.Equal(t, time.Minute, mr.TTL("cart:sid"))

		mr.FastForward(2 * time.Minute)
		_, err := store.Load(ctx, "cart:sid")
		assert.ErrorIs(t, err, port.ErrNoValue)
	})

	t.Run("UnreachableServer", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, err := NewRedisStore(ctx, addr, 0)
		assert.Error(t, err)
	})
}
