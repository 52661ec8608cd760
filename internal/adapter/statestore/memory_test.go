package statestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trift-shop/storefront/internal/core/port"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingKey", func(t *testing.T) {
		s := NewMemoryStore()
		_, err := s.Load(ctx, "cart:none")
		assert.ErrorIs(t, err, port.ErrNoValue)
	})

	t.Run("SaveThenLoad", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.Save(ctx, "k", []byte("v1")))
		require.NoError(t, s.Save(ctx, "k", []byte("v2")))

		got, err := s.Load(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("ValuesAreCopied", func(t *testing.T) {
		s := NewMemoryStore()
		in := []byte("abc")
		require.NoError(t, s.Save(ctx, "k", in))
		in[0] = 'x'

		got, err := s.Load(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), got)

		got[0] = 'y'
		again, err := s.Load(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})
}
