package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trift-shop/storefront/internal/core/domain"
)

func TestToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("AddThenRemove", func(t *testing.T) {
		s, _, producer := newTestService()

		change, err := s.ToggleLike(ctx, testSID, "1")
		require.NoError(t, err)
		assert.Equal(t, domain.LikeAdded, change)

		change, err = s.ToggleLike(ctx, testSID, "1")
		require.NoError(t, err)
		assert.Equal(t, domain.LikeRemoved, change)

		items, err := s.Wishlist(ctx, testSID)
		require.NoError(t, err)
		assert.Empty(t, items)

		assert.Equal(t, []domain.EventType{
			domain.EventWishlistAdded,
			domain.EventWishlistRemoved,
		}, producer.types())
	})

	t.Run("CatalogOrderNotLikeOrder", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.ToggleLike(ctx, testSID, "3")
		require.NoError(t, err)
		_, err = s.ToggleLike(ctx, testSID, "1")
		require.NoError(t, err)

		items, err := s.Wishlist(ctx, testSID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "1", items[0].ID)
		assert.Equal(t, "3", items[1].ID)
	})

	t.Run("DanglingIDIsDropped", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.ToggleLike(ctx, testSID, "retired-product")
		require.NoError(t, err)
		_, err = s.ToggleLike(ctx, testSID, "2")
		require.NoError(t, err)

		items, err := s.Wishlist(ctx, testSID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "2", items[0].ID)
	})
}

func TestRemoveLike(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.ToggleLike(ctx, testSID, "1")
		require.NoError(t, err)
		require.NoError(t, s.RemoveLike(ctx, testSID, "1"))

		items, err := s.Wishlist(ctx, testSID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("AbsentIDIsNoOp", func(t *testing.T) {
		s, _, producer := newTestService()

		require.NoError(t, s.RemoveLike(ctx, testSID, "1"))
		assert.Empty(t, producer.types())
	})
}

func TestSetNote(t *testing.T) {
	ctx := context.Background()

	t.Run("NoteTravelsWithItem", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.ToggleLike(ctx, testSID, "1")
		require.NoError(t, err)
		require.NoError(t, s.SetNote(ctx, testSID, "1", "for the autumn trip"))

		items, err := s.Wishlist(ctx, testSID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "for the autumn trip", items[0].Note)
	})

	t.Run("EmptyStringOverwrites", func(t *testing.T) {
		s, store, _ := newTestService()

		_, err := s.ToggleLike(ctx, testSID, "1")
		require.NoError(t, err)
		require.NoError(t, s.SetNote(ctx, testSID, "1", "keep"))
		require.NoError(t, s.SetNote(ctx, testSID, "1", ""))

		items, err := s.Wishlist(ctx, testSID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "", items[0].Note)

		// the cleared note keeps its entry in the stored map
		b, err := store.Load(ctx, "wishlist_notes:"+testSID)
		require.NoError(t, err)
		assert.JSONEq(t, `{"1": ""}`, string(b))
	})

	t.Run("NoteOutlivesUnlike", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.ToggleLike(ctx, testSID, "1")
		require.NoError(t, err)
		require.NoError(t, s.SetNote(ctx, testSID, "1", "still here"))

		_, err = s.ToggleLike(ctx, testSID, "1")
		require.NoError(t, err)
		_, err = s.ToggleLike(ctx, testSID, "1")
		require.NoError(t, err)

		items, err := s.Wishlist(ctx, testSID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "still here", items[0].Note)
	})
}
