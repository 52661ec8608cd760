package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trift-shop/storefront/internal/core/domain"
	"github.com/trift-shop/storefront/internal/core/port"
)

const testSID = "test-session"

func TestAddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("NewLine", func(t *testing.T) {
		s, _, producer := newTestService()

		res, err := s.AddToCart(ctx, testSID, "1", "M")
		require.NoError(t, err)
		assert.Equal(t, domain.CartAdded, res.Change)
		assert.True(t, res.OpenMiniCart)

		cart, err := s.Cart(ctx, testSID)
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, "1", cart.Lines[0].ID)
		assert.Equal(t, "M", cart.Lines[0].SelectedSize)
		assert.Equal(t, 1, cart.Lines[0].Quantity)

		assert.Equal(t, []domain.EventType{domain.EventCartAdded}, producer.types())
	})

	t.Run("MergeSameProductAndSize", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.AddToCart(ctx, testSID, "1", "M")
		require.NoError(t, err)
		res, err := s.AddToCart(ctx, testSID, "1", "M")
		require.NoError(t, err)
		assert.Equal(t, domain.CartUpdated, res.Change)
		assert.False(t, res.OpenMiniCart)

		cart, err := s.Cart(ctx, testSID)
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
	})

	t.Run("DifferentSizeOpensNewLine", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.AddToCart(ctx, testSID, "1", "M")
		require.NoError(t, err)
		res, err := s.AddToCart(ctx, testSID, "1", "L")
		require.NoError(t, err)
		assert.Equal(t, domain.CartAdded, res.Change)

		cart, err := s.Cart(ctx, testSID)
		require.NoError(t, err)
		assert.Len(t, cart.Lines, 2)
	})

	t.Run("EmptySizeDefaultsToFirst", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.AddToCart(ctx, testSID, "2", "")
		require.NoError(t, err)

		cart, err := s.Cart(ctx, testSID)
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, "XS", cart.Lines[0].SelectedSize)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.AddToCart(ctx, testSID, "missing", "")
		assert.ErrorIs(t, err, port.ErrUnknownProduct)
	})

	t.Run("SizeUnavailable", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.AddToCart(ctx, testSID, "2", "XL")
		assert.ErrorIs(t, err, port.ErrSizeUnavailable)
	})

	t.Run("SessionsAreIsolated", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.AddToCart(ctx, "sid-a", "1", "M")
		require.NoError(t, err)

		cart, err := s.Cart(ctx, "sid-b")
		require.NoError(t, err)
		assert.Empty(t, cart.Lines)
	})
}

func TestCartTotals(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestService()

	_, err := s.AddToCart(ctx, testSID, "1", "M") // 45.00
	require.NoError(t, err)

	cart, err := s.Cart(ctx, testSID)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Totals.ItemCount)
	assert.InDelta(t, 45.0, cart.Totals.Subtotal, 1e-9)
	assert.InDelta(t, domain.FlatShippingRate, cart.Totals.Shipping, 1e-9)

	// second unit crosses the free-shipping threshold
	_, err = s.AddToCart(ctx, testSID, "1", "M")
	require.NoError(t, err)

	cart, err = s.Cart(ctx, testSID)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, cart.Totals.Subtotal, 1e-9)
	assert.InDelta(t, 0.0, cart.Totals.Shipping, 1e-9)
	assert.InDelta(t, 97.20, cart.Totals.Total, 1e-9)
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("StoresRequestedValueVerbatim", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.AddToCart(ctx, testSID, "1", "M")
		require.NoError(t, err)

		require.NoError(t, s.UpdateQuantity(ctx, testSID, "1", 7))
		cart, err := s.Cart(ctx, testSID)
		require.NoError(t, err)
		assert.Equal(t, 7, cart.Lines[0].Quantity)

		require.NoError(t, s.UpdateQuantity(ctx, testSID, "1", 0))
		cart, err = s.Cart(ctx, testSID)
		require.NoError(t, err)
		assert.Equal(t, 0, cart.Lines[0].Quantity)
	})

	t.Run("HitsEveryLineOfTheProduct", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.AddToCart(ctx, testSID, "1", "M")
		require.NoError(t, err)
		_, err = s.AddToCart(ctx, testSID, "1", "L")
		require.NoError(t, err)

		require.NoError(t, s.UpdateQuantity(ctx, testSID, "1", 3))

		cart, err := s.Cart(ctx, testSID)
		require.NoError(t, err)
		require.Len(t, cart.Lines, 2)
		assert.Equal(t, 3, cart.Lines[0].Quantity)
		assert.Equal(t, 3, cart.Lines[1].Quantity)
	})

	t.Run("UnknownProductIsNoOp", func(t *testing.T) {
		s, _, producer := newTestService()

		require.NoError(t, s.UpdateQuantity(ctx, testSID, "missing", 3))
		assert.Empty(t, producer.types())
	})
}

func TestRemoveFromCart(t *testing.T) {
	ctx := context.Background()

	t.Run("DropsEveryLineOfTheProduct", func(t *testing.T) {
		s, _, _ := newTestService()

		_, err := s.AddToCart(ctx, testSID, "1", "M")
		require.NoError(t, err)
		_, err = s.AddToCart(ctx, testSID, "1", "L")
		require.NoError(t, err)
		_, err = s.AddToCart(ctx, testSID, "2", "")
		require.NoError(t, err)

		require.NoError(t, s.RemoveFromCart(ctx, testSID, "1"))

		cart, err := s.Cart(ctx, testSID)
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, "2", cart.Lines[0].ID)
	})

	t.Run("UnknownProductIsNoOp", func(t *testing.T) {
		s, _, producer := newTestService()

		require.NoError(t, s.RemoveFromCart(ctx, testSID, "missing"))
		assert.Empty(t, producer.types())
	})
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestService()

	_, err := s.AddToCart(ctx, testSID, "1", "M")
	require.NoError(t, err)

	ref, err := s.Checkout(ctx, testSID)
	require.NoError(t, err)
	_, err = uuid.Parse(ref)
	assert.NoError(t, err)

	// checkout does not clear the cart
	cart, err := s.Cart(ctx, testSID)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
}

func TestCartPersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("SurvivesServiceRestart", func(t *testing.T) {
		s, store, _ := newTestService()

		_, err := s.AddToCart(ctx, testSID, "1", "M")
		require.NoError(t, err)

		reborn := New(testCatalog(), store, &captureProducer{})
		cart, err := reborn.Cart(ctx, testSID)
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, "Vintage Denim Jacket", cart.Lines[0].Name)
	})

	t.Run("CorruptValueDegradesToEmpty", func(t *testing.T) {
		s, store, _ := newTestService()

		_, err := s.AddToCart(ctx, testSID, "1", "M")
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, "cart:"+testSID, []byte("{not json")))

		cart, err := s.Cart(ctx, testSID)
		require.NoError(t, err)
		assert.Empty(t, cart.Lines)
	})

	t.Run("CorruptCartLeavesWishlistAlone", func(t *testing.T) {
		s, store, _ := newTestService()

		_, err := s.ToggleLike(ctx, testSID, "1")
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, "cart:"+testSID, []byte("****")))

		items, err := s.Wishlist(ctx, testSID)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}
