package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	line := func(price float64, qty int) CartLine {
		return CartLine{Product: Product{Price: price}, Quantity: qty}
	}

	t.Run("BelowThresholdPaysFlatRate", func(t *testing.T) {
		got := ComputeTotals([]CartLine{line(20, 2)})
		assert.Equal(t, 2, got.ItemCount)
		assert.InDelta(t, 40.0, got.Subtotal, 1e-9)
		assert.InDelta(t, FlatShippingRate, got.Shipping, 1e-9)
		assert.InDelta(t, 3.20, got.Tax, 1e-9)
		assert.InDelta(t, 49.19, got.Total, 1e-9)
	})

	t.Run("ExactlyFiftyStillPaysShipping", func(t *testing.T) {
		got := ComputeTotals([]CartLine{line(50, 1)})
		assert.InDelta(t, FlatShippingRate, got.Shipping, 1e-9)
	})

	t.Run("AboveThresholdShipsFree", func(t *testing.T) {
		got := ComputeTotals([]CartLine{line(60, 1)})
		assert.InDelta(t, 0.0, got.Shipping, 1e-9)
		assert.InDelta(t, 4.80, got.Tax, 1e-9)
		assert.InDelta(t, 64.80, got.Total, 1e-9)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		got := ComputeTotals(nil)
		assert.Equal(t, 0, got.ItemCount)
		assert.InDelta(t, 0.0, got.Subtotal, 1e-9)
	})
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, ClampQuantity(0))
	assert.Equal(t, 1, ClampQuantity(-3))
	assert.Equal(t, 1, ClampQuantity(1))
	assert.Equal(t, 7, ClampQuantity(7))
}

func TestProduct(t *testing.T) {
	t.Run("Discounted", func(t *testing.T) {
		assert.True(t, Product{Price: 45, OriginalPrice: 120}.Discounted())
		assert.False(t, Product{Price: 45}.Discounted())
	})

	t.Run("GalleryFallsBackToPrimaryImage", func(t *testing.T) {
		p := Product{Image: "a.jpg"}
		assert.Equal(t, []string{"a.jpg"}, p.Gallery())

		p.Images = []string{"b.jpg", "c.jpg"}
		assert.Equal(t, []string{"b.jpg", "c.jpg"}, p.Gallery())
	})

	t.Run("OffersSize", func(t *testing.T) {
		p := Product{Sizes: []string{"S", "M"}}
		assert.True(t, p.OffersSize("M"))
		assert.False(t, p.OffersSize("XL"))
	})
}
