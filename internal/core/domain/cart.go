package domain

const (
	// FreeShippingOver is the subtotal a cart must strictly exceed to
	// qualify for free shipping.
	FreeShippingOver = 50.0
	// FlatShippingRate applies to every order at or below the threshold.
	FlatShippingRate = 5.99
	// TaxRate is the flat rate applied to the subtotal.
	TaxRate = 0.08
)

type (
	// A CartLine is one product+size+quantity record in the cart. The
	// product attributes are a snapshot taken at add time. Line identity
	// for merging is the (ProductID, SelectedSize) pair.
	CartLine struct {
		Product
		Quantity     int
		SelectedSize string
	}

	// CartTotals is derived from the line sequence on every read and is
	// never cached.
	CartTotals struct {
		ItemCount int
		Subtotal  float64
		Shipping  float64
		Tax       float64
		Total     float64
	}

	Cart struct {
		Lines  []CartLine
		Totals CartTotals
	}
)

// A CartChange tells the caller whether an add merged into an existing
// line or appended a new one.
type CartChange string

const (
	CartAdded   CartChange = "added"
	CartUpdated CartChange = "updated"
)

// AddResult reports the outcome of an add-to-cart mutation. OpenMiniCart
// is set only when a new line was appended.
type AddResult struct {
	Change       CartChange
	OpenMiniCart bool
}

// ComputeTotals recomputes the derived cart values from the lines.
// Shipping is free strictly above FreeShippingOver: a subtotal of
// exactly 50.00 still pays the flat rate.
func ComputeTotals(lines []CartLine) CartTotals {
	var t CartTotals
	for _, l := range lines {
		t.ItemCount += l.Quantity
		t.Subtotal += l.Price * float64(l.Quantity)
	}
	if t.Subtotal <= FreeShippingOver {
		t.Shipping = FlatShippingRate
	}
	t.Tax = t.Subtotal * TaxRate
	t.Total = t.Subtotal + t.Shipping + t.Tax
	return t
}

// ClampQuantity is the documented caller-side floor for quantity
// updates: decreasing past 1 is a no-op, not a removal. The core update
// operation itself stores the requested value verbatim.
func ClampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
