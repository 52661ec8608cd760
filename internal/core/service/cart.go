package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/trift-shop/storefront/internal/core/domain"
	"github.com/trift-shop/storefront/internal/core/port"
)

// Cart returns the session's lines with the derived totals, recomputed
// on every call.
func (s Service) Cart(ctx context.Context, sessionID string) (domain.Cart, error) {
	const op = "Service.Cart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	lines := s.loadLines(ctx, sessionID)
	return domain.Cart{
		Lines:  lines,
		Totals: domain.ComputeTotals(lines),
	}, nil
}

// AddToCart resolves the size (defaulting to the product's first
// available size), then either increments the quantity of the line
// matching (productID, size) or appends a new line with quantity 1.
// The lookup-or-append here is the only merge rule.
func (s Service) AddToCart(
	ctx context.Context, sessionID, productID, size string,
) (domain.AddResult, error) {
	const op = "Service.AddToCart"

	if err := ctx.Err(); err != nil {
		return domain.AddResult{}, fmt.Errorf("%s: %w", op, err)
	}

	p, ok := s.catalog.ProductByID(productID)
	if !ok {
		return domain.AddResult{}, fmt.Errorf("%s: %w", op, port.ErrUnknownProduct)
	}

	if size == "" {
		size = p.Sizes[0]
	} else if !p.OffersSize(size) {
		return domain.AddResult{}, fmt.Errorf("%s: %w", op, port.ErrSizeUnavailable)
	}

	lines := s.loadLines(ctx, sessionID)
	for i := range lines {
		if lines[i].ID == productID && lines[i].SelectedSize == size {
			lines[i].Quantity++
			s.saveLines(ctx, sessionID, lines)
			s.emit(ctx, domain.ClientEvent{
				SessionID:   sessionID,
				Type:        domain.EventCartUpdated,
				ProductID:   p.ID,
				ProductName: p.Name,
				Category:    p.Category,
				Quantity:    lines[i].Quantity,
			})
			return domain.AddResult{Change: domain.CartUpdated}, nil
		}
	}

	lines = append(lines, domain.CartLine{
		Product:      p,
		Quantity:     1,
		SelectedSize: size,
	})
	s.saveLines(ctx, sessionID, lines)
	s.emit(ctx, domain.ClientEvent{
		SessionID:   sessionID,
		Type:        domain.EventCartAdded,
		ProductID:   p.ID,
		ProductName: p.Name,
		Category:    p.Category,
		Quantity:    1,
	})
	return domain.AddResult{Change: domain.CartAdded, OpenMiniCart: true}, nil
}

// UpdateQuantity overwrites the quantity of every line whose product id
// matches, verbatim and size-agnostic. Callers apply the documented
// max(1, requested) clamp; the core does not. No matching line is a
// no-op, not an error.
func (s Service) UpdateQuantity(
	ctx context.Context, sessionID, productID string, quantity int,
) error {
	const op = "Service.UpdateQuantity"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lines := s.loadLines(ctx, sessionID)
	changed := false
	for i := range lines {
		if lines[i].ID == productID {
			lines[i].Quantity = quantity
			changed = true
		}
	}
	if !changed {
		return nil
	}

	s.saveLines(ctx, sessionID, lines)
	s.emit(ctx, domain.ClientEvent{
		SessionID: sessionID,
		Type:      domain.EventCartUpdated,
		ProductID: productID,
		Quantity:  quantity,
	})
	return nil
}

// RemoveFromCart deletes every line whose product id matches,
// size-agnostic. No matching line is a no-op.
func (s Service) RemoveFromCart(
	ctx context.Context, sessionID, productID string,
) error {
	const op = "Service.RemoveFromCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lines := s.loadLines(ctx, sessionID)
	kept := lines[:0]
	for _, l := range lines {
		if l.ID != productID {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(lines) {
		return nil
	}

	s.saveLines(ctx, sessionID, kept)
	s.emit(ctx, domain.ClientEvent{
		SessionID: sessionID,
		Type:      domain.EventCartRemoved,
		ProductID: productID,
	})
	return nil
}

// Checkout is a placeholder: it hands back an order reference without
// touching the cart. Payment processing lives elsewhere.
func (s Service) Checkout(ctx context.Context, sessionID string) (string, error) {
	const op = "Service.Checkout"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uuid.NewString(), nil
}
