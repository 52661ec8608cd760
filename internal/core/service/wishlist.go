package service

import (
	"context"
	"fmt"

	"github.com/trift-shop/storefront/internal/core/domain"
)

// Wishlist materializes the liked products in catalog order, not like
// order, each carrying its note. Liked ids that no longer resolve in
// the catalog are silently dropped.
func (s Service) Wishlist(
	ctx context.Context, sessionID string,
) ([]domain.WishlistItem, error) {
	const op = "Service.Wishlist"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	liked := make(map[string]struct{})
	for _, id := range s.loadLikedIDs(ctx, sessionID) {
		liked[id] = struct{}{}
	}
	notes := s.loadNotes(ctx, sessionID)

	var items []domain.WishlistItem
	for _, p := range s.catalog.Products() {
		if _, ok := liked[p.ID]; !ok {
			continue
		}
		items = append(items, domain.WishlistItem{
			Product: p,
			Note:    notes[p.ID],
		})
	}
	return items, nil
}

// ToggleLike is the single mutation entry point for likes: present ids
// are removed, absent ids added.
func (s Service) ToggleLike(
	ctx context.Context, sessionID, productID string,
) (domain.LikeChange, error) {
	const op = "Service.ToggleLike"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	ids := s.loadLikedIDs(ctx, sessionID)
	for i, id := range ids {
		if id == productID {
			ids = append(ids[:i], ids[i+1:]...)
			s.saveLikedIDs(ctx, sessionID, ids)
			s.emit(ctx, domain.ClientEvent{
				SessionID: sessionID,
				Type:      domain.EventWishlistRemoved,
				ProductID: productID,
			})
			return domain.LikeRemoved, nil
		}
	}

	ids = append(ids, productID)
	s.saveLikedIDs(ctx, sessionID, ids)
	s.emit(ctx, domain.ClientEvent{
		SessionID: sessionID,
		Type:      domain.EventWishlistAdded,
		ProductID: productID,
	})
	return domain.LikeAdded, nil
}

// RemoveLike unconditionally removes a liked id; used by the wishlist
// page where presence is guaranteed by context. Absent id is a no-op.
func (s Service) RemoveLike(
	ctx context.Context, sessionID, productID string,
) error {
	const op = "Service.RemoveLike"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ids := s.loadLikedIDs(ctx, sessionID)
	for i, id := range ids {
		if id == productID {
			ids = append(ids[:i], ids[i+1:]...)
			s.saveLikedIDs(ctx, sessionID, ids)
			s.emit(ctx, domain.ClientEvent{
				SessionID: sessionID,
				Type:      domain.EventWishlistRemoved,
				ProductID: productID,
			})
			return nil
		}
	}
	return nil
}

// SetNote overwrites (or creates) the note, including overwriting with
// the empty string: a cleared note keeps its entry, distinct from an
// absent one.
func (s Service) SetNote(
	ctx context.Context, sessionID, productID, note string,
) error {
	const op = "Service.SetNote"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	notes := s.loadNotes(ctx, sessionID)
	notes[productID] = note
	s.saveNotes(ctx, sessionID, notes)
	return nil
}
