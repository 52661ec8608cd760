package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/trift-shop/storefront/internal/core/domain"
	"github.com/trift-shop/storefront/internal/core/port"
)

// The three session values live under independent keys: a corrupt or
// absent value degrades to its empty default without touching the
// other two.
const (
	cartKeyPrefix   = "cart:"
	likedKeyPrefix  = "wishlist:"
	notesKeyPrefix  = "wishlist_notes:"
	recentKeyPrefix = "recent_searches:"
)

// persistedLine is the stored shape of one cart line: the full product
// snapshot plus quantity and selected size, mirroring the wire DTO the
// storefront client kept.
type persistedLine struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Price             float64  `json:"price"`
	OriginalPrice     float64  `json:"originalPrice,omitempty"`
	Image             string   `json:"image"`
	Category          string   `json:"category"`
	Sizes             []string `json:"size"`
	Condition         string   `json:"condition"`
	SustainabilityTag string   `json:"sustainabilityTag,omitempty"`
	Description       string   `json:"description"`
	Material          string   `json:"material,omitempty"`
	Brand             string   `json:"brand,omitempty"`
	Images            []string `json:"images,omitempty"`
	Quantity          int      `json:"quantity"`
	SelectedSize      string   `json:"selectedSize"`
}

func toPersistedLine(l domain.CartLine) persistedLine {
	return persistedLine{
		ID:                l.ID,
		Name:              l.Name,
		Price:             l.Price,
		OriginalPrice:     l.OriginalPrice,
		Image:             l.Image,
		Category:          l.Category,
		Sizes:             l.Sizes,
		Condition:         string(l.Condition),
		SustainabilityTag: l.SustainabilityTag,
		Description:       l.Description,
		Material:          l.Material,
		Brand:             l.Brand,
		Images:            l.Images,
		Quantity:          l.Quantity,
		SelectedSize:      l.SelectedSize,
	}
}

func (p persistedLine) toDomain() domain.CartLine {
	return domain.CartLine{
		Product: domain.Product{
			ID:                p.ID,
			Name:              p.Name,
			Price:             p.Price,
			OriginalPrice:     p.OriginalPrice,
			Image:             p.Image,
			Category:          p.Category,
			Sizes:             p.Sizes,
			Condition:         domain.Condition(p.Condition),
			SustainabilityTag: p.SustainabilityTag,
			Description:       p.Description,
			Material:          p.Material,
			Brand:             p.Brand,
			Images:            p.Images,
		},
		Quantity:     p.Quantity,
		SelectedSize: p.SelectedSize,
	}
}

// loadValue reads and decodes one session value. Absence and malformed
// content both degrade to the empty default; only the parse failure is
// worth a log line.
func loadValue[T any](ctx context.Context, store port.StateStore, key string) (v T) {
	const op = "service.loadValue"

	b, err := store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, port.ErrNoValue) {
			slog.Warn("failed to load session value, using empty default",
				"op", op, "key", key, "err", err)
		}
		return v
	}

	if err := json.Unmarshal(b, &v); err != nil {
		var zero T
		slog.Warn("malformed session value, using empty default",
			"op", op, "key", key, "err", err)
		return zero
	}
	return v
}

// saveValue writes one session value back synchronously. A failed
// write is logged, never surfaced and never retried: the caller's
// in-memory mutation already happened.
func saveValue(ctx context.Context, store port.StateStore, key string, v any) {
	const op = "service.saveValue"

	b, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal session value", "op", op, "key", key, "err", err)
		return
	}
	if err := store.Save(ctx, key, b); err != nil {
		slog.Warn("failed to write session value", "op", op, "key", key, "err", err)
	}
}

func (s Service) loadLines(ctx context.Context, sessionID string) []domain.CartLine {
	stored := loadValue[[]persistedLine](ctx, s.store, cartKeyPrefix+sessionID)
	lines := make([]domain.CartLine, 0, len(stored))
	for _, p := range stored {
		lines = append(lines, p.toDomain())
	}
	return lines
}

func (s Service) saveLines(ctx context.Context, sessionID string, lines []domain.CartLine) {
	stored := make([]persistedLine, 0, len(lines))
	for _, l := range lines {
		stored = append(stored, toPersistedLine(l))
	}
	saveValue(ctx, s.store, cartKeyPrefix+sessionID, stored)
}

func (s Service) loadLikedIDs(ctx context.Context, sessionID string) []string {
	return loadValue[[]string](ctx, s.store, likedKeyPrefix+sessionID)
}

func (s Service) saveLikedIDs(ctx context.Context, sessionID string, ids []string) {
	saveValue(ctx, s.store, likedKeyPrefix+sessionID, ids)
}

func (s Service) loadNotes(ctx context.Context, sessionID string) map[string]string {
	notes := loadValue[map[string]string](ctx, s.store, notesKeyPrefix+sessionID)
	if notes == nil {
		notes = make(map[string]string)
	}
	return notes
}

func (s Service) saveNotes(ctx context.Context, sessionID string, notes map[string]string) {
	saveValue(ctx, s.store, notesKeyPrefix+sessionID, notes)
}

func (s Service) loadRecent(ctx context.Context, sessionID string) []string {
	return loadValue[[]string](ctx, s.store, recentKeyPrefix+sessionID)
}

func (s Service) saveRecent(ctx context.Context, sessionID string, qs []string) {
	saveValue(ctx, s.store, recentKeyPrefix+sessionID, qs)
}
