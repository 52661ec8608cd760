// Package service implements the session controller: cart and wishlist
// mutations, catalog browsing and search, with every mutation written
// back to the durable state store before returning.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/trift-shop/storefront/internal/core/domain"
	"github.com/trift-shop/storefront/internal/core/port"
)

var _ port.CartOperator = (*Service)(nil)
var _ port.WishlistOperator = (*Service)(nil)
var _ port.CatalogBrowser = (*Service)(nil)
var _ port.Searcher = (*Service)(nil)

type Service struct {
	catalog port.Catalog
	store   port.StateStore
	events  port.EventProducer
}

func New(
	catalog port.Catalog,
	store port.StateStore,
	events port.EventProducer,
) Service {
	return Service{
		catalog: catalog,
		store:   store,
		events:  events,
	}
}

func (s Service) Close() {
	s.events.Close()
	s.store.Close()
}

// emit streams a client event for analytics. A failure is logged and
// never affects the operation that triggered the event.
func (s Service) emit(ctx context.Context, e domain.ClientEvent) {
	const op = "Service.emit"

	e.OccurredAt = time.Now()
	if err := s.events.ProduceEvent(ctx, e); err != nil {
		slog.Warn("failed to produce client event",
			"op", op, "type", e.Type, "err", err)
	}
}
