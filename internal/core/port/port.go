package port

import (
	"context"
	"errors"

	"github.com/trift-shop/storefront/internal/core/domain"
)

var (
	// ErrNoValue is returned by a StateStore when a key holds nothing.
	ErrNoValue = errors.New("no value")

	ErrUnknownProduct  = errors.New("unknown product")
	ErrSizeUnavailable = errors.New("size unavailable")
)

// A StateStore is the durable key-value store backing session state.
// Save writes the full serialized value synchronously; there is no
// batching and no retry.
type StateStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Close()
}

// A Catalog is the immutable product and collection source, loaded once
// at startup.
type Catalog interface {
	Products() []domain.Product
	Collections() []domain.Collection
	ProductByID(id string) (domain.Product, bool)
	CollectionByID(id string) (domain.Collection, bool)
}

// An EventProducer streams client events to analytics. Implementations
// may be no-ops; callers treat produce failures as log-only.
type EventProducer interface {
	ProduceEvent(context.Context, domain.ClientEvent) error
	Close()
}

type CartOperator interface {
	Cart(ctx context.Context, sessionID string) (domain.Cart, error)
	AddToCart(ctx context.Context, sessionID, productID, size string) (domain.AddResult, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) error
	RemoveFromCart(ctx context.Context, sessionID, productID string) error
	Checkout(ctx context.Context, sessionID string) (orderRef string, err error)
}

type WishlistOperator interface {
	Wishlist(ctx context.Context, sessionID string) ([]domain.WishlistItem, error)
	ToggleLike(ctx context.Context, sessionID, productID string) (domain.LikeChange, error)
	RemoveLike(ctx context.Context, sessionID, productID string) error
	SetNote(ctx context.Context, sessionID, productID, note string) error
}

type CatalogBrowser interface {
	Browse(criteria domain.FilterCriteria, mode domain.SortMode) []domain.Product
	Product(id string) (domain.Product, bool)
	Related(id string) []domain.Product
	Collections() []domain.Collection
	Collection(id string) (domain.Collection, bool)
}

type Searcher interface {
	Search(ctx context.Context, sessionID, query string) (domain.SearchResult, error)
	RecentSearches(ctx context.Context, sessionID string) ([]string, error)
	ClearRecentSearches(ctx context.Context, sessionID string) error
}
