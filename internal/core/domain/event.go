package domain

import "time"

// An EventType names a storefront gesture worth streaming to analytics.
type EventType string

const (
	EventCartAdded       EventType = "cart_added"
	EventCartUpdated     EventType = "cart_updated"
	EventCartRemoved     EventType = "cart_removed"
	EventWishlistAdded   EventType = "wishlist_added"
	EventWishlistRemoved EventType = "wishlist_removed"
	EventSearch          EventType = "search"
)

// A ClientEvent is the fire-and-forget analytics record emitted after a
// session mutation or a committed search. Producing it never affects
// the operation that triggered it.
type ClientEvent struct {
	SessionID   string
	Type        EventType
	ProductID   string
	ProductName string
	Category    string
	Query       string
	Quantity    int
	OccurredAt  time.Time
}
