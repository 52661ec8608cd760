package domain

type (
	// A WishlistItem is a liked product materialized together with its
	// free-text note. An empty note is distinct from no note only at the
	// persistence layer; the view receives the empty string either way.
	WishlistItem struct {
		Product
		Note string
	}
)

// A LikeChange tells the caller which way a toggle went.
type LikeChange string

const (
	LikeAdded   LikeChange = "added"
	LikeRemoved LikeChange = "removed"
)
