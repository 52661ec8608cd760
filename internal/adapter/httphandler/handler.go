// Package httphandler is the JSON surface the view layer talks to.
// Handlers are registered per concern against a stdlib mux; session
// identity comes from the Session middleware cookie.
package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/trift-shop/storefront/internal/core/port"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	const op = "httphandler.writeJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}

type BadgesHandler struct {
	cart     port.CartOperator
	wishlist port.WishlistOperator
}

func RegisterBadges(
	mux *http.ServeMux, cart port.CartOperator, wishlist port.WishlistOperator,
) {
	h := BadgesHandler{cart, wishlist}
	mux.HandleFunc("GET /v1/badges", h.GetBadges)
}

// GetBadges recomputes both header counters from source state; nothing
// is cached that could drift.
func (h BadgesHandler) GetBadges(w http.ResponseWriter, r *http.Request) {
	const op = "BadgesHandler.GetBadges"
	log := slog.With("op", op)

	sid := sessionID(r)

	cart, err := h.cart.Cart(r.Context(), sid)
	if err != nil {
		http.Error(w, "failed to read cart", http.StatusInternalServerError)
		log.Error("failed to read cart", "err", err)
		return
	}

	items, err := h.wishlist.Wishlist(r.Context(), sid)
	if err != nil {
		http.Error(w, "failed to read wishlist", http.StatusInternalServerError)
		log.Error("failed to read wishlist", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, Badges{
		CartCount:     cart.Totals.ItemCount,
		WishlistCount: len(items),
	})
}
