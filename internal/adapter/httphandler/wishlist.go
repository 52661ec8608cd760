package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/trift-shop/storefront/internal/core/port"
)

// GET    v1/wishlist (200 OK)
// POST   v1/wishlist/toggle JSON {"productId"} (200 OK, 400)
// DELETE v1/wishlist/{productID} (204 No content)
// PUT    v1/wishlist/{productID}/note JSON {"note"} (204 No content, 400)

type WishlistHandler struct {
	wishlist port.WishlistOperator
}

func RegisterWishlist(mux *http.ServeMux, wishlist port.WishlistOperator) {
	h := WishlistHandler{wishlist}
	mux.HandleFunc("GET /v1/wishlist", h.GetWishlist)
	mux.HandleFunc("POST /v1/wishlist/toggle", h.PostToggle)
	mux.HandleFunc("DELETE /v1/wishlist/{productID}", h.DeleteItem)
	mux.HandleFunc("PUT /v1/wishlist/{productID}/note", h.PutNote)
}

func (h WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.GetWishlist"
	log := slog.With("op", op)

	items, err := h.wishlist.Wishlist(r.Context(), sessionID(r))
	if err != nil {
		http.Error(w, "failed to read wishlist", http.StatusInternalServerError)
		log.Error("failed to read wishlist", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toWishlist(items))
}

func (h WishlistHandler) PostToggle(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.PostToggle"
	log := slog.With("op", op)

	var req ToggleLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if req.ProductID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	change, err := h.wishlist.ToggleLike(r.Context(), sessionID(r), req.ProductID)
	if err != nil {
		http.Error(w, "failed to toggle like", http.StatusInternalServerError)
		log.Error("failed to toggle like", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, MutationResponse{Change: string(change)})
}

func (h WishlistHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.DeleteItem"
	log := slog.With("op", op)

	err := h.wishlist.RemoveLike(r.Context(), sessionID(r), r.PathValue("productID"))
	if err != nil {
		http.Error(w, "failed to remove from wishlist", http.StatusInternalServerError)
		log.Error("failed to remove from wishlist", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h WishlistHandler) PutNote(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.PutNote"
	log := slog.With("op", op)

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err := h.wishlist.SetNote(r.Context(), sessionID(r), r.PathValue("productID"), req.Note)
	if err != nil {
		http.Error(w, "failed to set note", http.StatusInternalServerError)
		log.Error("failed to set note", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
