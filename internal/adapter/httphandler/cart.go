package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/trift-shop/storefront/internal/core/domain"
	"github.com/trift-shop/storefront/internal/core/port"
)

// GET    v1/cart (200 OK)
// POST   v1/cart/items JSON {"productId", "size"?} (200 OK, 400, 404, 422)
// PATCH  v1/cart/items/{productID} JSON {"quantity"} (204 No content, 400)
// DELETE v1/cart/items/{productID} (204 No content)
// POST   v1/cart/checkout (200 OK)

type CartHandler struct {
	cart port.CartOperator
}

func RegisterCart(mux *http.ServeMux, cart port.CartOperator) {
	h := CartHandler{cart}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("PATCH /v1/cart/items/{productID}", h.PatchItem)
	mux.HandleFunc("DELETE /v1/cart/items/{productID}", h.DeleteItem)
	mux.HandleFunc("POST /v1/cart/checkout", h.PostCheckout)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	cart, err := h.cart.Cart(r.Context(), sessionID(r))
	if err != nil {
		http.Error(w, "failed to read cart", http.StatusInternalServerError)
		log.Error("failed to read cart", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toCart(cart))
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if req.ProductID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	res, err := h.cart.AddToCart(r.Context(), sessionID(r), req.ProductID, req.Size)
	if err != nil {
		switch {
		case errors.Is(err, port.ErrUnknownProduct):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, port.ErrSizeUnavailable):
			http.Error(w, "size unavailable", http.StatusUnprocessableEntity)
		default:
			http.Error(w, "failed to add to cart", http.StatusInternalServerError)
			log.Error("failed to add to cart", "err", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, MutationResponse{
		Change:       string(res.Change),
		OpenMiniCart: res.OpenMiniCart,
	})
}

// PatchItem applies the documented caller clamp max(1, requested): the
// quantity buttons decrease past 1 as a no-op, never as a removal.
func (h CartHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PatchItem"
	log := slog.With("op", op)

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	quantity := domain.ClampQuantity(req.Quantity)
	err := h.cart.UpdateQuantity(r.Context(), sessionID(r), r.PathValue("productID"), quantity)
	if err != nil {
		http.Error(w, "failed to update quantity", http.StatusInternalServerError)
		log.Error("failed to update quantity", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	err := h.cart.RemoveFromCart(r.Context(), sessionID(r), r.PathValue("productID"))
	if err != nil {
		http.Error(w, "failed to remove from cart", http.StatusInternalServerError)
		log.Error("failed to remove from cart", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostCheckout"
	log := slog.With("op", op)

	ref, err := h.cart.Checkout(r.Context(), sessionID(r))
	if err != nil {
		http.Error(w, "failed to checkout", http.StatusInternalServerError)
		log.Error("failed to checkout", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, CheckoutResponse{OrderRef: ref})
}
