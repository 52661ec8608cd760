package httphandler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/trift-shop/storefront/internal/core/domain"
	"github.com/trift-shop/storefront/internal/core/port"
)

// GET v1/products?category=&size=&condition=&max_price=&tag=&sort= (200 OK, 400 Bad request)
// GET v1/products/{id} (200 OK, 404 Not found)

type CatalogHandler struct {
	browser port.CatalogBrowser
}

func RegisterCatalog(mux *http.ServeMux, browser port.CatalogBrowser) {
	h := CatalogHandler{browser}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/collections", h.GetCollections)
	mux.HandleFunc("GET /v1/collections/{id}", h.GetCollection)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	criteria, mode, ok := parseQuery(w, r)
	if !ok {
		log.Warn("rejected invalid query", "rawQuery", r.URL.RawQuery)
		return
	}

	ps := h.browser.Browse(criteria, mode)
	writeJSON(w, http.StatusOK, toProducts(ps))
}

func parseQuery(
	w http.ResponseWriter, r *http.Request,
) (domain.FilterCriteria, domain.SortMode, bool) {
	q := r.URL.Query()

	criteria := domain.FilterCriteria{
		Categories:         q["category"],
		Sizes:              q["size"],
		SustainabilityTags: q["tag"],
	}
	for _, c := range q["condition"] {
		cond := domain.Condition(c)
		if !cond.Valid() {
			http.Error(w, "invalid condition", http.StatusBadRequest)
			return domain.FilterCriteria{}, "", false
		}
		criteria.Conditions = append(criteria.Conditions, cond)
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			http.Error(w, "invalid max_price", http.StatusBadRequest)
			return domain.FilterCriteria{}, "", false
		}
		criteria.MaxPrice = v
	}

	mode := domain.SortFeatured
	switch sort := q.Get("sort"); sort {
	case "", string(domain.SortFeatured):
	case string(domain.SortPriceLow):
		mode = domain.SortPriceLow
	case string(domain.SortPriceHigh):
		mode = domain.SortPriceHigh
	case string(domain.SortNewest):
		mode = domain.SortNewest
	default:
		http.Error(w, "invalid sort", http.StatusBadRequest)
		return domain.FilterCriteria{}, "", false
	}

	return criteria, mode, true
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	p, ok := h.browser.Product(id)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, ProductDetail{
		Product: toProduct(p),
		Related: toProducts(h.browser.Related(id)),
	})
}

func (h CatalogHandler) GetCollections(w http.ResponseWriter, r *http.Request) {
	cs := h.browser.Collections()
	out := make([]Collection, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCollection(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h CatalogHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	c, ok := h.browser.Collection(r.PathValue("id"))
	if !ok {
		http.Error(w, "collection not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toCollection(c))
}
