package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/trift-shop/storefront/internal/core/port"
)

// GET    v1/search?q= (200 OK)
// GET    v1/search/recent (200 OK)
// DELETE v1/search/recent (204 No content)

type SearchHandler struct {
	searcher port.Searcher
}

func RegisterSearch(mux *http.ServeMux, searcher port.Searcher) {
	h := SearchHandler{searcher}
	mux.HandleFunc("GET /v1/search", h.GetSearch)
	mux.HandleFunc("GET /v1/search/recent", h.GetRecent)
	mux.HandleFunc("DELETE /v1/search/recent", h.DeleteRecent)
}

// GetSearch runs the search stage. An empty query returns an empty
// result set, never the full catalog.
func (h SearchHandler) GetSearch(w http.ResponseWriter, r *http.Request) {
	const op = "SearchHandler.GetSearch"
	log := slog.With("op", op)

	res, err := h.searcher.Search(r.Context(), sessionID(r), r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, "failed to search", http.StatusInternalServerError)
		log.Error("failed to search", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Products: toProducts(res.Products),
		Suggestions: Suggestions{
			Categories:   res.Suggestions.Categories,
			ProductNames: res.Suggestions.ProductNames,
		},
		DidYouMean: res.DidYouMean,
	})
}

func (h SearchHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	const op = "SearchHandler.GetRecent"
	log := slog.With("op", op)

	recent, err := h.searcher.RecentSearches(r.Context(), sessionID(r))
	if err != nil {
		http.Error(w, "failed to read recent searches", http.StatusInternalServerError)
		log.Error("failed to read recent searches", "err", err)
		return
	}
	if recent == nil {
		recent = []string{}
	}
	writeJSON(w, http.StatusOK, recent)
}

func (h SearchHandler) DeleteRecent(w http.ResponseWriter, r *http.Request) {
	const op = "SearchHandler.DeleteRecent"
	log := slog.With("op", op)

	if err := h.searcher.ClearRecentSearches(r.Context(), sessionID(r)); err != nil {
		http.Error(w, "failed to clear recent searches", http.StatusInternalServerError)
		log.Error("failed to clear recent searches", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
