package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/trift-shop/storefront/internal/core/domain"
	"github.com/trift-shop/storefront/internal/core/query"
)

const maxRecentSearches = 5

// Search runs the full search stage against the catalog and, for a
// non-empty query, commits it to the session's recent searches and
// streams a search event. The did-you-mean heuristic activates only
// when the exact search finds nothing.
func (s Service) Search(
	ctx context.Context, sessionID, q string,
) (domain.SearchResult, error) {
	const op = "Service.Search"

	if err := ctx.Err(); err != nil {
		return domain.SearchResult{}, fmt.Errorf("%s: %w", op, err)
	}

	ps := s.catalog.Products()
	res := domain.SearchResult{
		Products:    query.Search(ps, q),
		Suggestions: query.Suggest(ps, q),
	}

	trimmed := strings.TrimSpace(q)
	if trimmed == "" {
		return res, nil
	}

	if len(res.Products) == 0 {
		res.DidYouMean = query.DidYouMean(ps, q)
	}

	s.recordRecent(ctx, sessionID, trimmed)
	s.emit(ctx, domain.ClientEvent{
		SessionID: sessionID,
		Type:      domain.EventSearch,
		Query:     trimmed,
	})
	return res, nil
}

// recordRecent keeps the last five distinct queries, most recent first.
func (s Service) recordRecent(ctx context.Context, sessionID, q string) {
	recent := s.loadRecent(ctx, sessionID)

	updated := make([]string, 0, maxRecentSearches)
	updated = append(updated, q)
	for _, v := range recent {
		if v == q {
			continue
		}
		updated = append(updated, v)
		if len(updated) == maxRecentSearches {
			break
		}
	}
	s.saveRecent(ctx, sessionID, updated)
}

func (s Service) RecentSearches(
	ctx context.Context, sessionID string,
) ([]string, error) {
	const op = "Service.RecentSearches"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.loadRecent(ctx, sessionID), nil
}

func (s Service) ClearRecentSearches(
	ctx context.Context, sessionID string,
) error {
	const op = "Service.ClearRecentSearches"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.saveRecent(ctx, sessionID, []string{})
	return nil
}
