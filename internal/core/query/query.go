// Package query holds the pure catalog transformations: filtering,
// sorting, text search and the search-box helpers. Every function
// returns a fresh slice and leaves its input untouched.
package query

import (
	"sort"
	"strings"

	"github.com/trift-shop/storefront/internal/core/domain"
)

// ApplyFilters retains the products passing every active sub-filter of
// the criteria. Sub-filters are checked category, size, condition,
// price, sustainability; the order is a scanning convenience only.
func ApplyFilters(ps []domain.Product, c domain.FilterCriteria) []domain.Product {
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if !matches(p, c) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p domain.Product, c domain.FilterCriteria) bool {
	if len(c.Categories) > 0 && !containsString(c.Categories, p.Category) {
		return false
	}

	if len(c.Sizes) > 0 && !offersAny(p, c.Sizes) {
		return false
	}

	if len(c.Conditions) > 0 && !containsCondition(c.Conditions, p.Condition) {
		return false
	}

	if c.MaxPrice > 0 && p.Price > c.MaxPrice {
		return false
	}

	if len(c.SustainabilityTags) > 0 {
		if p.SustainabilityTag == "" {
			return false
		}
		if !containsString(c.SustainabilityTags, p.SustainabilityTag) {
			return false
		}
	}

	return true
}

// ApplySort orders a copy of the products. Price ties keep their
// relative catalog order. SortNewest reverses positions: there is no
// creation timestamp to sort by.
func ApplySort(ps []domain.Product, mode domain.SortMode) []domain.Product {
	sorted := make([]domain.Product, len(ps))
	copy(sorted, ps)

	switch mode {
	case domain.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case domain.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case domain.SortNewest:
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}

	return sorted
}

// Search matches the trimmed query case-insensitively against name,
// category, description and brand. An empty or whitespace-only query
// yields an empty result, never the full catalog.
func Search(ps []domain.Product, query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []domain.Product
	for _, p := range ps {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			(p.Brand != "" && strings.Contains(strings.ToLower(p.Brand), q)) {
			out = append(out, p)
		}
	}
	return out
}

const (
	maxCategorySuggestions = 3
	maxProductSuggestions  = 5
)

// Suggest collects dropdown suggestions for an in-progress query.
func Suggest(ps []domain.Product, query string) domain.Suggestions {
	var s domain.Suggestions

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s
	}

	seen := make(map[string]struct{})
	for _, p := range ps {
		if len(s.Categories) < maxCategorySuggestions &&
			strings.Contains(strings.ToLower(p.Category), q) {
			if _, ok := seen[p.Category]; !ok {
				seen[p.Category] = struct{}{}
				s.Categories = append(s.Categories, p.Category)
			}
		}
		if len(s.ProductNames) < maxProductSuggestions &&
			strings.Contains(strings.ToLower(p.Name), q) {
			s.ProductNames = append(s.ProductNames, p.Name)
		}
	}
	return s
}

// DidYouMean proposes an alternative term when an exact search came up
// empty. It scans product names, then categories, then brands in
// catalog order and returns the first term where the query with its
// last character dropped is a substring of the term, or the term with
// its last character dropped is a substring of the query. Deliberately
// crude: first match wins, not best match.
func DidYouMean(ps []domain.Product, query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}

	terms := candidateTerms(ps)
	for _, term := range terms {
		t := strings.ToLower(term)
		if strings.Contains(t, trimLast(q)) || strings.Contains(q, trimLast(t)) {
			return term
		}
	}
	return ""
}

func candidateTerms(ps []domain.Product) []string {
	terms := make([]string, 0, 3*len(ps))
	for _, p := range ps {
		terms = append(terms, p.Name)
	}
	for _, p := range ps {
		terms = append(terms, p.Category)
	}
	for _, p := range ps {
		if p.Brand != "" {
			terms = append(terms, p.Brand)
		}
	}
	return terms
}

func trimLast(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(r[:len(r)-1])
}

const maxRelated = 4

// Related picks up to four other products sharing the category, in
// catalog order.
func Related(ps []domain.Product, p domain.Product) []domain.Product {
	var out []domain.Product
	for _, v := range ps {
		if v.ID == p.ID || v.Category != p.Category {
			continue
		}
		out = append(out, v)
		if len(out) == maxRelated {
			break
		}
	}
	return out
}

func containsString(vs []string, s string) bool {
	for _, v := range vs {
		if v == s {
			return true
		}
	}
	return false
}

func offersAny(p domain.Product, sizes []string) bool {
	for _, s := range sizes {
		if p.OffersSize(s) {
			return true
		}
	}
	return false
}

func containsCondition(vs []domain.Condition, c domain.Condition) bool {
	for _, v := range vs {
		if v == c {
			return true
		}
	}
	return false
}
