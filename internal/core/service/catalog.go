package service

import (
	"github.com/trift-shop/storefront/internal/core/domain"
	"github.com/trift-shop/storefront/internal/core/query"
)

// Browse filters then sorts the catalog. Both stages are pure; the
// catalog itself is never touched.
func (s Service) Browse(
	criteria domain.FilterCriteria, mode domain.SortMode,
) []domain.Product {
	return query.ApplySort(query.ApplyFilters(s.catalog.Products(), criteria), mode)
}

func (s Service) Product(id string) (domain.Product, bool) {
	return s.catalog.ProductByID(id)
}

// Related returns up to four products sharing the category of the
// given product, in catalog order.
func (s Service) Related(id string) []domain.Product {
	p, ok := s.catalog.ProductByID(id)
	if !ok {
		return nil
	}
	return query.Related(s.catalog.Products(), p)
}

func (s Service) Collections() []domain.Collection {
	return s.catalog.Collections()
}

func (s Service) Collection(id string) (domain.Collection, bool) {
	return s.catalog.CollectionByID(id)
}
