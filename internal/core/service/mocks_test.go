package service

import (
	"context"
	"sync"

	"github.com/trift-shop/storefront/internal/adapter/statestore"
	"github.com/trift-shop/storefront/internal/core/domain"
	"github.com/trift-shop/storefront/internal/core/port"
)

var _ port.Catalog = (*stubCatalog)(nil)
var _ port.EventProducer = (*captureProducer)(nil)

type stubCatalog struct {
	products    []domain.Product
	collections []domain.Collection
}

func (c stubCatalog) Products() []domain.Product {
	return c.products
}

func (c stubCatalog) Collections() []domain.Collection {
	return c.collections
}

func (c stubCatalog) ProductByID(id string) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (c stubCatalog) CollectionByID(id string) (domain.Collection, bool) {
	for _, v := range c.collections {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Collection{}, false
}

type captureProducer struct {
	mu     sync.Mutex
	events []domain.ClientEvent
}

func (p *captureProducer) ProduceEvent(_ context.Context, e domain.ClientEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *captureProducer) Close() {}

func (p *captureProducer) types() []domain.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func testCatalog() stubCatalog {
	return stubCatalog{
		products: []domain.Product{
			{
				ID: "1", Name: "Vintage Denim Jacket", Price: 45,
				Category: "Outerwear", Sizes: []string{"S", "M", "L"},
				Condition: domain.ConditionExcellent,
			},
			{
				ID: "2", Name: "Silk Slip Dress", Price: 38,
				Category: "Dresses", Sizes: []string{"XS", "S"},
				Condition: domain.ConditionGood,
			},
			{
				ID: "3", Name: "Wool Overcoat", Price: 89,
				Category: "Outerwear", Sizes: []string{"M", "L"},
				Condition: domain.ConditionGood,
			},
		},
	}
}

func newTestService() (Service, *statestore.MemoryStore, *captureProducer) {
	store := statestore.NewMemoryStore()
	producer := &captureProducer{}
	return New(testCatalog(), store, producer), store, producer
}
