// Package catalog is the static catalog source: an immutable set of
// products and collections embedded into the binary and decoded once
// at startup. There is no refresh mechanism.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/trift-shop/storefront/internal/core/domain"
	"github.com/trift-shop/storefront/internal/core/port"
)

//go:embed seed.json
var seedJSON []byte

var _ port.Catalog = (*Catalog)(nil)

type (
	seedProduct struct {
		ID                string   `json:"id"`
		Name              string   `json:"name"`
		Price             float64  `json:"price"`
		OriginalPrice     float64  `json:"originalPrice,omitempty"`
		Image             string   `json:"image"`
		Category          string   `json:"category"`
		Sizes             []string `json:"size"`
		Condition         string   `json:"condition"`
		SustainabilityTag string   `json:"sustainabilityTag,omitempty"`
		Description       string   `json:"description"`
		Material          string   `json:"material,omitempty"`
		Brand             string   `json:"brand,omitempty"`
		Images            []string `json:"images,omitempty"`
	}

	seedCollection struct {
		ID              string   `json:"id"`
		Name            string   `json:"name"`
		Subtitle        string   `json:"subtitle"`
		Description     string   `json:"description"`
		HeroImage       string   `json:"heroImage"`
		ProductIDs      []string `json:"productIds"`
		MoodboardImages []string `json:"moodboardImages"`
	}

	seed struct {
		Products    []seedProduct    `json:"products"`
		Collections []seedCollection `json:"collections"`
	}
)

type Catalog struct {
	products    []domain.Product
	collections []domain.Collection
	productIdx  map[string]int
	collIdx     map[string]int
}

// Load decodes and validates the embedded seed. Collections copy their
// products by value, so the same catalog product appears in several
// collections as independent copies.
func Load() (*Catalog, error) {
	const op = "catalog.Load"

	var s seed
	if err := json.Unmarshal(seedJSON, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c := &Catalog{
		productIdx: make(map[string]int, len(s.Products)),
		collIdx:    make(map[string]int, len(s.Collections)),
	}

	for i, sp := range s.Products {
		p, err := sp.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%s: product %q: %w", op, sp.ID, err)
		}
		if _, dup := c.productIdx[p.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate product id %q", op, p.ID)
		}
		c.productIdx[p.ID] = i
		c.products = append(c.products, p)
	}

	for i, sc := range s.Collections {
		coll, err := c.buildCollection(sc)
		if err != nil {
			return nil, fmt.Errorf("%s: collection %q: %w", op, sc.ID, err)
		}
		if _, dup := c.collIdx[coll.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate collection id %q", op, coll.ID)
		}
		c.collIdx[coll.ID] = i
		c.collections = append(c.collections, coll)
	}

	return c, nil
}

// MustLoad is Load for wiring paths where a broken seed is a build
// defect, not a runtime condition.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func (sp seedProduct) toDomain() (domain.Product, error) {
	if sp.ID == "" {
		return domain.Product{}, fmt.Errorf("empty id")
	}
	if sp.Price <= 0 {
		return domain.Product{}, fmt.Errorf("price must be positive")
	}
	if sp.OriginalPrice != 0 && sp.OriginalPrice < sp.Price {
		return domain.Product{}, fmt.Errorf("original price below current price")
	}
	if len(sp.Sizes) == 0 {
		return domain.Product{}, fmt.Errorf("no sizes")
	}
	cond := domain.Condition(sp.Condition)
	if !cond.Valid() {
		return domain.Product{}, fmt.Errorf("invalid condition %q", sp.Condition)
	}

	p := domain.Product{
		ID:                sp.ID,
		Name:              sp.Name,
		Price:             sp.Price,
		OriginalPrice:     sp.OriginalPrice,
		Image:             sp.Image,
		Category:          sp.Category,
		Sizes:             sp.Sizes,
		Condition:         cond,
		SustainabilityTag: sp.SustainabilityTag,
		Description:       sp.Description,
		Material:          sp.Material,
		Brand:             sp.Brand,
		Images:            sp.Images,
	}
	if len(p.Images) == 0 {
		p.Images = []string{p.Image}
	}
	return p, nil
}

func (c *Catalog) buildCollection(sc seedCollection) (domain.Collection, error) {
	coll := domain.Collection{
		ID:              sc.ID,
		Name:            sc.Name,
		Subtitle:        sc.Subtitle,
		Description:     sc.Description,
		HeroImage:       sc.HeroImage,
		MoodboardImages: sc.MoodboardImages,
	}
	for _, id := range sc.ProductIDs {
		p, ok := c.ProductByID(id)
		if !ok {
			return domain.Collection{}, fmt.Errorf("unknown product id %q", id)
		}
		coll.Products = append(coll.Products, p)
	}
	return coll, nil
}

// Products returns the catalog sequence in canonical order. Callers
// treat it as read-only.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

func (c *Catalog) Collections() []domain.Collection {
	return c.collections
}

func (c *Catalog) ProductByID(id string) (domain.Product, bool) {
	i, ok := c.productIdx[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) CollectionByID(id string) (domain.Collection, bool) {
	i, ok := c.collIdx[id]
	if !ok {
		return domain.Collection{}, false
	}
	return c.collections[i], true
}
