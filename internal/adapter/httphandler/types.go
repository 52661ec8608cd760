package httphandler

import (
	"github.com/trift-shop/storefront/internal/core/domain"
)

type (
	Product struct {
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
		Images            []string `json:"images"`
	}

	Collection struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Subtitle        string    `json:"subtitle"`
		Description     string    `json:"description"`
		HeroImage       string    `json:"heroImage"`
		Products        []Product `json:"products"`
		MoodboardImages []string  `json:"moodboardImages"`
	}

	CartLine struct {
		Product
		Quantity     int    `json:"quantity"`
		SelectedSize string `json:"selectedSize"`
	}

	CartTotals struct {
		ItemCount int     `json:"itemCount"`
		Subtotal  float64 `json:"subtotal"`
		Shipping  float64 `json:"shipping"`
		Tax       float64 `json:"tax"`
		Total     float64 `json:"total"`
	}

	Cart struct {
		Lines  []CartLine `json:"lines"`
		Totals CartTotals `json:"totals"`
	}

	ProductDetail struct {
		Product
		Related []Product `json:"related"`
	}

	WishlistItem struct {
		Product
		Note string `json:"note"`
	}

	Suggestions struct {
		Categories   []string `json:"categories"`
		ProductNames []string `json:"products"`
	}

	SearchResponse struct {
		Products    []Product   `json:"products"`
		Suggestions Suggestions `json:"suggestions"`
		DidYouMean  string      `json:"didYouMean,omitempty"`
	}

	Badges struct {
		CartCount     int `json:"cartCount"`
		WishlistCount int `json:"wishlistCount"`
	}

	AddToCartRequest struct {
		ProductID string `json:"productId"`
		Size      string `json:"size,omitempty"`
	}

	UpdateQuantityRequest struct {
		Quantity int `json:"quantity"`
	}

	ToggleLikeRequest struct {
		ProductID string `json:"productId"`
	}

	NoteRequest struct {
		Note string `json:"note"`
	}

	MutationResponse struct {
		Change       string `json:"change,omitempty"`
		OpenMiniCart bool   `json:"openMiniCart,omitempty"`
	}

	CheckoutResponse struct {
		OrderRef string `json:"orderRef"`
	}
)

func toProduct(p domain.Product) Product {
	return Product{
		ID:                p.ID,
		Name:              p.Name,
		Price:             p.Price,
		OriginalPrice:     p.OriginalPrice,
		Image:             p.Image,
		Category:          p.Category,
		Sizes:             p.Sizes,
		Condition:         string(p.Condition),
		SustainabilityTag: p.SustainabilityTag,
		Description:       p.Description,
		Material:          p.Material,
		Brand:             p.Brand,
		Images:            p.Gallery(),
	}
}

func toProducts(ps []domain.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProduct(p))
	}
	return out
}

func toCollection(c domain.Collection) Collection {
	return Collection{
		ID:              c.ID,
		Name:            c.Name,
		Subtitle:        c.Subtitle,
		Description:     c.Description,
		HeroImage:       c.HeroImage,
		Products:        toProducts(c.Products),
		MoodboardImages: c.MoodboardImages,
	}
}

func toCart(c domain.Cart) Cart {
	lines := make([]CartLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLine{
			Product:      toProduct(l.Product),
			Quantity:     l.Quantity,
			SelectedSize: l.SelectedSize,
		})
	}
	return Cart{
		Lines: lines,
		Totals: CartTotals{
			ItemCount: c.Totals.ItemCount,
			Subtotal:  c.Totals.Subtotal,
			Shipping:  c.Totals.Shipping,
			Tax:       c.Totals.Tax,
			Total:     c.Totals.Total,
		},
	}
}

func toWishlist(items []domain.WishlistItem) []WishlistItem {
	out := make([]WishlistItem, 0, len(items))
	for _, v := range items {
		out = append(out, WishlistItem{
			Product: toProduct(v.Product),
			Note:    v.Note,
		})
	}
	return out
}
