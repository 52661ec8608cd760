package domain

// A Condition is the rating assigned to a pre-owned item during intake.
type Condition string

const (
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair:
		return true
	}
	return false
}

type (
	// A Product is a catalog entity. Products are created once at startup
	// from the static catalog source and never mutated afterwards.
	//
	// OriginalPrice is zero when the item has no pre-owned discount;
	// when set it is never below Price.
	Product struct {
		ID                string
		Name              string
		Price             float64
		OriginalPrice     float64
		Image             string
		Category          string
		Sizes             []string
		Condition         Condition
		SustainabilityTag string
		Description       string
		Material          string
		Brand             string
		Images            []string
	}

	// A Collection is a curated grouping of products. Products are held
	// by value, so one catalog product may appear in several collections
	// as independent copies.
	Collection struct {
		ID              string
		Name            string
		Subtitle        string
		Description     string
		HeroImage       string
		Products        []Product
		MoodboardImages []string
	}
)

// Discounted reports whether the item carries an original price to
// display a markdown against.
func (p Product) Discounted() bool {
	return p.OriginalPrice > p.Price
}

// Gallery returns the product image sequence, falling back to the
// single primary image when no additional images exist.
func (p Product) Gallery() []string {
	if len(p.Images) == 0 {
		return []string{p.Image}
	}
	return p.Images
}

// OffersSize reports whether the product is available in size s.
func (p Product) OffersSize(s string) bool {
	for _, v := range p.Sizes {
		if v == s {
			return true
		}
	}
	return false
}
