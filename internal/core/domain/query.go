package domain

// FilterCriteria is a transient query against the catalog. An empty
// slice means "all" for that sub-filter; MaxPrice is an inclusive
// ceiling paired with a fixed floor of zero. Sub-filters combine with
// logical AND.
type FilterCriteria struct {
	Categories         []string
	Sizes              []string
	Conditions         []Condition
	MaxPrice           float64
	SustainabilityTags []string
}

// Active reports whether any sub-filter narrows the result.
func (c FilterCriteria) Active() bool {
	return len(c.Categories) > 0 ||
		len(c.Sizes) > 0 ||
		len(c.Conditions) > 0 ||
		c.MaxPrice > 0 ||
		len(c.SustainabilityTags) > 0
}

// A SortMode orders a product sequence. SortNewest is a positional
// reversal of the current order: products carry no creation timestamp,
// so catalog position stands in for recency.
type SortMode string

const (
	SortFeatured  SortMode = "featured"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortNewest    SortMode = "newest"
)

// A SearchResult bundles the search-stage outputs for one query.
// DidYouMean is set only when Products is empty.
type SearchResult struct {
	Products    []Product
	Suggestions Suggestions
	DidYouMean  string
}

// Suggestions feeds the incremental-search dropdown: up to three
// distinct matching category names and up to five matching product
// names.
type Suggestions struct {
	Categories   []string
	ProductNames []string
}
