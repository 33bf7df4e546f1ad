package model

// Variant is a purchasable variation of a product. Shopify serializes
// prices as decimal strings ("24.99"); they are carried through verbatim.
type Variant struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
}

// Product is one catalog entry as ingested from the commerce platform.
// It is read-only after catalog load.
type Product struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Handle   string    `json:"handle"`
	Variants []Variant `json:"variants"`
}

// PriceUnavailable is rendered whenever a product has no usable price or title.
const PriceUnavailable = "N/A"

// Price returns the first variant's price. The first variant is treated as
// the product price; a product with no variants yields "N/A".
func (p Product) Price() string {
	if len(p.Variants) == 0 || p.Variants[0].Price == "" {
		return PriceUnavailable
	}
	return p.Variants[0].Price
}

// DisplayTitle returns the product title, or "N/A" when missing.
func (p Product) DisplayTitle() string {
	if p.Title == "" {
		return PriceUnavailable
	}
	return p.Title
}

// StoreURL builds the storefront link for the product, or "" when either
// the handle or the store base URL is absent.
func (p Product) StoreURL(storeBaseURL string) string {
	if p.Handle == "" || storeBaseURL == "" {
		return ""
	}
	return storeBaseURL + "/products/" + p.Handle
}
