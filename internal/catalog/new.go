package catalog

import "storefront-chatbot/internal/model"

// Catalog is the ordered, immutable collection of products available for
// keyword matching. It is built once at startup and never mutated, so it is
// safe for concurrent reads without locking.
type Catalog struct {
	products []model.Product
}

// New creates a Catalog from the given products, preserving their order.
// Ingestion order is the display and tie-break order for matches.
func New(products []model.Product) *Catalog {
	return &Catalog{products: products}
}

// Products returns the full product list in catalog order.
func (c *Catalog) Products() []model.Product {
	return c.products
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
