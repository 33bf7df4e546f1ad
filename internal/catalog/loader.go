package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"storefront-chatbot/internal/model"
)

// LoadFile reads the product catalog from a JSON file (the Shopify product
// dump written by cmd/sync). Callers must treat any error as fatal: the
// service never serves traffic with a missing or partial catalog.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var products []model.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	return New(products), nil
}
