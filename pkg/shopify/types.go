package shopify

import (
	"time"

	"storefront-chatbot/internal/model"
)

// Config holds the Admin API credentials and tuning for one store.
type Config struct {
	ShopName    string
	AccessToken string
	Timeout     time.Duration
}

// productsPage is one page of the Admin API products listing.
type productsPage struct {
	Products []model.Product `json:"products"`
}
