package shopify

import "time"

const (
	// APIVersion pins the Admin API contract the client is written against.
	APIVersion = "2024-01"

	// pageLimit is the Admin API's maximum page size.
	pageLimit = 250

	defaultTimeout = 30 * time.Second

	accessTokenHeader = "X-Shopify-Access-Token"
)
