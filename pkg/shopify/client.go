package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"storefront-chatbot/internal/model"
	"storefront-chatbot/pkg/log"
)

// Client fetches the product catalog from the Shopify Admin API.
type Client struct {
	cfg        Config
	l          log.Logger
	baseURL    string
	httpClient *http.Client
}

// New creates a Shopify Admin API client for the configured store.
func New(cfg Config, l log.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:        cfg,
		l:          l,
		baseURL:    fmt.Sprintf("https://%s.myshopify.com", cfg.ShopName),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// SetBaseURL overrides the store base URL. Used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimRight(u, "/")
}

// FetchAllProducts pages through the full product listing. Pagination is
// cursor-based: each response carries a Link header whose rel="next" entry
// points at the following page, absent on the last one.
func (c *Client) FetchAllProducts(ctx context.Context) ([]model.Product, error) {
	url := fmt.Sprintf("%s/admin/api/%s/products.json?limit=%d", c.baseURL, APIVersion, pageLimit)

	var products []model.Product
	for page := 1; url != ""; page++ {
		pageProducts, next, err := c.fetchPage(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		products = append(products, pageProducts...)
		c.l.Infof(ctx, "shopify: page %d fetched, %d products so far", page, len(products))
		url = next
	}
	return products, nil
}

func (c *Client) fetchPage(ctx context.Context, url string) ([]model.Product, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set(accessTokenHeader, c.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, "", fmt.Errorf("admin API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var pg productsPage
	if err := json.NewDecoder(resp.Body).Decode(&pg); err != nil {
		return nil, "", fmt.Errorf("decode products page: %w", err)
	}

	return pg.Products, nextPageURL(resp.Header.Get("Link")), nil
}

// nextPageURL extracts the rel="next" target from a Link header, or ""
// when there is no further page.
func nextPageURL(linkHeader string) string {
	for _, part := range strings.Split(linkHeader, ",") {
		if !strings.Contains(part, `rel="next"`) {
			continue
		}
		start := strings.Index(part, "<")
		end := strings.Index(part, ">")
		if start >= 0 && end > start {
			return part[start+1 : end]
		}
	}
	return ""
}
