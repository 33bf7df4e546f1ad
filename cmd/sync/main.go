package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"storefront-chatbot/config"
	"storefront-chatbot/internal/model"
	"storefront-chatbot/pkg/log"
	"storefront-chatbot/pkg/shopify"
)

// Pulls the full product listing from the Shopify Admin API and rewrites the
// catalog file the chatbot loads at startup. Run it whenever the store
// changes; the API process must be restarted to pick up the new file.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	if cfg.Shopify.ShopName == "" || cfg.Shopify.AccessToken == "" {
		logger.Fatal(ctx, "SHOP_NAME and SHOPIFY_API_KEY must be set to sync products")
	}

	client := shopify.New(shopify.Config{
		ShopName:    cfg.Shopify.ShopName,
		AccessToken: cfg.Shopify.AccessToken,
	}, logger)

	logger.Infof(ctx, "Syncing products from %s...", cfg.Shopify.StoreURL())

	products, err := client.FetchAllProducts(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Product sync failed: %v", err)
	}

	if err := writeCatalog(cfg.Catalog.Path, products); err != nil {
		logger.Fatalf(ctx, "Failed to write catalog: %v", err)
	}

	logger.Infof(ctx, "Synced %d products to %s", len(products), cfg.Catalog.Path)
}

// writeCatalog writes the catalog atomically: a temp file in the target
// directory, then a rename. A crash mid-write never leaves a truncated
// catalog behind.
func writeCatalog(path string, products []model.Product) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".products-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
