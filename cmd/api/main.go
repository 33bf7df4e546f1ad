package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"storefront-chatbot/config"
	_ "storefront-chatbot/docs" // Swagger docs
	"storefront-chatbot/internal/catalog"
	"storefront-chatbot/internal/httpserver"
	"storefront-chatbot/pkg/helicone"
	"storefront-chatbot/pkg/log"
)

// @title       Starky Shop Chatbot API
// @description Storefront assistant: keyword answers over the product catalog with Gemini fallback via the Helicone gateway.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	logger.Info(ctx, "Starting Starky Shop chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Product catalog (required; the matcher is useless without it)
	cat, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load catalog from %s: %v", cfg.Catalog.Path, err)
	}
	logger.Infof(ctx, "Catalog loaded: %d products from %s", cat.Len(), cfg.Catalog.Path)

	// 4. LLM gateway client. Missing credentials are reported at startup but
	// are not fatal; the bot still answers everything the keyword rules cover.
	for _, credErr := range cfg.Helicone.Validate() {
		logger.Warnf(ctx, "LLM gateway: %v", credErr)
	}
	completer := helicone.New(helicone.Config{
		APIKey:       cfg.Helicone.APIKey,
		GoogleAPIKey: cfg.Helicone.GoogleAPIKey,
		GatewayURL:   cfg.Helicone.GatewayURL,
		TargetURL:    cfg.Helicone.TargetURL,
		Model:        cfg.Helicone.Model,
		AppName:      cfg.Helicone.AppName,
		Temperature:  cfg.Helicone.Temperature,
		MaxTokens:    cfg.Helicone.MaxTokens,
		CacheEnabled: cfg.Helicone.CacheEnabled,
		Timeout:      cfg.Helicone.Timeout,
	}, logger)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		Catalog:     cat,
		Completer:   completer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
