package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"storefront-chatbot/config"
	"storefront-chatbot/internal/catalog"
	"storefront-chatbot/internal/model"
	"storefront-chatbot/internal/router"
	"storefront-chatbot/pkg/helicone"
	"storefront-chatbot/pkg/log"
)

// Local console chat against the same router the API serves. Answers stay
// in markdown; nothing here renders HTML.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn", // keep the console conversational
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	cat, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load catalog from %s: %v", cfg.Catalog.Path, err)
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

	rt := router.New(cat, catalog.NewFormatter(cfg.Shopify.StoreURL()), completer, logger)
	sc := model.NewScope("repl", "repl")

	fmt.Printf("Starky Shop chatbot — %d products loaded. Type 'quit' to exit.\n", cat.Len())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "quit", "exit", "bye":
			fmt.Println("bot> Goodbye! Thanks for visiting Starky Shop!")
			return
		}
		fmt.Printf("bot> %s\n", rt.Respond(ctx, sc, line))
	}
}
