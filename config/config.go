package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storefront chatbot specifics
	Catalog CatalogConfig
	Chat    ChatConfig
	Shopify ShopifyConfig

	// LLM gateway
	Helicone HeliconeConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CatalogConfig locates the product catalog file loaded at startup.
type CatalogConfig struct {
	Path string
}

// ChatConfig tunes the chat endpoint.
type ChatConfig struct {
	RateLimitPerMin int
}

// ShopifyConfig holds the Shopify Admin API credentials used by the
// product sync job (cmd/sync). The API layer never touches these; it only
// uses ShopName to build storefront links.
type ShopifyConfig struct {
	ShopName    string
	AccessToken string
}

// StoreURL returns the public storefront base URL, or "" when no shop is
// configured.
func (c ShopifyConfig) StoreURL() string {
	if c.ShopName == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.myshopify.com", c.ShopName)
}

// HeliconeConfig holds everything the LLM gateway client needs. It is
// constructed once at startup and passed by reference; nothing re-reads the
// environment per call.
type HeliconeConfig struct {
	APIKey       string // Helicone gateway credential
	GoogleAPIKey string // upstream model credential
	GatewayURL   string
	TargetURL    string
	Model        string
	AppName      string
	Temperature  float64
	MaxTokens    int
	CacheEnabled bool
	Timeout      time.Duration
}

// Validate reports every missing credential. Detection is eager; the
// gateway call itself is still attempted when invoked.
func (c HeliconeConfig) Validate() []error {
	var errs []error
	if c.APIKey == "" {
		errs = append(errs, fmt.Errorf("helicone API key is not set"))
	}
	if c.GoogleAPIKey == "" {
		errs = append(errs, fmt.Errorf("google API key is not set"))
	}
	return errs
}

// IsConfigured reports whether both gateway credentials are present.
func (c HeliconeConfig) IsConfigured() bool {
	return len(c.Validate()) == 0
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Catalog & chat
	cfg.Catalog.Path = viper.GetString("catalog.path")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	// Shopify (sync job + storefront links)
	cfg.Shopify.ShopName = viper.GetString("shopify.shop_name")
	cfg.Shopify.AccessToken = viper.GetString("shopify.access_token")
	if shopName := viper.GetString("shop_name"); shopName != "" {
		cfg.Shopify.ShopName = shopName
	}
	if shopifyKey := viper.GetString("shopify_api_key"); shopifyKey != "" {
		cfg.Shopify.AccessToken = shopifyKey
	}

	// Helicone gateway
	cfg.Helicone.APIKey = viper.GetString("helicone.api_key")
	cfg.Helicone.GoogleAPIKey = viper.GetString("helicone.google_api_key")
	cfg.Helicone.GatewayURL = viper.GetString("helicone.gateway_url")
	cfg.Helicone.TargetURL = viper.GetString("helicone.target_url")
	cfg.Helicone.Model = viper.GetString("helicone.model")
	cfg.Helicone.AppName = viper.GetString("helicone.app_name")
	cfg.Helicone.Temperature = viper.GetFloat64("helicone.temperature")
	cfg.Helicone.MaxTokens = viper.GetInt("helicone.max_tokens")
	cfg.Helicone.CacheEnabled = viper.GetBool("helicone.cache_enabled")
	cfg.Helicone.Timeout = viper.GetDuration("helicone.timeout")

	// Flat env aliases matching the .env file contract
	if heliconeKey := viper.GetString("helicone_api_key"); heliconeKey != "" {
		cfg.Helicone.APIKey = heliconeKey
	}
	if googleKey := viper.GetString("google_api_key"); googleKey != "" {
		cfg.Helicone.GoogleAPIKey = googleKey
	}
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" && cfg.Helicone.GoogleAPIKey == "" {
		cfg.Helicone.GoogleAPIKey = geminiKey
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("catalog.path", "data/products.json")
	viper.SetDefault("chat.rate_limit_per_min", 60)

	// Helicone defaults mirror the gateway's documented settings.
	viper.SetDefault("helicone.gateway_url", "https://gateway.helicone.ai/v1beta/models/gemini-2.0-flash:generateContent")
	viper.SetDefault("helicone.target_url", "https://generativelanguage.googleapis.com")
	viper.SetDefault("helicone.model", "gemini-2.0-flash")
	viper.SetDefault("helicone.app_name", "starky-shop-chatbot")
	viper.SetDefault("helicone.temperature", 0.7)
	viper.SetDefault("helicone.max_tokens", 1000)
	viper.SetDefault("helicone.cache_enabled", true)
	viper.SetDefault("helicone.timeout", "30s")
}
