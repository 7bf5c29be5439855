package api

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Apurer/scanpack-api/internal/clients/http/shopify"
	packingapp "github.com/Apurer/scanpack-api/internal/domains/packing/application"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port               string
	ShopifyStoreURL    string
	ShopifyAccessToken string
	ShopifyAPIVersion  string
	PackTimezone       string
	LoginUsername      string
	LoginPassword      string
}

// LoadConfig reads environment variables, applies defaults, and validates
// basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:               envDefault("PORT", "8080"),
		ShopifyStoreURL:    strings.TrimSpace(os.Getenv("SHOPIFY_STORE_URL")),
		ShopifyAccessToken: strings.TrimSpace(os.Getenv("SHOPIFY_ACCESS_TOKEN")),
		ShopifyAPIVersion:  envDefault("SHOPIFY_API_VERSION", shopify.DefaultAPIVersion),
		PackTimezone:       envDefault("PACK_TIMEZONE", packingapp.DefaultTimezone),
		LoginUsername:      strings.TrimSpace(os.Getenv("LOGIN_USERNAME")),
		LoginPassword:      os.Getenv("LOGIN_PASSWORD"),
	}
	if _, err := time.LoadLocation(cfg.PackTimezone); err != nil {
		return Config{}, fmt.Errorf("PACK_TIMEZONE %q is not a valid IANA timezone: %w", cfg.PackTimezone, err)
	}
	return cfg, nil
}

// PackLocation resolves the configured packing timezone.
func (c Config) PackLocation() *time.Location {
	location, err := time.LoadLocation(c.PackTimezone)
	if err != nil {
		return time.UTC
	}
	return location
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
