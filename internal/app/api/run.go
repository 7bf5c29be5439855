// Package api boots and wires the scan-pack HTTP API.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Apurer/scanpack-api/internal/clients/http/shopify"
	authmemory "github.com/Apurer/scanpack-api/internal/domains/auth/adapters/memory"
	authapp "github.com/Apurer/scanpack-api/internal/domains/auth/application"
	ordersmemory "github.com/Apurer/scanpack-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Apurer/scanpack-api/internal/domains/orders/adapters/observability"
	ordersapp "github.com/Apurer/scanpack-api/internal/domains/orders/application"
	ordersports "github.com/Apurer/scanpack-api/internal/domains/orders/ports"
	packingmemory "github.com/Apurer/scanpack-api/internal/domains/packing/adapters/memory"
	packingobs "github.com/Apurer/scanpack-api/internal/domains/packing/adapters/observability"
	packingapp "github.com/Apurer/scanpack-api/internal/domains/packing/application"
	packingports "github.com/Apurer/scanpack-api/internal/domains/packing/ports"
	platformobservability "github.com/Apurer/scanpack-api/internal/platform/observability"
	scanpackserver "github.com/Apurer/scanpack-api/server"
)

// Run boots the scan-pack HTTP API with observability and gateways wired.
func Run(ctx context.Context) error {
	const serviceName = "scanpack-api"
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	commerceGateway, tagGateway := buildCommerceGateways(cfg, logger)

	ordersService := ordersobs.New(
		ordersapp.NewService(commerceGateway),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.domains.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.domains.orders.application")),
	)
	packingService := packingobs.New(
		packingapp.NewService(tagGateway, packingapp.WithLocation(cfg.PackLocation())),
		packingobs.WithLogger(logger),
		packingobs.WithTracer(instruments.Tracer("internal.domains.packing.application")),
		packingobs.WithMeter(instruments.Meter("internal.domains.packing.application")),
	)
	authService := authapp.NewService(
		authapp.Credentials{Username: cfg.LoginUsername, Password: cfg.LoginPassword},
		authmemory.NewSessionStore(),
	)

	handlers := scanpackserver.ApiHandleFunctions{
		OrdersAPI:  scanpackserver.NewOrdersAPI(ordersService),
		PackingAPI: scanpackserver.NewPackingAPI(packingService),
		AuthAPI:    scanpackserver.NewAuthAPI(authService),
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), otelgin.Middleware(serviceName))
	router := scanpackserver.NewRouterWithGinEngine(engine, handlers)
	addr := ":" + cfg.Port
	logger.Info("scan-pack API listening", slog.String("addr", addr), slog.String("timezone", cfg.PackTimezone))
	if err := router.Run(addr); err != nil {
		logger.Error("scan-pack API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildCommerceGateways connects the Shopify Admin API client, falling back to
// empty in-memory gateways when the store is not configured so the API can
// still boot locally.
func buildCommerceGateways(cfg Config, logger *slog.Logger) (ordersports.CommerceGateway, packingports.TagGateway) {
	if cfg.ShopifyStoreURL == "" || cfg.ShopifyAccessToken == "" {
		logger.Warn("SHOPIFY_STORE_URL or SHOPIFY_ACCESS_TOKEN not set, falling back to in-memory commerce gateways")
		return ordersmemory.NewGateway(), packingmemory.NewTagStore()
	}
	client, err := shopify.NewClient(shopify.Config{
		StoreURL:    cfg.ShopifyStoreURL,
		AccessToken: cfg.ShopifyAccessToken,
		APIVersion:  cfg.ShopifyAPIVersion,
	})
	if err != nil {
		logger.Warn("failed to build Shopify client, falling back to in-memory commerce gateways", slog.String("error", err.Error()))
		return ordersmemory.NewGateway(), packingmemory.NewTagStore()
	}
	logger.Info("commerce gateways configured with Shopify Admin API", slog.String("api_version", cfg.ShopifyAPIVersion))
	return client, client
}
