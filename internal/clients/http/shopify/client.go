// Package shopify implements the commerce gateway ports against the Shopify
// Admin REST API.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"

	ordersports "github.com/Apurer/scanpack-api/internal/domains/orders/ports"
	packingports "github.com/Apurer/scanpack-api/internal/domains/packing/ports"
	"github.com/Apurer/scanpack-api/internal/shared/commerce"
)

// DefaultAPIVersion pins the Admin REST API version when none is configured.
const DefaultAPIVersion = "2024-07"

const accessTokenHeader = "X-Shopify-Access-Token"

// Config carries the store coordinates and credentials for the Admin API.
type Config struct {
	// StoreURL is the shop domain, e.g. "my-shop.myshopify.com". A scheme may
	// be included; https is assumed otherwise.
	StoreURL string
	// AccessToken is the static Admin API token attached to every call.
	AccessToken string
	// APIVersion selects the Admin API version, DefaultAPIVersion when empty.
	APIVersion string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// Client performs authenticated JSON calls against the Shopify Admin REST API.
// It implements the orders CommerceGateway and packing TagGateway ports.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient instantiates the Shopify client with sane defaults.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	store := strings.TrimRight(strings.TrimSpace(cfg.StoreURL), "/")
	if store == "" {
		return nil, errors.New("shopify store URL is required")
	}
	token := strings.TrimSpace(cfg.AccessToken)
	if token == "" {
		return nil, errors.New("shopify access token is required")
	}
	if !strings.HasPrefix(store, "http://") && !strings.HasPrefix(store, "https://") {
		store = "https://" + store
	}
	version := strings.TrimSpace(cfg.APIVersion)
	if version == "" {
		version = DefaultAPIVersion
	}
	client := &Client{
		baseURL:    fmt.Sprintf("%s/admin/api/%s", store, version),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

type orderSearchOptions struct {
	Status string `url:"status"`
	Name   string `url:"name,omitempty"`
}

type orderFieldsOptions struct {
	Fields string `url:"fields"`
}

type inventoryLevelsOptions struct {
	InventoryItemIDs int64 `url:"inventory_item_ids"`
}

// SearchOrders lists orders across all statuses, filtered server-side by
// display name when set.
func (c *Client) SearchOrders(ctx context.Context, search ordersports.OrderSearch) ([]ordersports.Order, error) {
	values, err := query.Values(orderSearchOptions{Status: "any", Name: search.Name})
	if err != nil {
		return nil, fmt.Errorf("encode order search: %w", err)
	}
	var envelope struct {
		Orders []ordersports.Order `json:"orders"`
	}
	if err := c.get(ctx, "/orders.json", values, &envelope); err != nil {
		return nil, err
	}
	return envelope.Orders, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, id int64) (*ordersports.Order, error) {
	var envelope struct {
		Order *ordersports.Order `json:"order"`
	}
	if err := c.get(ctx, fmt.Sprintf("/orders/%d.json", id), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Order, nil
}

// GetVariant fetches one variant detail record.
func (c *Client) GetVariant(ctx context.Context, id int64) (*ordersports.Variant, error) {
	var envelope struct {
		Variant *ordersports.Variant `json:"variant"`
	}
	if err := c.get(ctx, fmt.Sprintf("/variants/%d.json", id), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Variant, nil
}

// ListInventoryLevels fetches the per-location levels for one inventory item.
func (c *Client) ListInventoryLevels(ctx context.Context, inventoryItemID int64) ([]ordersports.InventoryLevel, error) {
	values, err := query.Values(inventoryLevelsOptions{InventoryItemIDs: inventoryItemID})
	if err != nil {
		return nil, fmt.Errorf("encode inventory query: %w", err)
	}
	var envelope struct {
		InventoryLevels []ordersports.InventoryLevel `json:"inventory_levels"`
	}
	if err := c.get(ctx, "/inventory_levels.json", values, &envelope); err != nil {
		return nil, err
	}
	return envelope.InventoryLevels, nil
}

// ListProductImages fetches only the image list of one product.
func (c *Client) ListProductImages(ctx context.Context, productID int64) ([]ordersports.ProductImage, error) {
	values, err := query.Values(orderFieldsOptions{Fields: "images"})
	if err != nil {
		return nil, fmt.Errorf("encode product query: %w", err)
	}
	var envelope struct {
		Product *struct {
			Images []ordersports.ProductImage `json:"images"`
		} `json:"product"`
	}
	if err := c.get(ctx, fmt.Sprintf("/products/%d.json", productID), values, &envelope); err != nil {
		return nil, err
	}
	if envelope.Product == nil {
		return nil, nil
	}
	return envelope.Product.Images, nil
}

// GetOrderTags fetches only the tag string of one order.
func (c *Client) GetOrderTags(ctx context.Context, orderID int64) (string, error) {
	values, err := query.Values(orderFieldsOptions{Fields: "tags"})
	if err != nil {
		return "", fmt.Errorf("encode order query: %w", err)
	}
	var envelope struct {
		Order *struct {
			Tags string `json:"tags"`
		} `json:"order"`
	}
	if err := c.get(ctx, fmt.Sprintf("/orders/%d.json", orderID), values, &envelope); err != nil {
		return "", err
	}
	if envelope.Order == nil {
		return "", nil
	}
	return envelope.Order.Tags, nil
}

// UpdateOrderTags replaces the order's tag string upstream.
func (c *Client) UpdateOrderTags(ctx context.Context, orderID int64, tags string) error {
	payload := map[string]any{
		"order": map[string]any{
			"id":   orderID,
			"tags": tags,
		},
	}
	return c.put(ctx, fmt.Sprintf("/orders/%d.json", orderID), payload, nil)
}

func (c *Client) get(ctx context.Context, path string, values url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, values, nil, out)
}

func (c *Client) put(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, values url.Values, body []byte, out any) error {
	target := c.baseURL + path
	if len(values) > 0 {
		target += "?" + values.Encode()
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(accessTokenHeader, c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call commerce API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &commerce.UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

var (
	_ ordersports.CommerceGateway = (*Client)(nil)
	_ packingports.TagGateway     = (*Client)(nil)
)
