package ports

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrOrderNotFound signals that no order matched the supplied identifier.
var ErrOrderNotFound = errors.New("order not found")

// Order mirrors the commerce platform's order payload. Orders are owned by the
// upstream system and reconstructed fresh on every call.
type Order struct {
	ID                int64         `json:"id"`
	Name              string        `json:"name"`
	Tags              string        `json:"tags"`
	FulfillmentStatus string        `json:"fulfillment_status"`
	LineItems         []LineItem    `json:"line_items"`
	Fulfillments      []Fulfillment `json:"fulfillments"`
}

// LineItem is one product/variant/quantity entry within an order.
type LineItem struct {
	ProductID    int64              `json:"product_id"`
	VariantID    int64              `json:"variant_id"`
	Title        string             `json:"title"`
	Quantity     int                `json:"quantity"`
	SKU          string             `json:"sku"`
	VariantTitle string             `json:"variant_title"`
	Price        decimal.Decimal    `json:"price"`
	Properties   []LineItemProperty `json:"properties"`
}

// LineItemProperty is a free-form name/value pair attached to a line item.
type LineItemProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Fulfillment is a shipment record attached to an order.
type Fulfillment struct {
	TrackingNumber string `json:"tracking_number"`
}

// Variant links a purchasable configuration to its stock-tracking unit.
type Variant struct {
	ID              int64 `json:"id"`
	InventoryItemID int64 `json:"inventory_item_id"`
}

// InventoryLevel is the per-location available quantity for an inventory item.
// Available is nullable upstream; nil contributes zero to the total.
type InventoryLevel struct {
	InventoryItemID int64 `json:"inventory_item_id"`
	Available       *int  `json:"available"`
}

// ProductImage is a product media entry with the variant ids it represents.
type ProductImage struct {
	Src        string  `json:"src"`
	VariantIDs []int64 `json:"variant_ids"`
}

// OrderSearch narrows an order listing. The gateway always searches across all
// order statuses; Name filters server-side by display number when set.
type OrderSearch struct {
	Name string
}

// CommerceGateway is the outbound port to the commerce platform consumed by
// the order lookup flow.
type CommerceGateway interface {
	SearchOrders(ctx context.Context, search OrderSearch) ([]Order, error)
	GetOrder(ctx context.Context, id int64) (*Order, error)
	GetVariant(ctx context.Context, id int64) (*Variant, error)
	ListInventoryLevels(ctx context.Context, inventoryItemID int64) ([]InventoryLevel, error)
	ListProductImages(ctx context.Context, productID int64) ([]ProductImage, error)
}
