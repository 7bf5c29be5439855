package types

import "github.com/shopspring/decimal"

// LineItemProjection transports one enriched order line for display.
type LineItemProjection struct {
	ProductID int64
	VariantID int64
	Title     string
	Quantity  int
	SKU       string
	// Size is the variant title, e.g. "M" or "42".
	Size  string
	Price decimal.Decimal
	// ProductImage is the representative image URL, nil when the product has
	// no images or the image lookup failed.
	ProductImage      *string
	InStock           bool
	AvailableQuantity int
	CustomizedName    string
}

// OrderProjection is the normalized order view returned to the route layer.
// Line items keep their original order.
type OrderProjection struct {
	OrderID           int64
	OrderName         string
	LineItems         []LineItemProjection
	FulfillmentStatus string
	Tags              string
}
