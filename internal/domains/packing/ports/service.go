package ports

import "context"

// TagGateway is the outbound port for reading and replacing an order's tag
// string on the commerce platform. UpdateOrderTags is a full replace, not a
// partial patch.
type TagGateway interface {
	GetOrderTags(ctx context.Context, orderID int64) (string, error)
	UpdateOrderTags(ctx context.Context, orderID int64, tags string) error
}

// PackResult reports the outcome of marking an order packed.
type PackResult struct {
	// Tag is the daily packing tag that applies to this order.
	Tag string
	// Tags is the full merged tag string written back upstream.
	Tags string
}

// Service defines the packing use cases exposed to adapters (inbound/driving port).
type Service interface {
	MarkPacked(ctx context.Context, orderID int64) (*PackResult, error)
}
