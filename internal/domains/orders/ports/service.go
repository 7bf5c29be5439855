package ports

import (
	"context"

	orderstypes "github.com/Apurer/scanpack-api/internal/domains/orders/application/types"
)

// Service defines the order lookup use cases exposed to adapters (inbound/driving port).
type Service interface {
	LookupOrder(ctx context.Context, input orderstypes.LookupOrderInput) (*orderstypes.OrderProjection, error)
}
