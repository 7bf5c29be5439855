package memory

import (
	"context"
	"sync"

	"github.com/Apurer/scanpack-api/internal/domains/orders/ports"
)

var _ ports.CommerceGateway = (*Gateway)(nil)

// Gateway is an in-memory CommerceGateway for development and tests. It also
// counts calls per method so tests can assert the per-request cache behavior.
type Gateway struct {
	mu       sync.RWMutex
	orders   []ports.Order
	variants map[int64]ports.Variant
	levels   map[int64][]ports.InventoryLevel
	images   map[int64][]ports.ProductImage
	failures map[string]error
	calls    map[string]int
}

// NewGateway constructs an empty in-memory gateway.
func NewGateway() *Gateway {
	return &Gateway{
		variants: map[int64]ports.Variant{},
		levels:   map[int64][]ports.InventoryLevel{},
		images:   map[int64][]ports.ProductImage{},
		failures: map[string]error{},
		calls:    map[string]int{},
	}
}

// SeedOrders replaces the stored order list.
func (g *Gateway) SeedOrders(orders ...ports.Order) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.orders = append([]ports.Order{}, orders...)
}

// SeedVariant registers a variant detail record.
func (g *Gateway) SeedVariant(variant ports.Variant) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.variants[variant.ID] = variant
}

// SeedInventoryLevels registers the inventory levels for an inventory item.
func (g *Gateway) SeedInventoryLevels(inventoryItemID int64, levels ...ports.InventoryLevel) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.levels[inventoryItemID] = append([]ports.InventoryLevel{}, levels...)
}

// SeedProductImages registers the image list for a product.
func (g *Gateway) SeedProductImages(productID int64, images ...ports.ProductImage) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.images[productID] = append([]ports.ProductImage{}, images...)
}

// FailWith makes the named method return the given error on every call.
func (g *Gateway) FailWith(method string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failures[method] = err
}

// Calls reports how many times the named method was invoked.
func (g *Gateway) Calls(method string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.calls[method]
}

// SearchOrders lists all stored orders, filtered by display name when set.
func (g *Gateway) SearchOrders(_ context.Context, search ports.OrderSearch) ([]ports.Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls["SearchOrders"]++
	if err := g.failures["SearchOrders"]; err != nil {
		return nil, err
	}
	if search.Name == "" {
		return append([]ports.Order{}, g.orders...), nil
	}
	var matched []ports.Order
	for _, order := range g.orders {
		if order.Name == search.Name {
			matched = append(matched, order)
		}
	}
	return matched, nil
}

// GetOrder returns the stored order by id.
func (g *Gateway) GetOrder(_ context.Context, id int64) (*ports.Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls["GetOrder"]++
	if err := g.failures["GetOrder"]; err != nil {
		return nil, err
	}
	for i := range g.orders {
		if g.orders[i].ID == id {
			order := g.orders[i]
			return &order, nil
		}
	}
	return nil, ports.ErrOrderNotFound
}

// GetVariant returns the stored variant detail.
func (g *Gateway) GetVariant(_ context.Context, id int64) (*ports.Variant, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls["GetVariant"]++
	if err := g.failures["GetVariant"]; err != nil {
		return nil, err
	}
	variant, ok := g.variants[id]
	if !ok {
		return &ports.Variant{ID: id}, nil
	}
	return &variant, nil
}

// ListInventoryLevels returns the stored levels for one inventory item.
func (g *Gateway) ListInventoryLevels(_ context.Context, inventoryItemID int64) ([]ports.InventoryLevel, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls["ListInventoryLevels"]++
	if err := g.failures["ListInventoryLevels"]; err != nil {
		return nil, err
	}
	return append([]ports.InventoryLevel{}, g.levels[inventoryItemID]...), nil
}

// ListProductImages returns the stored images for one product.
func (g *Gateway) ListProductImages(_ context.Context, productID int64) ([]ports.ProductImage, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls["ListProductImages"]++
	if err := g.failures["ListProductImages"]; err != nil {
		return nil, err
	}
	return append([]ports.ProductImage{}, g.images[productID]...), nil
}
