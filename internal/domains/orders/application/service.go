package application

import (
	"context"
	"strings"

	orderstypes "github.com/Apurer/scanpack-api/internal/domains/orders/application/types"
	"github.com/Apurer/scanpack-api/internal/domains/orders/ports"
)

// Service orchestrates the order lookup bounded context use cases.
type Service struct {
	commerce ports.CommerceGateway
}

// NewService wires the order lookup service with its dependencies.
func NewService(commerce ports.CommerceGateway) *Service {
	return &Service{commerce: commerce}
}

// LookupOrder resolves an order from an order number or tracking number and
// enriches its line items with stock, image, and customization data.
func (s *Service) LookupOrder(ctx context.Context, input orderstypes.LookupOrderInput) (*orderstypes.OrderProjection, error) {
	identifier := strings.TrimSpace(input.Identifier)
	if identifier == "" {
		return nil, ErrEmptyIdentifier
	}
	resolved, err := s.resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	// Re-fetch by id so line items and tags reflect the current upstream
	// state rather than the search response.
	order, err := s.commerce.GetOrder(ctx, resolved.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ports.ErrOrderNotFound
	}
	return s.enrich(ctx, order), nil
}

// IsOrderNameIdentifier reports whether the identifier should be treated as an
// order-name search. Identifiers consisting solely of digits or starting with
// '#' are order numbers; everything else is a tracking number.
func IsOrderNameIdentifier(identifier string) bool {
	if strings.HasPrefix(identifier, "#") {
		return true
	}
	if identifier == "" {
		return false
	}
	for _, r := range identifier {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *Service) resolve(ctx context.Context, identifier string) (*ports.Order, error) {
	var search ports.OrderSearch
	nameSearch := IsOrderNameIdentifier(identifier)
	if nameSearch {
		name := identifier
		if !strings.HasPrefix(name, "#") {
			name = "#" + name
		}
		search.Name = name
	}
	orders, err := s.commerce.SearchOrders(ctx, search)
	if err != nil {
		return nil, err
	}
	if nameSearch {
		if len(orders) == 0 {
			return nil, ports.ErrOrderNotFound
		}
		return &orders[0], nil
	}
	// Tracking search: first order with a matching fulfillment wins.
	for i := range orders {
		for _, fulfillment := range orders[i].Fulfillments {
			if fulfillment.TrackingNumber == identifier {
				return &orders[i], nil
			}
		}
	}
	return nil, ports.ErrOrderNotFound
}

// enrich builds the projection line by line. The variant and image caches are
// scoped to this single call; they must never outlive it.
func (s *Service) enrich(ctx context.Context, order *ports.Order) *orderstypes.OrderProjection {
	variantCache := make(map[int64]int64)
	imageCache := make(map[int64]*string)

	items := make([]orderstypes.LineItemProjection, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		if item.Quantity <= 0 {
			continue
		}
		projection := orderstypes.LineItemProjection{
			ProductID:      item.ProductID,
			VariantID:      item.VariantID,
			Title:          item.Title,
			Quantity:       item.Quantity,
			SKU:            item.SKU,
			Size:           item.VariantTitle,
			Price:          item.Price,
			CustomizedName: customizedName(item.Properties),
		}
		if inventoryItemID := s.resolveInventoryItem(ctx, item.VariantID, variantCache); inventoryItemID != 0 {
			// Inventory failures degrade this line to zero/out-of-stock
			// instead of aborting the whole lookup.
			if available, err := s.availableQuantity(ctx, inventoryItemID); err == nil {
				projection.AvailableQuantity = available
				projection.InStock = available > 0
			}
		}
		projection.ProductImage = s.resolveProductImage(ctx, item.ProductID, item.VariantID, imageCache)
		items = append(items, projection)
	}

	return &orderstypes.OrderProjection{
		OrderID:           order.ID,
		OrderName:         order.Name,
		LineItems:         items,
		FulfillmentStatus: order.FulfillmentStatus,
		Tags:              order.Tags,
	}
}

// resolveInventoryItem maps a variant id to its inventory item id through the
// per-call cache. A successful fetch is cached even when the variant carries
// no inventory item; fetch failures are not cached so a later line may retry.
func (s *Service) resolveInventoryItem(ctx context.Context, variantID int64, cache map[int64]int64) int64 {
	if variantID == 0 {
		return 0
	}
	if cached, ok := cache[variantID]; ok {
		return cached
	}
	variant, err := s.commerce.GetVariant(ctx, variantID)
	if err != nil || variant == nil {
		return 0
	}
	cache[variantID] = variant.InventoryItemID
	return variant.InventoryItemID
}

// availableQuantity sums the available count across all locations, treating
// null entries as zero.
func (s *Service) availableQuantity(ctx context.Context, inventoryItemID int64) (int, error) {
	levels, err := s.commerce.ListInventoryLevels(ctx, inventoryItemID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, level := range levels {
		if level.Available != nil {
			total += *level.Available
		}
	}
	return total, nil
}

// resolveProductImage picks a representative image URL for the line item,
// preferring an image tied to its variant and falling back to the product's
// first image. The result is cached per product, including the absent case:
// "no images" and "image fetch failed" are deliberately indistinguishable.
func (s *Service) resolveProductImage(ctx context.Context, productID, variantID int64, cache map[int64]*string) *string {
	if productID == 0 {
		return nil
	}
	if cached, ok := cache[productID]; ok {
		return cached
	}
	var src *string
	if images, err := s.commerce.ListProductImages(ctx, productID); err == nil {
		src = pickImage(images, variantID)
	}
	cache[productID] = src
	return src
}

func pickImage(images []ports.ProductImage, variantID int64) *string {
	for _, image := range images {
		for _, id := range image.VariantIDs {
			if id == variantID {
				src := image.Src
				return &src
			}
		}
	}
	if len(images) > 0 {
		src := images[0].Src
		return &src
	}
	return nil
}

func customizedName(properties []ports.LineItemProperty) string {
	for _, property := range properties {
		if property.Name == "Customized Name" {
			return property.Value
		}
	}
	return ""
}

var _ ports.Service = (*Service)(nil)
