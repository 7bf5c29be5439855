package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	ordersmemory "github.com/Apurer/scanpack-api/internal/domains/orders/adapters/memory"
	orderstypes "github.com/Apurer/scanpack-api/internal/domains/orders/application/types"
	"github.com/Apurer/scanpack-api/internal/domains/orders/ports"
)

func intPtr(v int) *int { return &v }

func seedOrder(gateway *ordersmemory.Gateway) ports.Order {
	order := ports.Order{
		ID:                42,
		Name:              "#1001",
		Tags:              "Fragile",
		FulfillmentStatus: "fulfilled",
		LineItems: []ports.LineItem{
			{
				ProductID:    7,
				VariantID:    70,
				Title:        "Hoodie",
				Quantity:     2,
				SKU:          "HD-01",
				VariantTitle: "M",
			},
		},
		Fulfillments: []ports.Fulfillment{{TrackingNumber: "TRACK123"}},
	}
	gateway.SeedOrders(order)
	gateway.SeedVariant(ports.Variant{ID: 70, InventoryItemID: 700})
	gateway.SeedInventoryLevels(700,
		ports.InventoryLevel{InventoryItemID: 700, Available: intPtr(3)},
		ports.InventoryLevel{InventoryItemID: 700, Available: nil},
		ports.InventoryLevel{InventoryItemID: 700, Available: intPtr(2)},
	)
	gateway.SeedProductImages(7, ports.ProductImage{Src: "https://cdn.example/hoodie-m.jpg", VariantIDs: []int64{70}})
	return order
}

func TestIsOrderNameIdentifier(t *testing.T) {
	cases := []struct {
		identifier string
		nameSearch bool
	}{
		{"1001", true},
		{"#1001", true},
		{"#TRACK", true},
		{"TRACK123", false},
		{"1001A", false},
		{"track-9", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.nameSearch, IsOrderNameIdentifier(tc.identifier), tc.identifier)
	}
}

func TestLookupOrder_ByOrderNumber(t *testing.T) {
	gateway := ordersmemory.NewGateway()
	seedOrder(gateway)
	svc := NewService(gateway)

	result, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "1001"})

	require.NoError(t, err)
	require.Equal(t, int64(42), result.OrderID)
	require.Equal(t, "#1001", result.OrderName)
	require.Equal(t, "fulfilled", result.FulfillmentStatus)
	require.Equal(t, "Fragile", result.Tags)
	require.Len(t, result.LineItems, 1)

	item := result.LineItems[0]
	require.Equal(t, "Hoodie", item.Title)
	require.Equal(t, "M", item.Size)
	require.Equal(t, 5, item.AvailableQuantity, "null levels count as zero, 3+2=5")
	require.True(t, item.InStock)
	require.NotNil(t, item.ProductImage)
	require.Equal(t, "https://cdn.example/hoodie-m.jpg", *item.ProductImage)
}

func TestLookupOrder_ByTrackingNumber(t *testing.T) {
	gateway := ordersmemory.NewGateway()
	seedOrder(gateway)
	svc := NewService(gateway)

	result, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "TRACK123"})

	require.NoError(t, err)
	require.Equal(t, int64(42), result.OrderID)
}

func TestLookupOrder_TrackingNumberMismatch(t *testing.T) {
	gateway := ordersmemory.NewGateway()
	seedOrder(gateway)
	svc := NewService(gateway)

	_, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "NOSUCHTRACK"})

	require.ErrorIs(t, err, ports.ErrOrderNotFound)
}

func TestLookupOrder_UnknownOrderNumber(t *testing.T) {
	gateway := ordersmemory.NewGateway()
	seedOrder(gateway)
	svc := NewService(gateway)

	_, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "9999"})

	require.ErrorIs(t, err, ports.ErrOrderNotFound)
}

func TestLookupOrder_EmptyIdentifier(t *testing.T) {
	svc := NewService(ordersmemory.NewGateway())

	_, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "  "})

	require.ErrorIs(t, err, ErrEmptyIdentifier)
}

func TestLookupOrder_RefetchesForFreshState(t *testing.T) {
	gateway := ordersmemory.NewGateway()
	seedOrder(gateway)
	svc := NewService(gateway)

	_, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "1001"})

	require.NoError(t, err)
	require.Equal(t, 1, gateway.Calls("SearchOrders"))
	require.Equal(t, 1, gateway.Calls("GetOrder"), "resolved order is re-fetched by id before enrichment")
}

func TestLookupOrder_CustomizedNameProperty(t *testing.T) {
	gateway := ordersmemory.NewGateway()
	order := seedOrder(gateway)
	order.LineItems[0].Properties = []ports.LineItemProperty{
		{Name: "Gift Wrap", Value: "yes"},
		{Name: "Customized Name", Value: "Alex"},
	}
	gateway.SeedOrders(order)
	svc := NewService(gateway)

	result, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "1001"})

	require.NoError(t, err)
	require.Equal(t, "Alex", result.LineItems[0].CustomizedName)
}

func TestLookupOrder_MissingCustomizedNameDefaultsEmpty(t *testing.T) {
	gateway := ordersmemory.NewGateway()
	seedOrder(gateway)
	svc := NewService(gateway)

	result, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "1001"})

	require.NoError(t, err)
	require.Equal(t, "", result.LineItems[0].CustomizedName)
}

func TestLookupOrder_SkipsZeroQuantityLines(t *testing.T) {
	gateway := ordersmemory.NewGateway()
	order := seedOrder(gateway)
	order.LineItems = append(order.LineItems, ports.LineItem{ProductID: 8, VariantID: 80, Title: "Removed", Quantity: 0})
	gateway.SeedOrders(order)
	svc := NewService(gateway)

	result, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "1001"})

	require.NoError(t, err)
	require.Len(t, result.LineItems, 1)
	require.Equal(t, "Hoodie", result.LineItems[0].Title)
}

func TestLookupOrder_SharedProductFetchedOnce(t *testing.T) {
	gateway := ordersmemory.NewGateway()
	order := seedOrder(gateway)
	order.LineItems = append(order.LineItems, ports.LineItem{
		ProductID: 7, VariantID: 71, Title: "Hoodie", Quantity: 1, VariantTitle: "L",
	})
	gateway.SeedOrders(order)
	gateway.SeedVariant(ports.Variant{ID: 71, InventoryItemID: 710})
	svc := NewService(gateway)

	result, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "1001"})

	require.NoError(t, err)
	require.Len(t, result.LineItems, 2)
	require.Equal(t, 1, gateway.Calls("ListProductImages"), "second line for the same product is served from the cache")
}

func TestLookupOrder_SharedVariantFetchedOnce(t *testing.T) {
	gateway := ordersmemory.NewGateway()
	order := seedOrder(gateway)
	order.LineItems = append(order.LineItems, order.LineItems[0])
	gateway.SeedOrders(order)
	svc := NewService(gateway)

	result, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "1001"})

	require.NoError(t, err)
	require.Len(t, result.LineItems, 2)
	require.Equal(t, 1, gateway.Calls("GetVariant"))
}

func TestLookupOrder_InventoryFailureDegradesLine(t *testing.T) {
	gateway := ordersmemory.NewGateway()
	seedOrder(gateway)
	gateway.FailWith("ListInventoryLevels", errors.New("inventory backend down"))
	svc := NewService(gateway)

	result, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "1001"})

	require.NoError(t, err, "inventory failures must not abort the lookup")
	item := result.LineItems[0]
	require.False(t, item.InStock)
	require.Zero(t, item.AvailableQuantity)
}

func TestLookupOrder_ImageFailureLeavesImageAbsent(t *testing.T) {
	gateway := ordersmemory.NewGateway()
	seedOrder(gateway)
	gateway.FailWith("ListProductImages", errors.New("media backend down"))
	svc := NewService(gateway)

	result, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "1001"})

	require.NoError(t, err)
	// A failed fetch and a product without images both surface as nil.
	require.Nil(t, result.LineItems[0].ProductImage)
	require.Equal(t, 1, gateway.Calls("ListProductImages"), "the absent result is cached, no retry within the call")
}

func TestLookupOrder_FallsBackToFirstProductImage(t *testing.T) {
	gateway := ordersmemory.NewGateway()
	order := seedOrder(gateway)
	gateway.SeedProductImages(7,
		ports.ProductImage{Src: "https://cdn.example/hoodie-main.jpg"},
		ports.ProductImage{Src: "https://cdn.example/hoodie-xl.jpg", VariantIDs: []int64{99}},
	)
	gateway.SeedOrders(order)
	svc := NewService(gateway)

	result, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "1001"})

	require.NoError(t, err)
	require.NotNil(t, result.LineItems[0].ProductImage)
	require.Equal(t, "https://cdn.example/hoodie-main.jpg", *result.LineItems[0].ProductImage)
}

func TestLookupOrder_SearchFailurePropagates(t *testing.T) {
	gateway := ordersmemory.NewGateway()
	seedOrder(gateway)
	upstream := errors.New("commerce API returned status 500")
	gateway.FailWith("SearchOrders", upstream)
	svc := NewService(gateway)

	_, err := svc.LookupOrder(context.Background(), orderstypes.LookupOrderInput{Identifier: "1001"})

	require.ErrorIs(t, err, upstream)
}
