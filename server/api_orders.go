package scanpackserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	orderstypes "github.com/Apurer/scanpack-api/internal/domains/orders/application/types"
	ordersports "github.com/Apurer/scanpack-api/internal/domains/orders/ports"
)

// OrdersAPI wires HTTP transport with the order lookup service.
type OrdersAPI struct {
	service ordersports.Service
}

// NewOrdersAPI creates an OrdersAPI backed by the provided service.
func NewOrdersAPI(service ordersports.Service) OrdersAPI {
	return OrdersAPI{service: service}
}

// LineItem is the transport shape of one enriched order line.
type LineItem struct {
	ProductID         int64           `json:"product_id"`
	VariantID         int64           `json:"variant_id"`
	Title             string          `json:"title"`
	Quantity          int             `json:"quantity"`
	SKU               string          `json:"sku"`
	Size              string          `json:"size"`
	Price             decimal.Decimal `json:"price"`
	ProductImage      *string         `json:"product_image"`
	InStock           bool            `json:"in_stock"`
	AvailableQuantity int             `json:"available_quantity"`
	CustomizedName    string          `json:"customized_name"`
}

// OrderResponse is the transport shape of a resolved order.
type OrderResponse struct {
	OrderID           int64      `json:"order_id"`
	OrderName         string     `json:"order_name"`
	LineItems         []LineItem `json:"line_items"`
	FulfillmentStatus string     `json:"fulfillment_status"`
	Tags              string     `json:"tags"`
}

func fromOrderProjection(projection *orderstypes.OrderProjection) OrderResponse {
	items := make([]LineItem, 0, len(projection.LineItems))
	for _, item := range projection.LineItems {
		items = append(items, LineItem{
			ProductID:         item.ProductID,
			VariantID:         item.VariantID,
			Title:             item.Title,
			Quantity:          item.Quantity,
			SKU:               item.SKU,
			Size:              item.Size,
			Price:             item.Price,
			ProductImage:      item.ProductImage,
			InStock:           item.InStock,
			AvailableQuantity: item.AvailableQuantity,
			CustomizedName:    item.CustomizedName,
		})
	}
	return OrderResponse{
		OrderID:           projection.OrderID,
		OrderName:         projection.OrderName,
		LineItems:         items,
		FulfillmentStatus: projection.FulfillmentStatus,
		Tags:              projection.Tags,
	}
}

// Get /api/get_order/:orderIdentifier
// Look up an order by order number or tracking number
func (api *OrdersAPI) GetOrder(c *gin.Context) {
	identifier := c.Param("orderIdentifier")
	projection, err := api.service.LookupOrder(c.Request.Context(), orderstypes.LookupOrderInput{Identifier: identifier})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromOrderProjection(projection))
}
