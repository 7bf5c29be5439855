package scanpackserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	packingports "github.com/Apurer/scanpack-api/internal/domains/packing/ports"
)

// PackingAPI wires HTTP transport with the packing service.
type PackingAPI struct {
	service packingports.Service
}

// NewPackingAPI creates a PackingAPI backed by the provided service.
func NewPackingAPI(service packingports.Service) PackingAPI {
	return PackingAPI{service: service}
}

// PackResponse reports the applied daily tag and the merged tag string.
type PackResponse struct {
	Message string `json:"message"`
	Tag     string `json:"tag"`
	Tags    string `json:"tags"`
}

// Post /api/fulfill_order/:orderId
// Mark an order as packed for the day
func (api *PackingAPI) FulfillOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	result, err := api.service.MarkPacked(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, PackResponse{
		Message: "Order tagged successfully",
		Tag:     result.Tag,
		Tags:    result.Tags,
	})
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}
