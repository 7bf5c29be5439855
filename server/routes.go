// Package scanpackserver exposes the scan-pack HTTP API over gin.
package scanpackserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the API sections served by the router.
type ApiHandleFunctions struct {
	OrdersAPI  OrdersAPI
	PackingAPI PackingAPI
	AuthAPI    AuthAPI
}

// NewRouter returns a new gin router with all API routes attached.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine attaches the API routes to an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			Name:        "GetOrder",
			Method:      http.MethodGet,
			Pattern:     "/api/get_order/:orderIdentifier",
			HandlerFunc: handleFunctions.OrdersAPI.GetOrder,
		},
		{
			Name:        "FulfillOrder",
			Method:      http.MethodPost,
			Pattern:     "/api/fulfill_order/:orderId",
			HandlerFunc: handleFunctions.PackingAPI.FulfillOrder,
		},
		{
			Name:        "Login",
			Method:      http.MethodPost,
			Pattern:     "/api/login",
			HandlerFunc: handleFunctions.AuthAPI.Login,
		},
		{
			Name:        "Logout",
			Method:      http.MethodPost,
			Pattern:     "/api/logout",
			HandlerFunc: handleFunctions.AuthAPI.Logout,
		},
	}
}

func defaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}
