package scanpackserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authports "github.com/Apurer/scanpack-api/internal/domains/auth/ports"
)

// AuthAPI wires HTTP transport with the login service.
type AuthAPI struct {
	service authports.Service
}

// NewAuthAPI creates an AuthAPI backed by the provided service.
func NewAuthAPI(service authports.Service) AuthAPI {
	return AuthAPI{service: service}
}

// LoginRequest carries the operator credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Post /api/login
// Log in with the operator credentials
func (api *AuthAPI) Login(c *gin.Context) {
	var payload LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	token, err := api.service.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Post /api/logout
// Invalidate the current session token
func (api *AuthAPI) Logout(c *gin.Context) {
	api.service.Logout(c.Request.Context(), c.GetHeader("X-Session-Token"))
	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out."})
}
