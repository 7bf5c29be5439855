package scanpackserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authports "github.com/Apurer/scanpack-api/internal/domains/auth/ports"
	ordersapp "github.com/Apurer/scanpack-api/internal/domains/orders/application"
	ordersports "github.com/Apurer/scanpack-api/internal/domains/orders/ports"
	"github.com/Apurer/scanpack-api/internal/shared/commerce"
	apierrors "github.com/Apurer/scanpack-api/internal/shared/errors"
)

// serviceResponder maps domain errors to RFC 7807 responses.
var serviceResponder = apierrors.NewChainedResponder("",
	mapOrderError,
	mapUpstreamError,
	mapAuthError,
)

func respondServiceError(c *gin.Context, err error) {
	serviceResponder.RespondError(c, err)
}

func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	case http.StatusUnauthorized:
		problem = apierrors.ErrUnauthorized.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	apierrors.Respond(c, problem)
}

func mapOrderError(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, ordersports.ErrOrderNotFound) {
		return apierrors.ErrNotFound.WithDetail("Order not found"), true
	}
	if errors.Is(err, ordersapp.ErrEmptyIdentifier) {
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapUpstreamError(err error) (apierrors.ProblemDetail, bool) {
	var upstream *commerce.UpstreamError
	if errors.As(err, &upstream) {
		return apierrors.NewUpstreamProblem(upstream.Status, upstream.Body), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapAuthError(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, authports.ErrInvalidCredentials) {
		return apierrors.ErrUnauthorized.WithDetail("Invalid credentials. Please try again."), true
	}
	return apierrors.ProblemDetail{}, false
}
