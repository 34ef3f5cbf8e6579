package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fourline/orderfront/internal/adapter/storeapi"
	domainErrors "github.com/fourline/orderfront/internal/domain/errors"
	"github.com/fourline/orderfront/internal/server/http/dto"
	"github.com/fourline/orderfront/internal/server/http/middleware"
)

// CurrentViewID extracts the view session identifier from context.
func CurrentViewID(c *gin.Context) string {
	val, ok := c.Get(middleware.ViewIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// respondError maps a flow error onto the wire, keeping page-fatal failures
// (fatal=true, with a navigation hint) apart from form-local and transport
// ones.
func respondError(c *gin.Context, err error) {
	var validationErr *domainErrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: validationErr.Message})
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrMissingIdentity):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "no email on file; enter one on the order search view",
			Fatal: true,
			Hint:  "/view/session",
		})
	case errors.Is(err, domainErrors.ErrNoOrderHistory):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "no order history for this email",
			Fatal: true,
			Hint:  "/view/session",
		})
	case errors.Is(err, domainErrors.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "order not found; open it from the order listing",
			Fatal: true,
			Hint:  "/view/orders",
		})
	case errors.Is(err, domainErrors.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domainErrors.ErrCustomerNotFound.Error()})
	case errors.Is(err, domainErrors.ErrProductNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domainErrors.ErrProductNotFound.Error()})
	case errors.Is(err, domainErrors.ErrEmptyCart):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "add at least one item to the cart"})
	case errors.Is(err, storeapi.ErrParseResponse):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "response parse failed"})
	default:
		var apiErr *storeapi.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: apiErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}
