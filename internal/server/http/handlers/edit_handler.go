package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fourline/orderfront/internal/domain/model"
	"github.com/fourline/orderfront/internal/server/http/dto"
)

// EditHandler serves the single-order edit view: the assembled order and
// the shipping mutation.
type EditHandler struct {
	facade OrderFacade
}

// NewEditHandler creates EditHandler instance.
func NewEditHandler(facade OrderFacade) *EditHandler {
	return &EditHandler{facade: facade}
}

// Assembled handles GET /view/orders/:orderId.
func (h *EditHandler) Assembled(c *gin.Context) {
	orderID, ok := paramID(c, "orderId")
	if !ok {
		return
	}

	order, err := h.facade.AssembledOrder(c.Request.Context(), CurrentViewID(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAssembledResponse(order))
}

// UpdateShipping handles PUT /view/orders/:orderId.
func (h *EditHandler) UpdateShipping(c *gin.Context) {
	orderID, ok := paramID(c, "orderId")
	if !ok {
		return
	}

	var req dto.UpdateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	if err := h.facade.UpdateShipping(c.Request.Context(), CurrentViewID(c), orderID, req.ShippingAddress, req.ShippingCode); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toAssembledResponse(order *model.AssembledOrder) dto.AssembledOrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			PricePerItem: item.PricePerItem,
			SubTotal:     item.SubTotal,
		})
	}
	return dto.AssembledOrderResponse{
		OrderID:         order.OrderID,
		Email:           order.Email,
		ShippingAddress: order.ShippingAddress,
		ShippingCode:    order.ShippingCode,
		Items:           items,
		TotalAmount:     order.TotalAmount,
	}
}
