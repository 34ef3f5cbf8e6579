package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fourline/orderfront/internal/server/http/dto"
	"github.com/fourline/orderfront/internal/view"
)

// CartHandler manages the per-session cart and checkout.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler creates CartHandler instance.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// View handles GET /view/cart.
func (h *CartHandler) View(c *gin.Context) {
	c.JSON(http.StatusOK, toCartResponse(h.facade.CartView(CurrentViewID(c))))
}

// Add handles POST /view/cart/items.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid productId"})
		return
	}

	cart, err := h.facade.CartAdd(c.Request.Context(), CurrentViewID(c), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCartResponse(cart))
}

// Increment handles POST /view/cart/items/:productId/increment.
func (h *CartHandler) Increment(c *gin.Context) {
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toCartResponse(h.facade.CartIncrement(CurrentViewID(c), productID)))
}

// Decrement handles POST /view/cart/items/:productId/decrement.
func (h *CartHandler) Decrement(c *gin.Context) {
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toCartResponse(h.facade.CartDecrement(CurrentViewID(c), productID)))
}

// Remove handles DELETE /view/cart/items/:productId.
func (h *CartHandler) Remove(c *gin.Context) {
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toCartResponse(h.facade.CartRemove(CurrentViewID(c), productID)))
}

// Checkout handles POST /view/checkout.
func (h *CartHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	order, err := h.facade.Checkout(c.Request.Context(), CurrentViewID(c), req.Email, req.ShippingAddress, req.ShippingCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		OrderID:     int64(order.ID),
		Email:       order.Email,
		TotalAmount: order.TotalAmount,
	})
}

func toCartResponse(cart view.CartSnapshot) dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, dto.CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return dto.CartResponse{Items: items, TotalAmount: cart.TotalAmount}
}
