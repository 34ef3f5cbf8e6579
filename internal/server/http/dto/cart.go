package dto

import "github.com/shopspring/decimal"

// CartAddRequest names the product to put into the cart.
type CartAddRequest struct {
	ProductID int64 `json:"productId"`
}

// CartItemResponse is one cart line.
type CartItemResponse struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

// CartResponse is the rendered cart with its running total.
type CartResponse struct {
	Items       []CartItemResponse `json:"items"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
}

// CheckoutRequest is the checkout form. Field checks beyond presence happen
// in the use case so their messages match the inline form texts.
type CheckoutRequest struct {
	Email           string `json:"email"`
	ShippingAddress string `json:"shippingAddress"`
	ShippingCode    string `json:"shippingCode"`
}

// CheckoutResponse confirms the created order.
type CheckoutResponse struct {
	OrderID     int64           `json:"orderId"`
	Email       string          `json:"email"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
