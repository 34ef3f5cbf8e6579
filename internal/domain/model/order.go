package model

import "github.com/shopspring/decimal"

// OrderItem is one product line inside an assembled order view.
type OrderItem struct {
	ProductID    int64
	ProductName  string
	Quantity     int64
	PricePerItem decimal.Decimal
	SubTotal     decimal.Decimal
}

// AssembledOrder is a client-synthesized single-order view. No upstream
// endpoint returns it directly; it is joined from the summary list and the
// per-product detail lists.
type AssembledOrder struct {
	OrderID         int64
	Email           string
	ShippingAddress string
	ShippingCode    string
	Items           []OrderItem
	// TotalAmount is recomputed from item subtotals, never trusted from the
	// server for this aggregate.
	TotalAmount decimal.Decimal
}

// CreatedOrder mirrors the relevant part of the upstream order creation
// response.
type CreatedOrder struct {
	ID              FlexInt         `json:"id"`
	Email           string          `json:"email"`
	ShippingAddress string          `json:"shippingAddress"`
	ShippingCode    string          `json:"shippingCode"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
}

// OrderLine is one entry of an order creation request.
type OrderLine struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}
