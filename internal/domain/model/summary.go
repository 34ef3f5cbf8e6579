package model

import "github.com/shopspring/decimal"

// Summary aggregates a customer's orders for a single product. The upstream
// API rebuilds the whole list on every fetch; rows are never patched in place.
type Summary struct {
	ProductID     FlexInt         `json:"productId"`
	ProductName   string          `json:"productName"`
	TotalQuantity FlexInt         `json:"totalQuantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}
