package model

import "github.com/shopspring/decimal"

// Product is a catalog entry from the upstream product endpoint.
type Product struct {
	ID          FlexInt         `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}
