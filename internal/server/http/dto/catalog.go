package dto

import "github.com/shopspring/decimal"

// ProductResponse is one catalog entry of the create view.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}
