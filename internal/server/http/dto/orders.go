package dto

import "github.com/shopspring/decimal"

// SummaryResponse is one product row of the order listing.
type SummaryResponse struct {
	ProductID     int64           `json:"productId"`
	ProductName   string          `json:"productName"`
	TotalQuantity int64           `json:"totalQuantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// DetailRowResponse is one order line inside an open accordion section.
type DetailRowResponse struct {
	OrderID         int64           `json:"orderId"`
	OrderTime       string          `json:"orderTime"`
	OrderStatus     string          `json:"orderStatus"`
	StatusLabel     string          `json:"statusLabel"`
	ShippingAddress string          `json:"shippingAddress"`
	ShippingCode    string          `json:"shippingCode"`
	Quantity        int64           `json:"quantity"`
	PricePerItem    decimal.Decimal `json:"pricePerItem"`
	SubTotal        decimal.Decimal `json:"subTotal"`
}

// DetailSectionResponse is the accordion state for one product: whether it
// is open, the cache state, and rows or an inline error when present.
type DetailSectionResponse struct {
	ProductID int64               `json:"productId"`
	Open      bool                `json:"open"`
	State     string              `json:"state"`
	Rows      []DetailRowResponse `json:"rows,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// ListingTotalsResponse is the bottom summary card.
type ListingTotalsResponse struct {
	ProductKinds  int             `json:"productKinds"`
	TotalQuantity int64           `json:"totalQuantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// ListingResponse renders the whole order listing view.
type ListingResponse struct {
	Email     string                  `json:"email"`
	Summaries []SummaryResponse       `json:"summaries"`
	Sections  []DetailSectionResponse `json:"sections"`
	Totals    ListingTotalsResponse   `json:"totals"`
	Refreshed bool                    `json:"refreshed"`
}

// OrderItemResponse is one line of an assembled order.
type OrderItemResponse struct {
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	Quantity     int64           `json:"quantity"`
	PricePerItem decimal.Decimal `json:"pricePerItem"`
	SubTotal     decimal.Decimal `json:"subTotal"`
}

// AssembledOrderResponse is the single-order view of the edit page.
type AssembledOrderResponse struct {
	OrderID         int64               `json:"orderId"`
	Email           string              `json:"email"`
	ShippingAddress string              `json:"shippingAddress"`
	ShippingCode    string              `json:"shippingCode"`
	Items           []OrderItemResponse `json:"items"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
}

// UpdateShippingRequest carries the editable shipping fields.
type UpdateShippingRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	ShippingCode    string `json:"shippingCode"`
}
