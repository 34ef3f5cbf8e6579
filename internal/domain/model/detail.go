package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is assigned by the upstream server; the client never drives
// transitions.
type OrderStatus string

const (
	OrderStatusOrdered   OrderStatus = "ORDERED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusOrdered:   "Order received",
	OrderStatusPaid:      "Payment complete",
	OrderStatusPreparing: "Preparing items",
	OrderStatusShipping:  "Out for delivery",
	OrderStatusDelivered: "Delivered",
	OrderStatusCanceled:  "Canceled",
}

// Label returns a human-readable status caption, falling back to the raw
// value for statuses this build does not know.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Detail is one order-line record for a given product, as returned by the
// per-product detail endpoint.
type Detail struct {
	OrderID         FlexInt         `json:"orderId"`
	OrderTime       string          `json:"orderTime"`
	OrderStatus     OrderStatus     `json:"orderStatus"`
	ShippingAddress string          `json:"shippingAddress"`
	ShippingCode    string          `json:"shippingCode"`
	Quantity        FlexInt         `json:"quantity"`
	PricePerItem    decimal.Decimal `json:"pricePerItem"`
	SubTotal        decimal.Decimal `json:"subTotal"`
}

var orderTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// FormatOrderTime renders an upstream timestamp as "2006-01-02 15:04".
// Values that fit none of the known layouts pass through untouched.
func FormatOrderTime(raw string) string {
	for _, layout := range orderTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	}
	return raw
}
