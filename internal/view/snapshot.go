package view

import (
	"github.com/shopspring/decimal"

	"github.com/fourline/orderfront/internal/domain/model"
)

// DetailSection is the rendered state of one accordion section.
type DetailSection struct {
	ProductID int64
	Open      bool
	State     CacheState
	Rows      []model.Detail
	Error     string
}

// ListingSnapshot is everything the listing view renders: the summary rows,
// each row's section state, and the recomputed totals card.
type ListingSnapshot struct {
	Email     string
	Summaries []model.Summary
	Sections  []DetailSection
	Totals    Totals
	Refreshed bool
}

// CartSnapshot is the cart as the create view renders it.
type CartSnapshot struct {
	Items       []model.CartItem
	TotalAmount decimal.Decimal
}
