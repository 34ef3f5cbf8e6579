package view

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fourline/orderfront/internal/domain/model"
)

// Totals is the bottom-card aggregate of the listing view, recomputed from
// the summary rows on every render.
type Totals struct {
	ProductKinds  int
	TotalQuantity int64
	TotalAmount   decimal.Decimal
}

// ListingView is the state one customer's order listing holds between
// requests: the last fetched summary rows, the detail cache, and which
// accordion sections are open. Visibility is independent of cache state; a
// collapsed product keeps its cache warm.
type ListingView struct {
	mu        sync.Mutex
	summaries []model.Summary
	cache     *DetailCache
	open      map[int64]bool
}

// NewListingView creates an empty view with a cold cache.
func NewListingView() *ListingView {
	return &ListingView{
		cache: NewDetailCache(),
		open:  make(map[int64]bool),
	}
}

// SetSummaries replaces the summary rows wholesale.
func (v *ListingView) SetSummaries(summaries []model.Summary) {
	v.mu.Lock()
	defer v.mu.Unlock()

	copied := make([]model.Summary, len(summaries))
	copy(copied, summaries)
	v.summaries = copied
}

// Summaries returns a copy of the current summary rows.
func (v *ListingView) Summaries() []model.Summary {
	v.mu.Lock()
	defer v.mu.Unlock()

	copied := make([]model.Summary, len(v.summaries))
	copy(copied, v.summaries)
	return copied
}

// Totals recomputes the aggregate card from the summary rows.
func (v *ListingView) Totals() Totals {
	v.mu.Lock()
	defer v.mu.Unlock()

	totals := Totals{ProductKinds: len(v.summaries), TotalAmount: decimal.Zero}
	for _, s := range v.summaries {
		totals.TotalQuantity += int64(s.TotalQuantity)
		totals.TotalAmount = totals.TotalAmount.Add(s.TotalAmount)
	}
	return totals
}

// Cache exposes the detail cache of this view.
func (v *ListingView) Cache() *DetailCache {
	return v.cache
}

// ToggleOpen flips the visibility of a product section and reports whether
// it is now open.
func (v *ListingView) ToggleOpen(productID int64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.open[productID] = !v.open[productID]
	return v.open[productID]
}

// IsOpen reports the visibility of a product section.
func (v *ListingView) IsOpen(productID int64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.open[productID]
}

// Collapse closes a product section if it was open.
func (v *ListingView) Collapse(productID int64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.open, productID)
}

// Reset clears cached details and visibility ahead of a full rebuild. The
// summary rows stay until the next SetSummaries so a failed refetch does not
// blank the page.
func (v *ListingView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.cache.InvalidateAll()
	v.open = make(map[int64]bool)
}
