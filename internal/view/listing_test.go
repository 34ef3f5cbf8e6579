package view

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fourline/orderfront/internal/domain/model"
)

func sampleSummaries() []model.Summary {
	return []model.Summary{
		{ProductID: 1, ProductName: "Desk", TotalQuantity: 2, TotalAmount: decimal.NewFromInt(200)},
		{ProductID: 2, ProductName: "Lamp", TotalQuantity: 3, TotalAmount: decimal.RequireFromString("76.50")},
	}
}

func TestListingViewSummariesRoundTrip(t *testing.T) {
	lv := NewListingView()
	if got := lv.Summaries(); len(got) != 0 {
		t.Fatalf("expected empty view, got %d rows", len(got))
	}

	lv.SetSummaries(sampleSummaries())
	got := lv.Summaries()
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}

	// Caller mutation must not reach the view.
	got[0].ProductName = "mutated"
	if lv.Summaries()[0].ProductName != "Desk" {
		t.Fatal("expected stored summaries to be isolated")
	}
}

func TestListingViewTotals(t *testing.T) {
	lv := NewListingView()

	totals := lv.Totals()
	if totals.ProductKinds != 0 || totals.TotalQuantity != 0 || !totals.TotalAmount.Equal(decimal.Zero) {
		t.Fatalf("expected zero totals, got %+v", totals)
	}

	lv.SetSummaries(sampleSummaries())
	totals = lv.Totals()
	if totals.ProductKinds != 2 {
		t.Errorf("expected 2 product kinds, got %d", totals.ProductKinds)
	}
	if totals.TotalQuantity != 5 {
		t.Errorf("expected quantity 5, got %d", totals.TotalQuantity)
	}
	if want := decimal.RequireFromString("276.50"); !totals.TotalAmount.Equal(want) {
		t.Errorf("expected amount %s, got %s", want, totals.TotalAmount)
	}
}

func TestListingViewToggleAndCollapse(t *testing.T) {
	lv := NewListingView()

	if lv.IsOpen(1) {
		t.Fatal("expected sections to start closed")
	}
	if !lv.ToggleOpen(1) {
		t.Fatal("expected first toggle to open")
	}
	if !lv.IsOpen(1) {
		t.Fatal("expected section to be open")
	}
	if lv.ToggleOpen(1) {
		t.Fatal("expected second toggle to close")
	}

	lv.ToggleOpen(2)
	lv.Collapse(2)
	if lv.IsOpen(2) {
		t.Fatal("expected collapse to close the section")
	}
}

func TestListingViewResetKeepsSummaries(t *testing.T) {
	lv := NewListingView()
	lv.SetSummaries(sampleSummaries())
	lv.ToggleOpen(1)
	lv.Cache().BeginLoad(1)
	lv.Cache().Complete(1, []model.Detail{{OrderID: 10}})

	lv.Reset()

	if len(lv.Summaries()) != 2 {
		t.Fatal("expected summaries to survive reset")
	}
	if lv.IsOpen(1) {
		t.Fatal("expected open sections to be cleared")
	}
	if got := lv.Cache().State(1); got != StateUnloaded {
		t.Fatalf("expected cache to be wiped, got %s", got)
	}
}
