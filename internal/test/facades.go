package test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fourline/orderfront/internal/domain/model"
	"github.com/fourline/orderfront/internal/view"
)

// SessionFacadeStub provides controllable behaviour for the session endpoint.
type SessionFacadeStub struct {
	StartFn func(context.Context, string, string) (string, error)
}

// StartSession delegates to provided function or echoes the email back.
func (s SessionFacadeStub) StartSession(ctx context.Context, sessionID, email string) (string, error) {
	if s.StartFn != nil {
		return s.StartFn(ctx, sessionID, email)
	}
	return email, nil
}

// CatalogFacadeStub serves canned products.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context) ([]model.Product, error)
}

// Products returns configured catalog or a single default product.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Keyboard", Price: decimal.NewFromInt(50)}}, nil
}

// CartFacadeStub simulates cart operations.
type CartFacadeStub struct {
	ViewFn      func(string) view.CartSnapshot
	AddFn       func(context.Context, string, int64) (view.CartSnapshot, error)
	IncrementFn func(string, int64) view.CartSnapshot
	DecrementFn func(string, int64) view.CartSnapshot
	RemoveFn    func(string, int64) view.CartSnapshot
	CheckoutFn  func(context.Context, string, string, string, string) (*model.CreatedOrder, error)
}

// CartView returns the configured snapshot or an empty cart.
func (s CartFacadeStub) CartView(sessionID string) view.CartSnapshot {
	if s.ViewFn != nil {
		return s.ViewFn(sessionID)
	}
	return view.CartSnapshot{TotalAmount: decimal.Zero}
}

// CartAdd delegates or reports a one-item cart.
func (s CartFacadeStub) CartAdd(ctx context.Context, sessionID string, productID int64) (view.CartSnapshot, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, sessionID, productID)
	}
	return view.CartSnapshot{
		Items:       []model.CartItem{{ProductID: productID, Quantity: 1}},
		TotalAmount: decimal.Zero,
	}, nil
}

// CartIncrement delegates or returns an empty snapshot.
func (s CartFacadeStub) CartIncrement(sessionID string, productID int64) view.CartSnapshot {
	if s.IncrementFn != nil {
		return s.IncrementFn(sessionID, productID)
	}
	return view.CartSnapshot{TotalAmount: decimal.Zero}
}

// CartDecrement delegates or returns an empty snapshot.
func (s CartFacadeStub) CartDecrement(sessionID string, productID int64) view.CartSnapshot {
	if s.DecrementFn != nil {
		return s.DecrementFn(sessionID, productID)
	}
	return view.CartSnapshot{TotalAmount: decimal.Zero}
}

// CartRemove delegates or returns an empty snapshot.
func (s CartFacadeStub) CartRemove(sessionID string, productID int64) view.CartSnapshot {
	if s.RemoveFn != nil {
		return s.RemoveFn(sessionID, productID)
	}
	return view.CartSnapshot{TotalAmount: decimal.Zero}
}

// Checkout delegates or confirms a default created order.
func (s CartFacadeStub) Checkout(ctx context.Context, sessionID, email, shippingAddress, shippingCode string) (*model.CreatedOrder, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, sessionID, email, shippingAddress, shippingCode)
	}
	return &model.CreatedOrder{ID: 1, Email: email, ShippingAddress: shippingAddress, ShippingCode: shippingCode, TotalAmount: decimal.NewFromInt(100)}, nil
}

// OrderFacadeStub simulates listing and order mutations.
type OrderFacadeStub struct {
	ListingFn        func(context.Context, string) (*view.ListingSnapshot, error)
	ToggleFn         func(context.Context, string, int64) (*view.DetailSection, error)
	AssembledFn      func(context.Context, string, int64) (*model.AssembledOrder, error)
	UpdateShippingFn func(context.Context, string, int64, string, string) error
	DeleteFn         func(context.Context, string, int64, int64) (*view.ListingSnapshot, error)
}

// Listing delegates or serves a single-row snapshot.
func (s OrderFacadeStub) Listing(ctx context.Context, sessionID string) (*view.ListingSnapshot, error) {
	if s.ListingFn != nil {
		return s.ListingFn(ctx, sessionID)
	}
	return &view.ListingSnapshot{
		Email:     "customer@example.com",
		Summaries: []model.Summary{{ProductID: 1, ProductName: "Keyboard", TotalQuantity: 2, TotalAmount: decimal.NewFromInt(100)}},
		Sections:  []view.DetailSection{{ProductID: 1, State: view.StateUnloaded}},
		Totals:    view.Totals{ProductKinds: 1, TotalQuantity: 2, TotalAmount: decimal.NewFromInt(100)},
	}, nil
}

// ToggleDetail delegates or opens an empty loaded section.
func (s OrderFacadeStub) ToggleDetail(ctx context.Context, sessionID string, productID int64) (*view.DetailSection, error) {
	if s.ToggleFn != nil {
		return s.ToggleFn(ctx, sessionID, productID)
	}
	return &view.DetailSection{ProductID: productID, Open: true, State: view.StateLoaded}, nil
}

// AssembledOrder delegates or returns a minimal assembled order.
func (s OrderFacadeStub) AssembledOrder(ctx context.Context, sessionID string, orderID int64) (*model.AssembledOrder, error) {
	if s.AssembledFn != nil {
		return s.AssembledFn(ctx, sessionID, orderID)
	}
	return &model.AssembledOrder{OrderID: orderID, Email: "customer@example.com", TotalAmount: decimal.Zero}, nil
}

// UpdateShipping delegates or accepts the mutation.
func (s OrderFacadeStub) UpdateShipping(ctx context.Context, sessionID string, orderID int64, shippingAddress, shippingCode string) error {
	if s.UpdateShippingFn != nil {
		return s.UpdateShippingFn(ctx, sessionID, orderID, shippingAddress, shippingCode)
	}
	return nil
}

// DeleteOrder delegates or returns an emptied listing.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, sessionID string, productID, orderID int64) (*view.ListingSnapshot, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, sessionID, productID, orderID)
	}
	return &view.ListingSnapshot{Email: "customer@example.com", Totals: view.Totals{TotalAmount: decimal.Zero}}, nil
}

// FacadeStub aggregates the per-concern stubs into the full facade surface.
type FacadeStub struct {
	SessionFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	OrderFacadeStub
}
