package handlers

import (
	"context"

	"github.com/fourline/orderfront/internal/domain/model"
	"github.com/fourline/orderfront/internal/view"
)

// SessionFacade binds a verified customer email to the view session.
type SessionFacade interface {
	StartSession(ctx context.Context, sessionID, email string) (string, error)
}

// CatalogFacade serves the product catalog.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
}

// CartFacade owns the per-session cart and checkout.
type CartFacade interface {
	CartView(sessionID string) view.CartSnapshot
	CartAdd(ctx context.Context, sessionID string, productID int64) (view.CartSnapshot, error)
	CartIncrement(sessionID string, productID int64) view.CartSnapshot
	CartDecrement(sessionID string, productID int64) view.CartSnapshot
	CartRemove(sessionID string, productID int64) view.CartSnapshot
	Checkout(ctx context.Context, sessionID, email, shippingAddress, shippingCode string) (*model.CreatedOrder, error)
}

// OrderFacade serves the listing, its accordion, and the order mutations.
type OrderFacade interface {
	Listing(ctx context.Context, sessionID string) (*view.ListingSnapshot, error)
	ToggleDetail(ctx context.Context, sessionID string, productID int64) (*view.DetailSection, error)
	AssembledOrder(ctx context.Context, sessionID string, orderID int64) (*model.AssembledOrder, error)
	UpdateShipping(ctx context.Context, sessionID string, orderID int64, shippingAddress, shippingCode string) error
	DeleteOrder(ctx context.Context, sessionID string, productID, orderID int64) (*view.ListingSnapshot, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	SessionFacade
	CatalogFacade
	CartFacade
	OrderFacade
}
