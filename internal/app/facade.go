package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fourline/orderfront/internal/adapter/storeapi"
	domainErrors "github.com/fourline/orderfront/internal/domain/errors"
	"github.com/fourline/orderfront/internal/domain/model"
	"github.com/fourline/orderfront/internal/session"
	"github.com/fourline/orderfront/internal/usecase"
	"github.com/fourline/orderfront/internal/view"
)

// StorefrontFacade aggregates the order-view flows: session identity,
// listing with its detail cache, order assembly, the shipping mutations,
// and the cart. Handlers call only this.
type StorefrontFacade struct {
	client   storeapi.Client
	sessions session.Store
	views    *view.Registry
	assemble *usecase.AssembleUseCase
	checkout *usecase.CheckoutUseCase
	logger   *slog.Logger
}

// NewStorefrontFacade constructs the facade.
func NewStorefrontFacade(
	client storeapi.Client,
	sessions session.Store,
	views *view.Registry,
	assemble *usecase.AssembleUseCase,
	checkout *usecase.CheckoutUseCase,
	logger *slog.Logger,
) *StorefrontFacade {
	return &StorefrontFacade{
		client:   client,
		sessions: sessions,
		views:    views,
		assemble: assemble,
		checkout: checkout,
		logger:   logger,
	}
}

// StartSession verifies the email against the customer registry and binds it
// to the view session. Any view state built for a previous identity is
// dropped.
func (f *StorefrontFacade) StartSession(ctx context.Context, sessionID, email string) (string, error) {
	trimmed, err := usecase.ValidateEmail(email)
	if err != nil {
		return "", err
	}

	exists, err := f.client.CustomerExists(ctx, trimmed)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domainErrors.ErrCustomerNotFound
	}

	if err := f.sessions.SetEmail(ctx, sessionID, trimmed); err != nil {
		return "", fmt.Errorf("bind session email: %w", err)
	}
	f.views.Drop(sessionID)
	return trimmed, nil
}

func (f *StorefrontFacade) email(ctx context.Context, sessionID string) (string, error) {
	email, err := f.sessions.Email(ctx, sessionID)
	if err != nil {
		return "", domainErrors.ErrMissingIdentity
	}
	return email, nil
}

// Listing mounts the order listing: it consumes a pending refresh signal
// (wiping the cached detail state wholesale when one is set), then fetches a
// fresh summary list.
func (f *StorefrontFacade) Listing(ctx context.Context, sessionID string) (*view.ListingSnapshot, error) {
	email, err := f.email(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lv := f.views.Listing(sessionID)

	refreshed, err := f.sessions.ConsumeRefresh(ctx, sessionID)
	if err != nil {
		f.logger.Error("consume refresh flag failed", slog.String("error", err.Error()))
		refreshed = false
	}
	if refreshed {
		lv.Reset()
	}

	summaries, err := f.client.Summaries(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("load order summaries: %w", err)
	}
	lv.SetSummaries(summaries)

	return f.snapshot(lv, email, refreshed), nil
}

// ToggleDetail flips one accordion section. Opening an Unloaded section
// fetches its rows; Loaded and Loading sections open without a fetch. An
// Errored section is explicitly invalidated and retried on reopen.
func (f *StorefrontFacade) ToggleDetail(ctx context.Context, sessionID string, productID int64) (*view.DetailSection, error) {
	email, err := f.email(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lv := f.views.Listing(sessionID)
	cache := lv.Cache()

	if open := lv.ToggleOpen(productID); !open {
		section := f.section(lv, productID)
		return &section, nil
	}

	switch cache.State(productID) {
	case view.StateLoaded, view.StateLoading:
		// Warm or already in flight; never duplicate the request.
	case view.StateErrored:
		cache.Invalidate(productID)
		f.loadDetails(ctx, cache, productID, email)
	default:
		f.loadDetails(ctx, cache, productID, email)
	}

	section := f.section(lv, productID)
	return &section, nil
}

func (f *StorefrontFacade) loadDetails(ctx context.Context, cache *view.DetailCache, productID int64, email string) {
	if !cache.BeginLoad(productID) {
		return
	}
	rows, err := f.client.Details(ctx, productID, email)
	if err != nil {
		cache.Fail(productID, err.Error())
		return
	}
	cache.Complete(productID, rows)
}

// AssembledOrder joins summary and detail lists into the single-order view
// used by the edit page.
func (f *StorefrontFacade) AssembledOrder(ctx context.Context, sessionID string, orderID int64) (*model.AssembledOrder, error) {
	email, err := f.email(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return f.assemble.Assemble(ctx, email, orderID)
}

// UpdateShipping edits an order's shipping fields. On success the listing is
// not patched directly: the edit can affect rows in several cached products
// at once and the listing view may not be mounted, so a refresh flag is left
// for its next mount instead.
func (f *StorefrontFacade) UpdateShipping(ctx context.Context, sessionID string, orderID int64, address, code string) error {
	in, err := usecase.ValidateShipping(address, code)
	if err != nil {
		return err
	}

	if err := f.client.UpdateOrder(ctx, orderID, storeapi.UpdateOrderRequest{
		ShippingAddress: in.ShippingAddress,
		ShippingCode:    in.ShippingCode,
	}); err != nil {
		return err
	}

	if err := f.sessions.MarkRefresh(ctx, sessionID); err != nil {
		f.logger.Error("mark refresh flag failed", slog.String("error", err.Error()))
	}
	return nil
}

// DeleteOrder removes one order row. On upstream success the row disappears
// from the product's cached details immediately, then the summary list is
// refetched since aggregate totals must come from the server. A product
// whose last row was deleted loses its cache entry and collapses rather
// than lingering as an empty section. On upstream failure nothing local
// changes.
func (f *StorefrontFacade) DeleteOrder(ctx context.Context, sessionID string, productID, orderID int64) (*view.ListingSnapshot, error) {
	email, err := f.email(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := f.client.DeleteOrder(ctx, orderID); err != nil {
		return nil, err
	}

	lv := f.views.Listing(sessionID)
	cache := lv.Cache()
	if remaining := cache.RemoveRow(productID, orderID); remaining == 0 {
		// Local consequences of the confirmed delete do not wait for the
		// summary refetch: an emptied section collapses, never lingering
		// as a loaded empty list.
		cache.Invalidate(productID)
		lv.Collapse(productID)
	}

	summaries, err := f.client.Summaries(ctx, email)
	if err != nil {
		// The delete already happened; only the refresh failed. Local row
		// removal stands, the stale aggregate is reported.
		return nil, fmt.Errorf("refresh summaries after delete: %w", err)
	}
	lv.SetSummaries(summaries)

	return f.snapshot(lv, email, false), nil
}

// Products fetches the catalog for the create view.
func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.client.Products(ctx)
}

// CartView renders the session's cart.
func (f *StorefrontFacade) CartView(sessionID string) view.CartSnapshot {
	var snapshot view.CartSnapshot
	f.views.WithCart(sessionID, func(cart *model.Cart) {
		snapshot = view.CartSnapshot{Items: cart.Items(), TotalAmount: cart.Total()}
	})
	return snapshot
}

// CartAdd puts one unit of a catalog product into the cart.
func (f *StorefrontFacade) CartAdd(ctx context.Context, sessionID string, productID int64) (view.CartSnapshot, error) {
	products, err := f.client.Products(ctx)
	if err != nil {
		return view.CartSnapshot{}, err
	}
	var found *model.Product
	for i := range products {
		if int64(products[i].ID) == productID {
			found = &products[i]
			break
		}
	}
	if found == nil {
		return view.CartSnapshot{}, domainErrors.ErrProductNotFound
	}
	f.views.WithCart(sessionID, func(cart *model.Cart) {
		cart.Add(*found)
	})
	return f.CartView(sessionID), nil
}

// CartIncrement bumps a cart line's quantity.
func (f *StorefrontFacade) CartIncrement(sessionID string, productID int64) view.CartSnapshot {
	f.views.WithCart(sessionID, func(cart *model.Cart) {
		cart.Increment(productID)
	})
	return f.CartView(sessionID)
}

// CartDecrement lowers a cart line's quantity, removing the line at zero.
func (f *StorefrontFacade) CartDecrement(sessionID string, productID int64) view.CartSnapshot {
	f.views.WithCart(sessionID, func(cart *model.Cart) {
		cart.Decrement(productID)
	})
	return f.CartView(sessionID)
}

// CartRemove drops a cart line.
func (f *StorefrontFacade) CartRemove(sessionID string, productID int64) view.CartSnapshot {
	f.views.WithCart(sessionID, func(cart *model.Cart) {
		cart.Remove(productID)
	})
	return f.CartView(sessionID)
}

// Checkout places the cart as an order. The cart and form state reset only
// after upstream success; a failed request leaves everything for retry. The
// lines are snapshotted under the registry lock so the network call never
// reads a cart another request is mutating.
func (f *StorefrontFacade) Checkout(ctx context.Context, sessionID, email, address, code string) (*model.CreatedOrder, error) {
	var lines []model.OrderLine
	f.views.WithCart(sessionID, func(cart *model.Cart) {
		lines = cart.Lines()
	})
	created, err := f.checkout.Checkout(ctx, lines, email, address, code)
	if err != nil {
		return nil, err
	}
	f.views.WithCart(sessionID, func(cart *model.Cart) {
		cart.Clear()
	})
	return created, nil
}

func (f *StorefrontFacade) snapshot(lv *view.ListingView, email string, refreshed bool) *view.ListingSnapshot {
	summaries := lv.Summaries()
	sections := make([]view.DetailSection, 0, len(summaries))
	for _, s := range summaries {
		sections = append(sections, f.section(lv, int64(s.ProductID)))
	}
	return &view.ListingSnapshot{
		Email:     email,
		Summaries: summaries,
		Sections:  sections,
		Totals:    lv.Totals(),
		Refreshed: refreshed,
	}
}

func (f *StorefrontFacade) section(lv *view.ListingView, productID int64) view.DetailSection {
	cache := lv.Cache()
	section := view.DetailSection{
		ProductID: productID,
		Open:      lv.IsOpen(productID),
		State:     cache.State(productID),
	}
	if rows, ok := cache.Rows(productID); ok {
		section.Rows = rows
	}
	if message, ok := cache.ErrorMessage(productID); ok {
		section.Error = message
	}
	return section
}
