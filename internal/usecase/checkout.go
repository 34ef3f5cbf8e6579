package usecase

import (
	"context"

	domainErrors "github.com/fourline/orderfront/internal/domain/errors"
	"github.com/fourline/orderfront/internal/domain/model"
)

// OrderPlacer submits a composed order to the store API.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, email, shippingAddress, shippingCode string, lines []model.OrderLine) (*model.CreatedOrder, error)
}

// CheckoutUseCase validates the checkout form and places the order. The
// caller owns the cart: it snapshots the lines before calling and resets
// the cart only after success.
type CheckoutUseCase struct {
	orders OrderPlacer
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(orders OrderPlacer) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders}
}

// Checkout runs the client-side field checks, then submits the order lines.
// A validation failure blocks the action before any network call.
func (u *CheckoutUseCase) Checkout(ctx context.Context, lines []model.OrderLine, email, shippingAddress, shippingCode string) (*model.CreatedOrder, error) {
	in, err := ValidateCheckout(email, shippingAddress, shippingCode)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}
	return u.orders.PlaceOrder(ctx, in.Email, in.ShippingAddress, in.ShippingCode, lines)
}
