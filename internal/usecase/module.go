package usecase

import (
	"context"

	"go.uber.org/fx"

	"github.com/fourline/orderfront/internal/adapter/storeapi"
	"github.com/fourline/orderfront/internal/domain/model"
)

// Module provides core view use cases and their store API bindings.
var Module = fx.Provide(
	NewAssembleUseCase,
	NewCheckoutUseCase,
	func(client storeapi.Client) OrderHistorySource { return client },
	func(client storeapi.Client) OrderPlacer { return storePlacer{client: client} },
)

type storePlacer struct {
	client storeapi.Client
}

func (p storePlacer) PlaceOrder(ctx context.Context, email, shippingAddress, shippingCode string, lines []model.OrderLine) (*model.CreatedOrder, error) {
	return p.client.CreateOrder(ctx, storeapi.CreateOrderRequest{
		Email:           email,
		ShippingAddress: shippingAddress,
		ShippingCode:    shippingCode,
		Items:           lines,
	})
}
