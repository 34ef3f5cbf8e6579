package test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fourline/orderfront/internal/adapter/storeapi"
	"github.com/fourline/orderfront/internal/domain/model"
)

// StoreClientStub provides controllable behaviour for the upstream store API.
// Zero value works with sensible defaults; individual Fn fields override.
type StoreClientStub struct {
	CustomerExistsFn func(context.Context, string) (bool, error)
	ProductsFn       func(context.Context) ([]model.Product, error)
	SummariesFn      func(context.Context, string) ([]model.Summary, error)
	DetailsFn        func(context.Context, int64, string) ([]model.Detail, error)
	CreateOrderFn    func(context.Context, storeapi.CreateOrderRequest) (*model.CreatedOrder, error)
	UpdateOrderFn    func(context.Context, int64, storeapi.UpdateOrderRequest) error
	DeleteOrderFn    func(context.Context, int64) error

	mu           sync.Mutex
	detailCalls  []int64
	summaryCalls int
}

// CustomerExists delegates or reports the customer as known.
func (s *StoreClientStub) CustomerExists(ctx context.Context, email string) (bool, error) {
	if s.CustomerExistsFn != nil {
		return s.CustomerExistsFn(ctx, email)
	}
	return true, nil
}

// Products delegates or serves a two-item catalog.
func (s *StoreClientStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{
		{ID: 1, Name: "Keyboard", Price: decimal.NewFromInt(50)},
		{ID: 2, Name: "Mouse", Price: decimal.NewFromInt(20)},
	}, nil
}

// Summaries records the call and delegates or serves one summary row.
func (s *StoreClientStub) Summaries(ctx context.Context, email string) ([]model.Summary, error) {
	s.mu.Lock()
	s.summaryCalls++
	s.mu.Unlock()
	if s.SummariesFn != nil {
		return s.SummariesFn(ctx, email)
	}
	return []model.Summary{{ProductID: 1, ProductName: "Keyboard", TotalQuantity: 2, TotalAmount: decimal.NewFromInt(100)}}, nil
}

// Details records the requested product and delegates or serves one row.
func (s *StoreClientStub) Details(ctx context.Context, productID int64, email string) ([]model.Detail, error) {
	s.mu.Lock()
	s.detailCalls = append(s.detailCalls, productID)
	s.mu.Unlock()
	if s.DetailsFn != nil {
		return s.DetailsFn(ctx, productID, email)
	}
	return []model.Detail{{
		OrderID:      10,
		OrderTime:    "2026-01-02T15:04:05",
		OrderStatus:  model.OrderStatusPaid,
		Quantity:     2,
		PricePerItem: decimal.NewFromInt(50),
		SubTotal:     decimal.NewFromInt(100),
	}}, nil
}

// CreateOrder delegates or confirms a default order.
func (s *StoreClientStub) CreateOrder(ctx context.Context, req storeapi.CreateOrderRequest) (*model.CreatedOrder, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, req)
	}
	return &model.CreatedOrder{
		ID:              100,
		Email:           req.Email,
		ShippingAddress: req.ShippingAddress,
		ShippingCode:    req.ShippingCode,
		TotalAmount:     decimal.NewFromInt(100),
	}, nil
}

// UpdateOrder delegates or accepts the mutation.
func (s *StoreClientStub) UpdateOrder(ctx context.Context, orderID int64, req storeapi.UpdateOrderRequest) error {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, orderID, req)
	}
	return nil
}

// DeleteOrder delegates or accepts the deletion.
func (s *StoreClientStub) DeleteOrder(ctx context.Context, orderID int64) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, orderID)
	}
	return nil
}

// DetailCalls returns the product ids Details was invoked with, in order.
func (s *StoreClientStub) DetailCalls() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, len(s.detailCalls))
	copy(out, s.detailCalls)
	return out
}

// SummaryCalls reports how many times Summaries was fetched.
func (s *StoreClientStub) SummaryCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryCalls
}
