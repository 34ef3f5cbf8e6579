package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	domainErrors "github.com/fourline/orderfront/internal/domain/errors"
	"github.com/fourline/orderfront/internal/domain/model"
)

// OrderHistorySource is the subset of the store API the join engine needs.
type OrderHistorySource interface {
	Summaries(ctx context.Context, email string) ([]model.Summary, error)
	Details(ctx context.Context, productID int64, email string) ([]model.Detail, error)
}

// AssembleUseCase reconstructs a single order's view. No upstream endpoint
// serves one order, so the engine joins the summary list with every
// product's detail list and keeps the rows whose order id matches.
type AssembleUseCase struct {
	source OrderHistorySource
}

// NewAssembleUseCase constructs AssembleUseCase.
func NewAssembleUseCase(source OrderHistorySource) *AssembleUseCase {
	return &AssembleUseCase{source: source}
}

// Assemble builds the AssembledOrder for orderID. It fails fast on a blank
// email before touching the network, fetches all detail lists concurrently,
// and aborts the whole assembly on any single fetch failure.
func (u *AssembleUseCase) Assemble(ctx context.Context, email string, orderID int64) (*model.AssembledOrder, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domainErrors.ErrMissingIdentity
	}

	summaries, err := u.source.Summaries(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("load order summaries: %w", err)
	}
	if len(summaries) == 0 {
		return nil, domainErrors.ErrNoOrderHistory
	}

	// Per-product fan-out. Results land by summary index so the join below
	// iterates in summary-list order regardless of completion order.
	details := make([][]model.Detail, len(summaries))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range summaries {
		g.Go(func() error {
			rows, err := u.source.Details(gctx, int64(s.ProductID), email)
			if err != nil {
				return fmt.Errorf("load details for product %d: %w", int64(s.ProductID), err)
			}
			details[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	namesByProduct := make(map[int64]string, len(summaries))
	for _, s := range summaries {
		namesByProduct[int64(s.ProductID)] = s.ProductName
	}

	var (
		items           []model.OrderItem
		shippingAddress string
		shippingCode    string
		matched         bool
	)
	total := decimal.Zero

	for i, s := range summaries {
		productID := int64(s.ProductID)
		for _, d := range details[i] {
			if int64(d.OrderID) != orderID {
				continue
			}
			if !matched {
				// All rows of one order share the same shipping fields by
				// server-side construction, so any row will do; the first in
				// summary-list order keeps the pick deterministic.
				shippingAddress = d.ShippingAddress
				shippingCode = d.ShippingCode
				matched = true
			}
			name := namesByProduct[productID]
			if name == "" {
				name = fmt.Sprintf("Product #%d", productID)
			}
			items = append(items, model.OrderItem{
				ProductID:    productID,
				ProductName:  name,
				Quantity:     int64(d.Quantity),
				PricePerItem: d.PricePerItem,
				SubTotal:     d.SubTotal,
			})
			total = total.Add(d.SubTotal)
		}
	}

	if !matched {
		return nil, domainErrors.ErrOrderNotFound
	}

	return &model.AssembledOrder{
		OrderID:         orderID,
		Email:           email,
		ShippingAddress: shippingAddress,
		ShippingCode:    shippingCode,
		Items:           items,
		TotalAmount:     total,
	}, nil
}
