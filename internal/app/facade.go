package app

import (
	"context"

	"github.com/polyforge/printdesk/internal/domain/model"
	"github.com/polyforge/printdesk/internal/usecase"
)

// PrintShopFacade aggregates the order intake operations exposed to transports.
type PrintShopFacade struct {
	orders *usecase.OrderUseCase
}

// NewPrintShopFacade constructs PrintShopFacade.
func NewPrintShopFacade(orders *usecase.OrderUseCase) *PrintShopFacade {
	return &PrintShopFacade{orders: orders}
}

// SubmitOrder validates, prices, persists and announces a new order.
func (f *PrintShopFacade) SubmitOrder(ctx context.Context, draft model.OrderDraft, upload *model.Upload) (*model.Order, error) {
	return f.orders.Submit(ctx, draft, upload)
}

// AnalyzeModel returns a pricing estimate for an uploaded file without
// persisting anything.
func (f *PrintShopFacade) AnalyzeModel(upload model.Upload) (model.Estimate, error) {
	return f.orders.Analyze(upload)
}

// Order fetches a single order by identifier.
func (f *PrintShopFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

// UpdateOrder applies a partial patch to an existing order.
func (f *PrintShopFacade) UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	return f.orders.Update(ctx, id, patch)
}

// Orders lists every stored order.
func (f *PrintShopFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}
