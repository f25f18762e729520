package test

import (
	"context"

	domainErrors "github.com/polyforge/printdesk/internal/domain/errors"
	"github.com/polyforge/printdesk/internal/domain/model"
)

// PrintShopFacadeStub provides controllable behaviour for HTTP handlers.
type PrintShopFacadeStub struct {
	SubmitFn  func(context.Context, model.OrderDraft, *model.Upload) (*model.Order, error)
	AnalyzeFn func(model.Upload) (model.Estimate, error)
	OrderFn   func(context.Context, string) (*model.Order, error)
	UpdateFn  func(context.Context, string, model.OrderPatch) (*model.Order, error)
	OrdersFn  func(context.Context) ([]model.Order, error)
}

// SubmitOrder delegates to the configured function or returns a default order.
func (s PrintShopFacadeStub) SubmitOrder(ctx context.Context, draft model.OrderDraft, upload *model.Upload) (*model.Order, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, draft, upload)
	}
	return &model.Order{ID: "order-1", Name: draft.Name, Status: model.OrderStatusPending}, nil
}

// AnalyzeModel delegates or returns a fixed estimate.
func (s PrintShopFacadeStub) AnalyzeModel(upload model.Upload) (model.Estimate, error) {
	if s.AnalyzeFn != nil {
		return s.AnalyzeFn(upload)
	}
	return model.Estimate{WeightGrams: 35, PrintTime: "1h 33m", BaseCost: 8.75}, nil
}

// Order delegates or reports the order as missing.
func (s PrintShopFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateOrder delegates or reports the order as missing.
func (s PrintShopFacadeStub) UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	return nil, domainErrors.ErrNotFound
}

// Orders delegates or returns an empty list.
func (s PrintShopFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return nil, nil
}

// NotifierStub records notification attempts for assertions.
type NotifierStub struct {
	NotifyFn func(context.Context, *model.Order, *model.Upload) error
	Calls    []NotifyCall
	Err      error
}

// NotifyCall stores a single notification attempt.
type NotifyCall struct {
	Order  *model.Order
	Upload *model.Upload
}

// Notify records the call and returns the configured error.
func (s *NotifierStub) Notify(ctx context.Context, order *model.Order, upload *model.Upload) error {
	if s.NotifyFn != nil {
		return s.NotifyFn(ctx, order, upload)
	}
	s.Calls = append(s.Calls, NotifyCall{Order: order, Upload: upload})
	return s.Err
}
