package test

import (
	"context"

	domainErrors "github.com/polyforge/printdesk/internal/domain/errors"
	"github.com/polyforge/printdesk/internal/domain/model"
)

// OrderRepositoryStub allows tests to customize persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn func(context.Context, model.OrderDraft) (*model.Order, error)
	GetFn    func(context.Context, string) (*model.Order, error)
	UpdateFn func(context.Context, string, model.OrderPatch) (*model.Order, error)
	ListFn   func(context.Context) ([]model.Order, error)

	Created []model.OrderDraft
	Orders  []model.Order
	Updates []OrderUpdateCall
}

// OrderUpdateCall stores information about Update invocations.
type OrderUpdateCall struct {
	ID    string
	Patch model.OrderPatch
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	s.Created = append(s.Created, draft)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, draft)
	}
	order := model.Order{
		ID:             "order-1",
		Name:           draft.Name,
		Phone:          draft.Phone,
		DeliveryMethod: draft.DeliveryMethod,
		StreetAddress:  draft.StreetAddress,
		City:           draft.City,
		State:          draft.State,
		Zip:            draft.Zip,
		ModelFileName:  draft.ModelFileName,
		WeightGrams:    draft.WeightGrams,
		PrintTime:      draft.PrintTime,
		BaseCost:       draft.BaseCost,
		SupportRemoval: draft.SupportRemoval,
		SupportCost:    draft.SupportCost,
		TotalCost:      draft.TotalCost,
		Status:         model.OrderStatusPending,
	}
	return &order, nil
}

// Get returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) Get(ctx context.Context, id string) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Update records update invocations.
func (s *OrderRepositoryStub) Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	s.Updates = append(s.Updates, OrderUpdateCall{ID: id, Patch: patch})
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns orders from configured slice.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Orders, nil
}
