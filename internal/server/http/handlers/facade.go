package handlers

import (
	"context"

	"github.com/polyforge/printdesk/internal/domain/model"
)

// PrintShopFacade encapsulates the order intake operations exposed via HTTP.
type PrintShopFacade interface {
	SubmitOrder(ctx context.Context, draft model.OrderDraft, upload *model.Upload) (*model.Order, error)
	AnalyzeModel(upload model.Upload) (model.Estimate, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
}
