package repository

import (
	"context"

	"github.com/polyforge/printdesk/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. The store is
// the single point of mutation for order state: once Create returns, a Get with
// the same identifier observes the created record.
type OrderRepository interface {
	Create(ctx context.Context, draft model.OrderDraft) (*model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
}
