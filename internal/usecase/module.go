package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polyforge/printdesk/internal/config"
	"github.com/polyforge/printdesk/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(newOrderUseCase)

type orderParams struct {
	fx.In

	Orders   repository.OrderRepository
	Notifier Notifier
	Config   *config.Config
	Logger   *slog.Logger
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Notifier, p.Config.MaxUploadBytes, p.Logger)
}
