// Package storage selects the order store implementation for the fx graph:
// PostgreSQL when a DSN is configured, the in-memory store otherwise.
package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polyforge/printdesk/internal/config"
	"github.com/polyforge/printdesk/internal/domain/repository"
	"github.com/polyforge/printdesk/internal/storage/memory"
	"github.com/polyforge/printdesk/internal/storage/postgres"
)

// Module wires the order repository implementation.
var Module = fx.Provide(newOrderRepository)

type storeParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newOrderRepository(p storeParams) (repository.OrderRepository, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("no database URI configured, using in-memory order store")
		return memory.New(), nil
	}

	store, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			store.Close()
			return nil
		},
	})

	return store, nil
}
