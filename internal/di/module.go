package di

import (
	"go.uber.org/fx"

	"github.com/polyforge/printdesk/internal/app"
	"github.com/polyforge/printdesk/internal/config"
	"github.com/polyforge/printdesk/internal/logger"
	"github.com/polyforge/printdesk/internal/notifier"
	"github.com/polyforge/printdesk/internal/server/http/router"
	"github.com/polyforge/printdesk/internal/storage"
	"github.com/polyforge/printdesk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		notifier.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
