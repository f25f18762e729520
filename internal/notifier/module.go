package notifier

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polyforge/printdesk/internal/config"
	"github.com/polyforge/printdesk/internal/usecase"
)

// Module exposes the notifier implementation to the fx graph.
var Module = fx.Provide(newNotifier)

type notifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newNotifier(p notifierParams) (usecase.Notifier, error) {
	if !p.Config.NotificationsEnabled() {
		return NewNoop(p.Logger), nil
	}
	return NewSMTP(
		p.Config.SMTPHost,
		p.Config.SMTPPort,
		p.Config.SMTPUsername,
		p.Config.SMTPPassword,
		p.Config.NotifyFrom,
		p.Config.NotifyTo,
		p.Logger,
	)
}
